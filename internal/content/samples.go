package content

import "slices"

var samplePosts = []Post{
	{
		ID:      "p1",
		Date:    "2026-01-01",
		Title:   "Day 1 — Setting out",
		Content: "Today is the first step. We met early, checked supplies, and mapped the route. The goal is simple: show up daily, learn loudly, and keep the charity at the center of every mile. If you’re reading this, you’re part of the story already — thank you.",
		Photos: []string{
			"https://images.unsplash.com/photo-1520975916090-3105956dac38?auto=format&fit=crop&w=1400&q=70",
			"https://images.unsplash.com/photo-1520975958221-0f9d8a4e8aaf?auto=format&fit=crop&w=1400&q=70",
		},
	},
	{
		ID:      "p2",
		Date:    "2026-01-02",
		Title:   "Day 2 — Small wins",
		Content: "A little progress compounds fast. We hit our target distance and talked with people along the way. The charity exists because the ‘why’ matters more than the numbers — but the numbers help, too. We’re collecting stories and hope.",
		Photos: []string{
			"https://images.unsplash.com/photo-1520975952025-817bd6a2f76d?auto=format&fit=crop&w=1400&q=70",
		},
	},
	{
		ID:      "p3",
		Date:    "2026-01-03",
		Title:   "Day 3 — Weather and perspective",
		Content: "Rain changes the mood, but it also sharpens the focus. We slowed down, stayed safe, and kept moving. If you’ve ever had to restart after a setback, you know the feeling: the work is still worth doing.",
		Photos: []string{
			"https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=1400&q=70",
		},
	},
}

// SamplePosts returns a fresh copy of the built-in posts used when no stored
// posts exist.
func SamplePosts() []Post {
	out := make([]Post, len(samplePosts))
	for i, post := range samplePosts {
		post.Photos = slices.Clone(post.Photos)
		out[i] = post
	}
	return out
}
