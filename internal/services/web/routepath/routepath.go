// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                  = "/"
	Health                = "/up"
	Blog                  = "/blog"
	BlogPrefix            = "/blog/"
	BlogPosts             = "/blog/posts"
	BlogPostDeletePattern = BlogPrefix + "posts/{postID}/delete"
	BlogReset             = "/blog/reset"
	Story                 = "/story"
	StoryPrefix           = "/story/"
	Contact               = "/contact"
	ContactPrefix         = "/contact/"
	StaticPrefix          = "/static/"
	MapAPIPrefix          = "/api/map/"
	MapBoards             = "/api/map/boards"
	MapBoardPattern       = MapBoards + "/{boardID}"
	MapBoardActionPattern = MapBoards + "/{boardID}/{action}"

	FocusQueryKey = "focus"
	BoardQueryKey = "board"
	MapAnchor     = "gps"
)

// View names select one of the four screens.
const (
	ViewHome    = "home"
	ViewBlog    = "blog"
	ViewStory   = "story"
	ViewContact = "contact"
)

// Views lists the screens in navigation order.
var Views = []string{ViewHome, ViewBlog, ViewStory, ViewContact}

// ViewForPath returns the view rendered at path, or "" when no view owns it.
func ViewForPath(path string) string {
	path = strings.TrimSpace(path)
	if path != Root {
		path = strings.TrimSuffix(path, "/")
	}
	switch path {
	case Root, "":
		return ViewHome
	case Blog:
		return ViewBlog
	case Story:
		return ViewStory
	case Contact:
		return ViewContact
	default:
		return ""
	}
}

// PathForView returns the canonical path of view, defaulting to home.
func PathForView(view string) string {
	switch view {
	case ViewBlog:
		return Blog
	case ViewStory:
		return Story
	case ViewContact:
		return Contact
	default:
		return Root
	}
}

// PostAnchor returns the fragment id of a post on the blog page.
func PostAnchor(postID string) string {
	return "post-" + postID
}

// BlogFocus returns the blog route focused on postID. An empty id yields "".
func BlogFocus(postID string) string {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return ""
	}
	query := url.Values{FocusQueryKey: {postID}}
	return Blog + "?" + query.Encode() + "#" + url.PathEscape(PostAnchor(postID))
}

// BlogPostDelete returns the local-store delete route for postID.
func BlogPostDelete(postID string) string {
	return BlogPrefix + "posts/" + escapeSegment(postID) + "/delete"
}

// HomeMap returns the home route anchored at the map, keeping boardID alive
// across form posts.
func HomeMap(boardID string) string {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return Root + "#" + MapAnchor
	}
	query := url.Values{BoardQueryKey: {boardID}}
	return Root + "?" + query.Encode() + "#" + MapAnchor
}

// MapBoard returns the JSON route of one map board.
func MapBoard(boardID string) string {
	return MapBoards + "/" + escapeSegment(boardID)
}

// MapBoardAction returns the JSON route of an action on one map board.
func MapBoardAction(boardID, action string) string {
	return MapBoard(boardID) + "/" + escapeSegment(action)
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
