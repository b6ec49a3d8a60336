// Package sponsors holds the partner listings shown on the home and
// contact pages.
package sponsors

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sponsors.yaml
var defaultCatalog []byte

// Placeholder copy for cards without details.
const (
	PlaceholderName  = "Sponsor Name"
	PlaceholderTier  = "Sponsor Tier"
	PlaceholderBlurb = "Short sponsor blurb goes here."

	placeholderCards = 2
)

// Sponsor is one supporter card.
type Sponsor struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Tier  string `yaml:"tier"`
	Blurb string `yaml:"blurb"`
	Logo  string `yaml:"logo,omitempty"`
	URL   string `yaml:"url,omitempty"`
}

// DisplayName falls back to the placeholder name.
func (s Sponsor) DisplayName() string {
	return orPlaceholder(s.Name, PlaceholderName)
}

// DisplayTier falls back to the placeholder tier.
func (s Sponsor) DisplayTier() string {
	return orPlaceholder(s.Tier, PlaceholderTier)
}

// DisplayBlurb falls back to the placeholder blurb.
func (s Sponsor) DisplayBlurb() string {
	return orPlaceholder(s.Blurb, PlaceholderBlurb)
}

// Group is one way of supporting the run.
type Group struct {
	Key      string    `yaml:"key"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Items    []Sponsor `yaml:"items"`
}

// Cards returns the group's sponsors, or placeholder cards when it has none.
func (g Group) Cards() []Sponsor {
	if len(g.Items) > 0 {
		return g.Items
	}
	cards := make([]Sponsor, placeholderCards)
	for i := range cards {
		cards[i] = Sponsor{ID: fmt.Sprintf("%s-%d", g.Key, i)}
	}
	return cards
}

// Catalog is the full sponsor listing.
type Catalog struct {
	Groups []Group `yaml:"groups"`
}

// All flattens every group's sponsors in catalog order.
func (c Catalog) All() []Sponsor {
	var all []Sponsor
	for _, group := range c.Groups {
		all = append(all, group.Items...)
	}
	return all
}

// Default returns the catalog bundled with the binary.
func Default() Catalog {
	catalog, err := Parse(strings.NewReader(string(defaultCatalog)))
	if err != nil {
		panic(fmt.Sprintf("embedded sponsor catalog: %v", err))
	}
	return catalog
}

// Load reads a catalog file, or returns Default when path is empty.
func Load(path string) (Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open sponsor catalog: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes a YAML catalog and checks group keys are present and unique.
func Parse(r io.Reader) (Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("decode sponsor catalog: %w", err)
	}
	seen := make(map[string]bool, len(catalog.Groups))
	for i, group := range catalog.Groups {
		key := strings.TrimSpace(group.Key)
		if key == "" {
			return Catalog{}, fmt.Errorf("sponsor group %d: key is required", i)
		}
		if seen[key] {
			return Catalog{}, fmt.Errorf("sponsor group %q: duplicate key", key)
		}
		seen[key] = true
	}
	return catalog, nil
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
