package modules

import (
	"testing"

	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
)

func TestDefaultModulesCoverEveryView(t *testing.T) {
	t.Parallel()

	all := DefaultModules()
	want := []string{"home", "blog", "story", "contact", "mapboard"}
	if len(all) != len(want) {
		t.Fatalf("module count = %d, want %d", len(all), len(want))
	}
	for i, m := range all {
		if got := m.ID(); got != want[i] {
			t.Fatalf("module[%d] id = %q, want %q", i, got, want[i])
		}
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for _, m := range DefaultModules() {
		mount, err := m.Mount(Dependencies{})
		if err != nil {
			t.Fatalf("module %q mount error = %v", m.ID(), err)
		}
		if mount.Prefix == "" || mount.Handler == nil {
			t.Fatalf("module %q mount = %+v", m.ID(), mount)
		}
		if _, ok := seen[mount.Prefix]; ok {
			t.Fatalf("duplicate mount prefix %q", mount.Prefix)
		}
		seen[mount.Prefix] = struct{}{}
	}
	for _, view := range routepath.Views {
		path := routepath.PathForView(view)
		if path != routepath.Root {
			path += "/"
		}
		if _, ok := seen[path]; !ok {
			t.Fatalf("view %q has no module mounted at %q", view, path)
		}
	}
}
