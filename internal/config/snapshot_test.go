package config

import "testing"

func TestSnapshotStableAcrossMetadataAndFeedOrder(t *testing.T) {
	a := Declarations()
	b := Declarations()
	b.DisabledFeeds = []FeedKind{FeedAuthor, FeedTranslationAtom, FeedCategoryAtom, FeedAllAtom}

	if a.Snapshot() != b.Snapshot() {
		t.Fatalf("expected snapshots equal for reordered disabled feeds")
	}
}

func TestSnapshotDetectsMeaningfulChange(t *testing.T) {
	base := Declarations().Snapshot()

	mutations := map[string]func(*Config){
		"plugin order":  func(c *Config) { c.Plugins[0], c.Plugins[1] = c.Plugins[1], c.Plugins[0] },
		"static order":  func(c *Config) { c.StaticPaths[0], c.StaticPaths[2] = c.StaticPaths[2], c.StaticPaths[0] },
		"link order":    func(c *Config) { c.Links[0], c.Links[1] = c.Links[1], c.Links[0] },
		"header":        func(c *Config) { c.Header = "<meta>" },
		"pagination":    func(c *Config) { c.DefaultPagination = 6 },
		"display flag":  func(c *Config) { c.Display.DisplayTagsInline = false },
		"feed enabled":  func(c *Config) { c.DisabledFeeds = c.DisabledFeeds[1:] },
		"path metadata": func(c *Config) { c.ExtraPathMetadata["extra/robots.txt"]["path"] = "r.txt" },
	}
	for name, mutate := range mutations {
		c := Declarations()
		mutate(c)
		if c.Snapshot() == base {
			t.Errorf("%s: expected snapshot change", name)
		}
	}
}

func TestSnapshotNil(t *testing.T) {
	var c *Config
	if c.Snapshot() != "" {
		t.Fatalf("expected empty snapshot for nil config")
	}
}
