package config

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// IdentityDefaultApplier fills identity fields an overlay blanked out.
type IdentityDefaultApplier struct{}

func (IdentityDefaultApplier) Domain() string { return "identity" }

func (IdentityDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.SiteName == "" {
		cfg.SiteName = "Site"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = "en"
	}
	return nil
}

// PathsDefaultApplier handles content and header locations.
type PathsDefaultApplier struct{}

func (PathsDefaultApplier) Domain() string { return "paths" }

func (PathsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.ContentPath == "" {
		cfg.ContentPath = "content"
	}
	if cfg.HeaderPath == "" {
		cfg.HeaderPath = DefaultHeaderPath
	}
	if cfg.ArchivesSaveAs == "" {
		cfg.ArchivesSaveAs = "archives.html"
	}
	return nil
}

// PresentationDefaultApplier handles theme and highlighting defaults.
type PresentationDefaultApplier struct{}

func (PresentationDefaultApplier) Domain() string { return "presentation" }

func (PresentationDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Theme == "" {
		cfg.Theme = "theme"
	}
	if cfg.PygmentsStyle == "" {
		cfg.PygmentsStyle = "default"
	}
	return nil
}

// FeedsDefaultApplier disables every feed when the overlay set the list to null.
// An explicit empty list enables all feeds and is left alone.
type FeedsDefaultApplier struct{}

func (FeedsDefaultApplier) Domain() string { return "feeds" }

func (FeedsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.DisabledFeeds == nil {
		cfg.DisabledFeeds = AllFeedKinds()
	}
	return nil
}

// defaultAppliers run in order; later domains may rely on earlier ones.
func defaultAppliers() []DefaultApplier {
	return []DefaultApplier{
		IdentityDefaultApplier{},
		PathsDefaultApplier{},
		PresentationDefaultApplier{},
		FeedsDefaultApplier{},
	}
}

// applyDefaults applies default values to configuration.
func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers() {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
