package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // timezone validation must not depend on the host zoneinfo

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// ValidateConfig checks the invariants of a normalized, defaulted configuration.
// The first violation is returned as a validation ClassifiedError.
func ValidateConfig(cfg *Config) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if cv.config == nil {
		return errors.ValidationError("configuration is nil").Build()
	}
	checks := []func() error{
		cv.validateIdentity,
		cv.validatePaths,
		cv.validatePresentation,
		cv.validatePlugins,
		cv.validateLinks,
		cv.validateFeeds,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateIdentity() error {
	c := cv.config
	if c.SiteName == "" {
		return invalid("site_name", "must not be empty", c.SiteName)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return invalid("timezone", fmt.Sprintf("unknown time zone: %v", err), c.Timezone)
	}
	if _, err := language.Parse(c.DefaultLang); err != nil {
		return invalid("default_lang", "not a BCP 47 language tag", c.DefaultLang)
	}
	// An empty site URL is allowed: the engine then emits relative links.
	if c.SiteURL != "" {
		if err := validateAbsoluteURL(c.SiteURL); err != nil {
			return invalid("site_url", err.Error(), c.SiteURL)
		}
	}
	return nil
}

func (cv *configurationValidator) validatePaths() error {
	c := cv.config
	if c.ContentPath == "" {
		return invalid("content_path", "must not be empty", c.ContentPath)
	}
	seen := make(map[string]bool, len(c.StaticPaths))
	for _, p := range c.StaticPaths {
		if seen[p] {
			return invalid("static_paths", "duplicate path", p)
		}
		seen[p] = true
	}
	for path, attrs := range c.ExtraPathMetadata {
		if strings.TrimSpace(path) == "" {
			return invalid("extra_path_metadata", "empty source path", path)
		}
		if out, ok := attrs["path"]; ok && strings.TrimSpace(out) == "" {
			return invalid("extra_path_metadata", "empty output path", path)
		}
	}
	return nil
}

func (cv *configurationValidator) validatePresentation() error {
	c := cv.config
	if c.Theme == "" {
		return invalid("theme", "must not be empty", c.Theme)
	}
	if c.DefaultPagination < 0 {
		return invalid("default_pagination", "must be >= 0", c.DefaultPagination)
	}
	return nil
}

func (cv *configurationValidator) validatePlugins() error {
	seen := make(map[string]bool, len(cv.config.Plugins))
	for _, name := range cv.config.Plugins {
		if seen[name] {
			return invalid("plugins", "duplicate plugin", name)
		}
		seen[name] = true
	}
	return nil
}

func (cv *configurationValidator) validateLinks() error {
	seen := make(map[string]bool, len(cv.config.Links))
	for i, l := range cv.config.Links {
		if l.Label == "" {
			return invalid("links", fmt.Sprintf("entry %d has an empty label", i), l.URL)
		}
		if seen[l.Label] {
			return invalid("links", "duplicate label", l.Label)
		}
		seen[l.Label] = true
		if err := validateAbsoluteURL(l.URL); err != nil {
			return invalid("links", fmt.Sprintf("%s: %v", l.Label, err), l.URL)
		}
	}
	return nil
}

func (cv *configurationValidator) validateFeeds() error {
	for _, k := range cv.config.DisabledFeeds {
		if !k.Valid() {
			return invalid("disabled_feeds", "unknown feed kind", string(k))
		}
	}
	return nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func invalid(field, reason string, value any) error {
	return errors.ValidationError(fmt.Sprintf("invalid %s: %s", field, reason)).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}
