package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/siteconf/internal/foundation"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig canonicalizes free-form fields prior to default application.
// It mutates the provided config in-place and returns a result describing any coercions.
// Values it cannot canonicalize are left as-is for ValidateConfig to reject.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}
	normalizeIdentity(c, res)
	normalizePaths(c)
	normalizePresentation(c)
	normalizePlugins(c)
	normalizeLinks(c)
	normalizeFeeds(c, res)
	return res, nil
}

func normalizeIdentity(c *Config, res *NormalizationResult) {
	c.Author = strings.TrimSpace(c.Author)
	c.SiteName = strings.TrimSpace(c.SiteName)
	c.Timezone = strings.TrimSpace(c.Timezone)

	if lang := strings.TrimSpace(c.DefaultLang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if canon := tag.String(); canon != c.DefaultLang {
				res.Warnings = append(res.Warnings, warnChanged("default_lang", c.DefaultLang, canon))
				c.DefaultLang = canon
			}
		} else {
			c.DefaultLang = lang
		}
	}

	if raw := strings.TrimSpace(c.SiteURL); raw != "" {
		c.SiteURL = strings.TrimSuffix(raw, "/")
		if ascii, ok := asciiHostURL(c.SiteURL); ok && ascii != c.SiteURL {
			res.Warnings = append(res.Warnings, warnChanged("site_url", c.SiteURL, ascii))
			c.SiteURL = ascii
		}
	}
}

// asciiHostURL rewrites an internationalized host name to its IDNA ASCII form.
func asciiHostURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	host, port := u.Hostname(), u.Port()
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", false
	}
	if port != "" {
		u.Host = net.JoinHostPort(ascii, port)
	} else {
		u.Host = ascii
	}
	return u.String(), true
}

func normalizePaths(c *Config) {
	c.ContentPath = strings.TrimSpace(c.ContentPath)
	c.StaticPaths = trimAll(c.StaticPaths)
	c.PluginPaths = trimAll(c.PluginPaths)
	c.HeaderPath = strings.TrimSpace(c.HeaderPath)
}

func normalizePresentation(c *Config) {
	c.Theme = strings.TrimSpace(c.Theme)
	c.BootstrapTheme = strings.ToLower(strings.TrimSpace(c.BootstrapTheme))
	c.PygmentsStyle = strings.TrimSpace(c.PygmentsStyle)
}

func normalizePlugins(c *Config) {
	c.Plugins = trimAll(c.Plugins)
	c.TemplateExtensions = trimAll(c.TemplateExtensions)
}

// normalizeLinks trims labels and URLs and puts labels in NFC so that visually
// identical labels compare equal during validation.
func normalizeLinks(c *Config) {
	for i := range c.Links {
		c.Links[i].Label = norm.NFC.String(strings.TrimSpace(c.Links[i].Label))
		c.Links[i].URL = strings.TrimSpace(c.Links[i].URL)
	}
}

// normalizeFeeds canonicalizes feed kind spellings and folds the two author feed
// names into FeedAuthor. Duplicates are dropped, order is kept.
func normalizeFeeds(c *Config, res *NormalizationResult) {
	if c.DisabledFeeds == nil {
		return
	}
	seen := make(map[FeedKind]bool, len(c.DisabledFeeds))
	out := make([]FeedKind, 0, len(c.DisabledFeeds))
	for _, k := range c.DisabledFeeds {
		canon := NormalizeFeedKind(string(k))
		if canon == "" {
			canon = k
		} else if canon != k {
			res.Warnings = append(res.Warnings, warnChanged("disabled_feeds", k, canon))
		}
		if seen[canon] {
			continue
		}
		seen[canon] = true
		out = append(out, canon)
	}
	c.DisabledFeeds = out
}

var feedKinds = foundation.NewNormalizer(map[string]FeedKind{
	"all_atom":              FeedAllAtom,
	"feed_all_atom":         FeedAllAtom,
	"category_atom":         FeedCategoryAtom,
	"category_feed_atom":    FeedCategoryAtom,
	"translation_atom":      FeedTranslationAtom,
	"translation_feed_atom": FeedTranslationAtom,
	"author":                FeedAuthor,
	"author_atom":           FeedAuthor,
	"author_rss":            FeedAuthor,
	"author_feed_atom":      FeedAuthor,
	"author_feed_rss":       FeedAuthor,
})

// NormalizeFeedKind maps user spellings ("All-Atom", "author_rss") to a FeedKind.
// It returns "" for unknown values.
func NormalizeFeedKind(raw string) FeedKind {
	k, _ := feedKinds.Normalize(raw)
	return k
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
