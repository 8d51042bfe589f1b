package hugo

import (
	"fmt"

	"git.home.luguber.info/inful/siteconf/internal/foundation"
)

// Format is the serialization of the generated engine config.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var formats = foundation.NewNormalizer(map[string]Format{
	"yaml": FormatYAML,
	"yml":  FormatYAML,
	"toml": FormatTOML,
})

// ParseFormat accepts "yaml", "yml" or "toml" (case-insensitive). Empty means YAML.
func ParseFormat(s string) (Format, error) {
	if f, ok := formats.Normalize(s); ok {
		return f, nil
	}
	if foundation.IsBlank(s) {
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported config format %q (want yaml or toml)", s)
}

// FileName is the engine config file name for the format.
func (f Format) FileName() string {
	if f == FormatTOML {
		return "hugo.toml"
	}
	return "hugo.yaml"
}
