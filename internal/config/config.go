package config

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
	"git.home.luguber.info/inful/siteconf/internal/observability"
)

// DefaultOverlayPath is the overlay file looked up when none is given explicitly.
const DefaultOverlayPath = "siteconf.yaml"

// LoadOptions controls how Load builds the record.
type LoadOptions struct {
	// OverlayPath names a YAML file whose keys replace the declared values.
	// Empty means no overlay.
	OverlayPath string
	// RequireOverlay turns a missing overlay file into an error.
	RequireOverlay bool
	// HeaderPath overrides the header snippet location when non-empty.
	HeaderPath string
	// EnvDir is searched for .env/.env.local; empty means the working directory.
	EnvDir  string
	SkipEnv bool

	Recorder metrics.Recorder
}

// Load produces the site configuration: declarations, overlay, normalization,
// defaults, validation, then the header snippet is ensured and read. Any failure
// aborts the load; no partial record is returned.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	start := time.Now()
	cfg, err := load(ctx, opts, rec)
	elapsed := time.Since(start)
	rec.ObserveLoadDuration(elapsed)
	observability.DebugContext(ctx, "Configuration load finished",
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	if err != nil {
		rec.IncLoad(metrics.ResultFailed)
		return nil, err
	}
	rec.IncLoad(metrics.ResultSuccess)
	return cfg, nil
}

func load(ctx context.Context, opts LoadOptions, rec metrics.Recorder) (*Config, error) {
	cfg := Declarations()

	if !opts.SkipEnv {
		envPath, err := loadEnvFile(opts.EnvDir)
		if err != nil {
			return nil, errors.ConfigError("failed to load env file").WithCause(err).Build()
		}
		if envPath != "" {
			observability.DebugContext(ctx, "Loaded environment variables", logfields.Path(envPath))
		}
	}

	if opts.OverlayPath != "" {
		if err := applyOverlay(ctx, cfg, opts.OverlayPath, opts.RequireOverlay); err != nil {
			return nil, err
		}
	}
	if opts.HeaderPath != "" {
		cfg.HeaderPath = opts.HeaderPath
	}

	res, err := NormalizeConfig(cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		observability.WarnContext(ctx, "Configuration normalization", slog.String("warning", w))
	}
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		rec.IncValidationFailure()
		return nil, err
	}

	header, created, err := EnsureHeader(cfg.HeaderPath)
	if err != nil {
		return nil, err
	}
	if created {
		rec.IncHeaderCreated()
		observability.InfoContext(ctx, "Created empty header snippet", logfields.Path(cfg.HeaderPath))
	}
	cfg.Header = header

	observability.InfoContext(ctx, "Loaded site configuration",
		slog.String("site", cfg.SiteName),
		logfields.Theme(cfg.Theme),
		slog.Int("plugins", len(cfg.Plugins)),
		slog.Int("links", len(cfg.Links)),
		logfields.Bytes(len(header)))
	return cfg, nil
}

// applyOverlay decodes the overlay file on top of cfg. Keys absent from the file keep
// their declared values; lists given in the file replace the declared list and maps
// are merged key by key, including the per-path attributes of extra_path_metadata.
func applyOverlay(ctx context.Context, cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if required {
				return errors.NewError(errors.CategoryNotFound, "configuration file not found").
					Fatal().UserAction().
					WithContext("path", path).
					Build()
			}
			observability.DebugContext(ctx, "No overlay file, using declarations", logfields.Path(path))
			return nil
		}
		return errors.ConfigError("failed to read config file").
			WithCause(err).WithContext("path", path).Build()
	}

	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	declaredMeta := cfg.Clone().ExtraPathMetadata
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.ConfigError("failed to unmarshal config").
			WithCause(err).WithContext("path", path).Build()
	}
	mergePathMetadata(cfg.ExtraPathMetadata, declaredMeta)
	observability.DebugContext(ctx, "Applied overlay", logfields.Path(path))
	return nil
}

// mergePathMetadata fills attributes an overlay entry left out from the declared
// entry for the same path. The decoder replaces inner maps wholesale.
func mergePathMetadata(dst, declared map[string]map[string]string) {
	for path, attrs := range dst {
		base, ok := declared[path]
		if !ok {
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string, len(base))
			dst[path] = attrs
		}
		for k, v := range base {
			if _, set := attrs[k]; !set {
				attrs[k] = v
			}
		}
	}
}

// Init writes the declared settings to configPath as an editable overlay file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.NewError(errors.CategoryAlreadyExists, "configuration file already exists (use --force to overwrite)").
			UserAction().
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Declarations())
	if err != nil {
		return errors.InternalError("failed to marshal config").WithCause(err).Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.FileSystemError("failed to write config file").
			WithCause(err).WithContext("path", configPath).Build()
	}
	return nil
}
