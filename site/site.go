// Package site describes how the visualisation is built as a static site: where the prerendered pages and assets are
// written, which base path the pages are served under, and which import aliases the bundler resolves.
// The descriptor is plain data handed to the hosting framework; nothing here renders pages.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/cirruscomms/fragility/o11y"
)

// ProductionEnv is the NODE_ENV value that switches on the production base path.
const ProductionEnv = "production"

// Config is the environment the build descriptor is derived from.
type Config struct {
	NodeEnv   string `env:"NODE_ENV" envDefault:"development"`
	BasePath  string `env:"SITE_BASE_PATH" envDefault:"/energy-and-state-fragility"`
	PagesDir  string `env:"SITE_PAGES_DIR" envDefault:"docs"`
	AssetsDir string `env:"SITE_ASSETS_DIR"` // defaults to PagesDir
	Fallback  string `env:"SITE_FALLBACK"`
	Prerender bool   `env:"SITE_PRERENDER" envDefault:"true"`
	Version   string `env:"SITE_VERSION"` // defaults to a random UUID per build
}

// Adapter is the static adapter's output configuration.
type Adapter struct {
	Pages    string `json:"pages"`
	Assets   string `json:"assets"`
	Fallback string `json:"fallback,omitempty"`
}

// Paths holds the URL prefix every page and asset is served under.
type Paths struct {
	Base string `json:"base"`
}

// Prerender controls whether every page is prerendered.
type Prerender struct {
	Default bool `json:"default"`
}

// Descriptor is the static-site build configuration handed to the hosting framework.
type Descriptor struct {
	Adapter     Adapter   `json:"adapter"`
	Paths       Paths     `json:"paths"`
	Prerender   Prerender `json:"prerender"`
	Version     string    `json:"version"`
	Environment string    `json:"-"`
}

// LoadConfig reads the given dotenv files (".env" when none are given) and then the process environment.
// Missing dotenv files are skipped and variables already set in the process win over file values.
func LoadConfig(envFiles ...string) (cfg Config, fault error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load env file '%s': %w", f, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse site environment: %w", err)
	}

	return cfg, nil
}

// New derives the Descriptor from cfg. The base path is only applied when NODE_ENV is production.
// If ctx carries an Observer the resolution is traced and logged.
func New(ctx context.Context, cfg Config) (descriptor Descriptor, fault error) {
	var o *o11y.Observer
	if o11y.InContext(ctx) {
		_, o, _ = o11y.Span(ctx, "site.New", otelTrace.SpanKindInternal)
		defer o.End()
	}

	d, err := build(cfg)
	if err != nil {
		if o != nil {
			o.Error("could not build site descriptor", err, o11y.SeverityHigh, o11y.FieldEnvironment, cfg.NodeEnv)
		}

		return Descriptor{}, err
	}

	if o != nil {
		o.Info("resolved site descriptor",
			o11y.FieldEnvironment, cfg.NodeEnv,
			o11y.FieldBasePath, d.Paths.Base,
			o11y.FieldPagesDir, d.Adapter.Pages,
			o11y.FieldAssetsDir, d.Adapter.Assets,
			o11y.FieldPrerender, d.Prerender.Default,
			o11y.FieldVersion, d.Version,
		)
	}

	return d, nil
}

func build(cfg Config) (Descriptor, error) {
	if strings.TrimSpace(cfg.PagesDir) == "" {
		return Descriptor{}, ErrMissingPagesDir
	}

	base := ""
	if cfg.NodeEnv == ProductionEnv {
		base = cfg.BasePath
	}

	if err := ValidateBasePath(base); err != nil {
		return Descriptor{}, err
	}

	assets := cfg.AssetsDir
	if assets == "" {
		assets = cfg.PagesDir
	}

	version := cfg.Version
	if version == "" {
		version = uuid.NewString()
	}

	return Descriptor{
		Adapter: Adapter{
			Pages:    cfg.PagesDir,
			Assets:   assets,
			Fallback: cfg.Fallback,
		},
		Paths:       Paths{Base: base},
		Prerender:   Prerender{Default: cfg.Prerender},
		Version:     version,
		Environment: cfg.NodeEnv,
	}, nil
}

// ValidateBasePath accepts "" or a root-relative path that starts, but does not end, with "/".
func ValidateBasePath(base string) error {
	if base == "" {
		return nil
	}

	if !strings.HasPrefix(base, "/") || strings.HasSuffix(base, "/") {
		return fmt.Errorf("%w: %q must start but not end with '/'", ErrInvalidBasePath, base)
	}

	return nil
}

// IsProduction reports whether the descriptor was built for production.
func (d Descriptor) IsProduction() bool {
	return d.Environment == ProductionEnv
}

// Path prefixes a route or asset path with the base path, e.g. "legend.svg" becomes
// "/energy-and-state-fragility/legend.svg" in production and "/legend.svg" otherwise.
// p is cleaned as a rooted path first, so ".." segments stop at the base path.
func (d Descriptor) Path(p string) string {
	return path.Join("/", d.Paths.Base, path.Clean("/"+p))
}
