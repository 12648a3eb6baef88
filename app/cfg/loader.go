package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	PagesFile string `long:"pages-file" env:"PAGES_FILE" default:"./pages.yml" description:"YAML page-set file describing the sitemap contents"`

	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL overriding the page set's base_url (e.g. https://www.example.com)"`

	Print  bool   `long:"print" env:"PRINT" description:"Render the sitemap to stdout and exit instead of serving"`
	Format string `long:"format" env:"FORMAT" default:"xml" description:"Render format for --print (xml or txt)"`

	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		PagesFile: raw.PagesFile,
		Port:      raw.Port,
		BaseUrl:   raw.BaseUrl,
		Print:     raw.Print,
		Format:    raw.Format,
		Timezone:  raw.Timezone,
		Debug:     raw.Debug,
		Version:   GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
