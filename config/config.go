package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/tsawler/circlepoints/format"
	"github.com/tsawler/circlepoints/model"
)

// Configuration keys. They double as CLI flag names; the environment
// variable for a key is EnvPrefix + "_" + the key upper-cased with dashes
// turned into underscores, e.g. CIRCLEPOINTS_CENTER_X.
const (
	KeyCenterX    = "center-x"
	KeyCenterY    = "center-y"
	KeyRadius     = "radius"
	KeyCount      = "count"
	KeyColor      = "color"
	KeySize       = "size"
	KeyStartAngle = "start-angle"
	KeyUnits      = "units"
	KeyGrid       = "grid"
	KeyAuthor     = "author"
	KeyContact    = "contact"
	KeyOut        = "out"
	KeyFormats    = "formats"
	KeyDPI        = "dpi"
	KeyTable      = "table"
)

// EnvPrefix prefixes environment overrides
const EnvPrefix = "CIRCLEPOINTS"

// DefaultConfigName is looked up in the working directory when no config
// file is named explicitly
const DefaultConfigName = "circlepoints"

// Table output styles
const (
	TableNone     = ""
	TableMarkdown = "markdown"
	TableCSV      = "csv"
	TableHTML     = "html"
)

// Config is the flattened CLI configuration
type Config struct {
	CenterX    float64
	CenterY    float64
	Radius     float64
	Count      int
	Color      string
	Size       int
	StartAngle float64
	Units      string
	Grid       bool
	Author     string
	Contact    string
	Out        string
	Formats    string
	DPI        float64
	Table      string
}

// SetDefaults registers the default of every key, matching model.DefaultSpec
func SetDefaults(v *viper.Viper) {
	def := model.DefaultSpec()

	v.SetDefault(KeyCenterX, def.Center.X)
	v.SetDefault(KeyCenterY, def.Center.Y)
	v.SetDefault(KeyRadius, def.Radius)
	v.SetDefault(KeyCount, def.Count)
	v.SetDefault(KeyColor, def.Style.Color.Hex())
	v.SetDefault(KeySize, def.Style.Size)
	v.SetDefault(KeyStartAngle, def.StartAngle)
	v.SetDefault(KeyUnits, def.Units)
	v.SetDefault(KeyGrid, def.ShowGrid)

	v.SetDefault(KeyAuthor, "")
	v.SetDefault(KeyContact, "")
	v.SetDefault(KeyOut, ".")
	v.SetDefault(KeyFormats, "png,svg,pdf")
	v.SetDefault(KeyDPI, 200)
	v.SetDefault(KeyTable, TableNone)
}

// New returns a viper instance with defaults and environment overrides
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a config file into v. With an empty path it looks for
// circlepoints.{yaml,toml,json} in the working directory and silently
// continues when there is none; a named file must exist.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(DefaultConfigName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// decoder reads typed values from viper and keeps the first conversion
// error. viper's own getters turn malformed values into zero.
type decoder struct {
	v   *viper.Viper
	err error
}

func (d *decoder) fail(key string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("config: %s: %w", key, err)
	}
}

func (d *decoder) getFloat(key string) float64 {
	f, err := cast.ToFloat64E(d.v.Get(key))
	if err != nil {
		d.fail(key, err)
	}
	return f
}

func (d *decoder) getInt(key string) int {
	i, err := cast.ToIntE(d.v.Get(key))
	if err != nil {
		d.fail(key, err)
	}
	return i
}

func (d *decoder) getBool(key string) bool {
	b, err := cast.ToBoolE(d.v.Get(key))
	if err != nil {
		d.fail(key, err)
	}
	return b
}

// Decode reads every key from v. Values that do not convert to the key's
// type are errors.
func Decode(v *viper.Viper) (*Config, error) {
	d := &decoder{v: v}
	c := &Config{
		CenterX:    d.getFloat(KeyCenterX),
		CenterY:    d.getFloat(KeyCenterY),
		Radius:     d.getFloat(KeyRadius),
		Count:      d.getInt(KeyCount),
		Color:      v.GetString(KeyColor),
		Size:       d.getInt(KeySize),
		StartAngle: d.getFloat(KeyStartAngle),
		Units:      v.GetString(KeyUnits),
		Grid:       d.getBool(KeyGrid),
		Author:     v.GetString(KeyAuthor),
		Contact:    v.GetString(KeyContact),
		Out:        v.GetString(KeyOut),
		Formats:    v.GetString(KeyFormats),
		DPI:        d.getFloat(KeyDPI),
		Table:      strings.ToLower(strings.TrimSpace(v.GetString(KeyTable))),
	}
	if d.err != nil {
		return nil, d.err
	}

	switch c.Table {
	case TableNone, TableMarkdown, TableCSV, TableHTML:
	default:
		return nil, fmt.Errorf("config: unknown table style %q", c.Table)
	}
	if !(c.DPI > 0) {
		return nil, fmt.Errorf("config: dpi must be positive, got %g", c.DPI)
	}
	return c, nil
}

// Spec builds and validates the circle spec described by c
func (c *Config) Spec() (model.CircleSpec, error) {
	col, err := model.ParseColor(c.Color)
	if err != nil {
		return model.CircleSpec{}, err
	}
	spec := model.CircleSpec{
		Center:     model.Point{X: c.CenterX, Y: c.CenterY},
		Radius:     c.Radius,
		Count:      c.Count,
		StartAngle: c.StartAngle,
		Units:      strings.TrimSpace(c.Units),
		Style:      model.PointStyle{Color: col, Size: c.Size},
		ShowGrid:   c.Grid,
	}
	if err := spec.Validate(); err != nil {
		return model.CircleSpec{}, err
	}
	return spec, nil
}

// OutputFormats parses the formats list
func (c *Config) OutputFormats() ([]format.Format, error) {
	return format.ParseList(c.Formats)
}
