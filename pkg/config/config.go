package config

import (
	"github.com/arthur-debert/ansimarkup/pkg/errors"
	"github.com/arthur-debert/ansimarkup/pkg/logging"
	"github.com/arthur-debert/ansimarkup/pkg/markup"
	"github.com/arthur-debert/ansimarkup/pkg/styles"
	"github.com/arthur-debert/ansimarkup/pkg/terminal"
)

// Config is the effective ansimarkup configuration.
type Config struct {
	Parser Parser `koanf:"parser" toml:"parser"`
	Output Output `koanf:"output" toml:"output"`
	Styles Styles `koanf:"styles" toml:"styles"`
}

// Parser holds the markup parser settings.
type Parser struct {
	MaxDepth  int    `koanf:"max_depth" toml:"max_depth"`
	Strategy  string `koanf:"strategy" toml:"strategy"`
	CacheSize int    `koanf:"cache_size" toml:"cache_size"`
}

// Output holds terminal output settings.
type Output struct {
	Color string `koanf:"color" toml:"color"`
}

// Styles extends the built-in style table.
type Styles struct {
	File  string            `koanf:"file" toml:"file"`
	Extra map[string]string `koanf:"extra" toml:"extra"`
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 0 {
		return errors.Newf(errors.ErrConfigValid, "parser.max_depth must not be negative, got %d", c.Parser.MaxDepth).
			WithDetail("key", "parser.max_depth")
	}
	if c.Parser.CacheSize < 0 {
		return errors.Newf(errors.ErrConfigValid, "parser.cache_size must not be negative, got %d", c.Parser.CacheSize).
			WithDetail("key", "parser.cache_size")
	}
	if _, err := markup.ParseStrategy(c.Parser.Strategy); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid parser.strategy").
			WithDetail("key", "parser.strategy")
	}
	if _, err := terminal.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.color").
			WithDetail("key", "output.color")
	}
	for name, sgr := range c.Styles.Extra {
		if !styles.ValidName(name) {
			return errors.Newf(errors.ErrConfigValid, "invalid style name %q", name).
				WithDetail("key", "styles.extra."+name)
		}
		if _, err := styles.ParseSGR(sgr); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid codes for style %q", name).
				WithDetail("key", "styles.extra."+name)
		}
	}
	return nil
}

// ColorMode returns the parsed output.color setting.
func (c *Config) ColorMode() terminal.ColorMode {
	mode, _ := terminal.ParseColorMode(c.Output.Color)
	return mode
}

// StyleTable builds the style table: built-in styles, then the styles
// file, then the extra entries.
func (c *Config) StyleTable() (styles.Table, error) {
	table := styles.Default()
	if c.Styles.File != "" {
		fromFile, err := styles.LoadFile(c.Styles.File)
		if err != nil {
			return nil, err
		}
		table = table.Merge(fromFile)
	}
	for name, sgr := range c.Styles.Extra {
		code, err := styles.ParseSGR(sgr)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrStyleInvalid, "invalid codes for style %q", name)
		}
		table[name] = code
	}
	return table, nil
}

// NewParser creates a markup parser from the parser and styles settings.
// It traces through the "markup" component logger; opts are applied last.
func (c *Config) NewParser(opts ...markup.Option) (*markup.Parser, error) {
	table, err := c.StyleTable()
	if err != nil {
		return nil, err
	}
	strategy, err := markup.ParseStrategy(c.Parser.Strategy)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid parser.strategy")
	}
	base := []markup.Option{
		markup.WithStyles(table),
		markup.WithMaxDepth(c.Parser.MaxDepth),
		markup.WithStrategy(strategy),
		markup.WithCacheSize(c.Parser.CacheSize),
		markup.WithLogger(logging.GetLogger("markup")),
	}
	return markup.New(append(base, opts...)...), nil
}
