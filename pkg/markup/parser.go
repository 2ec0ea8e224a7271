package markup

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/ansimarkup/pkg/colormath"
	"github.com/arthur-debert/ansimarkup/pkg/escape"
	"github.com/arthur-debert/ansimarkup/pkg/styles"
)

// Parser renders markup. A Parser is safe for concurrent use; its caches
// are content-addressed and never affect output.
type Parser struct {
	styles   styles.Table
	maxDepth int
	strategy Strategy
	colors   *colormath.Cache
	measure  *escape.Measurer
	logger   zerolog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithStyles replaces the style table. The root entry "" is added when
// missing.
func WithStyles(table styles.Table) Option {
	return func(p *Parser) {
		t := table.Merge(nil)
		if _, ok := t[""]; !ok {
			t[""] = ""
		}
		p.styles = t
	}
}

// WithMaxDepth bounds tag nesting. A value <= 0 disables the bound.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithStrategy selects the reduction strategy.
func WithStrategy(s Strategy) Option {
	return func(p *Parser) {
		p.strategy = s
	}
}

// WithCaches injects the memo caches, allowing several parsers to share
// them. Nil values disable memoization.
func WithCaches(colors *colormath.Cache, measure *escape.Measurer) Option {
	return func(p *Parser) {
		p.colors = colors
		p.measure = measure
	}
}

// WithCacheSize gives the parser its own caches of the given size.
func WithCacheSize(size int) Option {
	return func(p *Parser) {
		p.colors = colormath.NewCache(size)
		p.measure = escape.NewMeasurer(size)
	}
}

// WithLogger sets the logger used for evaluation tracing. Without it the
// parser does not log.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a Parser with the default style table, nesting bound and
// strategy.
func New(opts ...Option) *Parser {
	p := &Parser{
		styles:   styles.Default(),
		maxDepth: DefaultMaxDepth,
		strategy: StrategyStack,
		colors:   colormath.NewCache(0),
		measure:  escape.NewMeasurer(0),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Styles returns a copy of the parser's style table.
func (p *Parser) Styles() styles.Table {
	return p.styles.Merge(nil)
}

// Parse renders markup to an escape-coded string. Malformed markup fails
// with one of the syntax error codes of pkg/errors and no output.
func (p *Parser) Parse(text string) (string, error) {
	logger := p.logger
	start := time.Now()

	tokens := Tokenize(text)
	root, err := BuildTree(tokens, p.maxDepth)
	if err != nil {
		logger.Debug().Err(err).Int("tokens", len(tokens)).Msg("Markup structure rejected")
		return "", err
	}

	ev := &evaluator{
		styles:  p.styles,
		colors:  p.colors,
		measure: p.measure,
		logger:  logger,
	}
	out, err := ev.evaluate(root, p.strategy)
	if err != nil {
		return "", err
	}

	logger.Trace().
		Int("tokens", len(tokens)).
		Str("strategy", p.strategy.String()).
		Dur("duration", time.Since(start)).
		Msg("Markup rendered")
	return out, nil
}

// MustParse is like Parse but panics on malformed markup.
func (p *Parser) MustParse(text string) string {
	out, err := p.Parse(text)
	if err != nil {
		panic(err)
	}
	return out
}

// Clear removes every escape sequence from text.
func (p *Parser) Clear(text string) string {
	return p.measure.Clear(text)
}

// CleanLength counts the characters of text outside escape sequences.
func (p *Parser) CleanLength(text string) int {
	return p.measure.Length(text)
}

// Global parser instance
var defaultParser = New()

// Parse renders markup using the default parser.
func Parse(text string) (string, error) {
	return defaultParser.Parse(text)
}

// MustParse renders markup using the default parser, panicking on error.
func MustParse(text string) string {
	return defaultParser.MustParse(text)
}

// Clear strips escape sequences using the default parser's cache.
func Clear(text string) string {
	return defaultParser.Clear(text)
}

// CleanLength returns the visible length of text using the default
// parser's cache.
func CleanLength(text string) int {
	return defaultParser.CleanLength(text)
}
