package markup_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/arthur-debert/ansimarkup/pkg/colormath"
	"github.com/arthur-debert/ansimarkup/pkg/errors"
	"github.com/arthur-debert/ansimarkup/pkg/escape"
	"github.com/arthur-debert/ansimarkup/pkg/markup"
	"github.com/arthur-debert/ansimarkup/pkg/styles"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	red   = "\x1b[38;2;255;0;0m"
	green = "\x1b[38;2;0;255;0m"
	reset = "\x1b[0m"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text is unchanged",
			input:    "hello, world",
			expected: "hello, world",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "bold",
			input:    "<bold>hi</bold>",
			expected: "\x1b[1mhi" + reset,
		},
		{
			name:     "empty style scope",
			input:    "<bold></bold>",
			expected: "\x1b[1m" + reset,
		},
		{
			name:     "nested styles",
			input:    "a<underline>b<italic>c</italic></underline>",
			expected: "a\x1b[4mb\x1b[3mc" + reset + reset,
		},
		{
			name:     "two character gradient hits both ends",
			input:    "<#ff0000>AB</#00ff00>",
			expected: red + "A" + green + "B" + reset,
		},
		{
			name:     "three character gradient midpoint",
			input:    "<#ff0000>ABC</#00ff00>",
			expected: red + "A" + "\x1b[38;2;128;128;0mB" + green + "C" + reset,
		},
		{
			name:     "solid color",
			input:    "<#ff0000>ab</#ff0000>",
			expected: red + "a" + red + "b" + reset,
		},
		{
			name:     "single character gradient uses start color",
			input:    "<#ff0000>X</#00ff00>",
			expected: red + "X" + reset,
		},
		{
			name:     "empty gradient",
			input:    "<#ff0000></#00ff00>",
			expected: reset,
		},
		{
			name:     "background needs both suffixes",
			input:    "<#000000:bg>x</#ffffff:bg>",
			expected: "\x1b[48;2;0;0;0mx" + reset,
		},
		{
			name:     "mixed suffix falls back to foreground",
			input:    "<#000000:bg>xy</#ffffff>",
			expected: "\x1b[38;2;0;0;0mx\x1b[38;2;255;255;255my" + reset,
		},
		{
			name:     "uppercase hex",
			input:    "<#FF0000>a</#FF0000>",
			expected: red + "a" + reset,
		},
		{
			name:     "gradient counts runes",
			input:    "<#ff0000>éü</#00ff00>",
			expected: red + "é" + green + "ü" + reset,
		},
		{
			name:     "gradient skips inner escape codes at both ends",
			input:    "<#000000><bold>ab</bold></#ffffff>",
			expected: "\x1b[1m\x1b[38;2;0;0;0ma\x1b[38;2;255;255;255mb" + reset + reset,
		},
		{
			name:     "escaped tags",
			input:    `\<bold>\</bold>`,
			expected: "<bold></bold>",
		},
		{
			name:     "escaped tag inside scope",
			input:    `<bold>\<i></bold>`,
			expected: "\x1b[1m<i>" + reset,
		},
		{
			name:     "lone angle brackets",
			input:    "1 < 2 > 0",
			expected: "1 < 2 > 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePriority(t *testing.T) {
	// the inner scope is a one-character gradient (start color), the outer
	// a solid red that re-colors the already red character
	got, err := markup.Parse("<#ff0000><#ff0000>X</#00ff00></#ff0000>")
	require.NoError(t, err)
	assert.Equal(t, red+red+"X"+reset+reset, got)
	assert.Equal(t, "X", markup.Clear(got))

	t.Run("outer gradient overrides inner on the same channel", func(t *testing.T) {
		got, err := markup.Parse("<#00ff00><#ff0000>AB</#ff0000></#00ff00>")
		require.NoError(t, err)
		// each character: inner red first, then the outer green
		assert.Equal(t, red+green+"A"+red+green+"B"+reset+reset, got)
	})

	t.Run("different channels are kept", func(t *testing.T) {
		got, err := markup.Parse("<#000000:bg><#ff0000>A</#ff0000></#000000:bg>")
		require.NoError(t, err)
		assert.Equal(t, red+"\x1b[48;2;0;0;0mA"+reset+reset, got)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.ErrorCode
	}{
		{"unmatched close", "</bold>", errors.ErrUnmatchedClose},
		{"unclosed tag", "<bold>", errors.ErrUnclosedTag},
		{"unknown tag", "<blinky>x</blinky>", errors.ErrUnknownTag},
		{"style mismatch", "<bold>x</italic>", errors.ErrTagMismatch},
		{"hex open with style close", "<#ff0000>x</bold>", errors.ErrInvalidColorPairing},
		{"style open with hex close", "<bold>x</#ff0000>", errors.ErrInvalidColorPairing},
		{"malformed hex is a style name", "<#ff00>x</#ff00>", errors.ErrUnknownTag},
		{"unterminated escape", "<#ff0000>a\x1b[31</#ff0000>", errors.ErrUnterminatedEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Parse(tt.input)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.True(t, errors.IsSyntaxError(err))
		})
	}

	t.Run("unknown tag detail", func(t *testing.T) {
		_, err := markup.Parse("<a><blinky>x</blinky></a>")
		require.Error(t, err)
		assert.Equal(t, "blinky", errors.GetErrorDetails(err)["tag"])
	})

	t.Run("deepest failure is reported", func(t *testing.T) {
		for _, strategy := range []markup.Strategy{markup.StrategyStack, markup.StrategyRescan} {
			p := markup.New(markup.WithStrategy(strategy))

			// the shallow unknown tag comes first, the mismatch sits deeper
			_, err := p.Parse("<shallow>a</shallow><bold><italic>b</bold></italic>")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTagMismatch), "%s: got %v", strategy, err)

			// equal depth: the leftmost wins
			_, err = p.Parse("<bold><first>a</first><second>b</second></bold>")
			require.Error(t, err)
			assert.Equal(t, "first", errors.GetErrorDetails(err)["tag"], strategy.String())

			// a failure inside a failing scope hides the outer one
			_, err = p.Parse("<outer><bold><inner>x</inner></bold></outer>")
			require.Error(t, err)
			assert.Equal(t, "inner", errors.GetErrorDetails(err)["tag"], strategy.String())
		}
	})

	t.Run("failure under a deep nest", func(t *testing.T) {
		const depth = 300
		input := "<nope>" + strings.Repeat("<bold>", depth) + "x" + strings.Repeat("</bold>", depth) + "</nope>"
		p := markup.New(markup.WithMaxDepth(0))
		_, err := p.Parse(input)
		require.Error(t, err)
		assert.Equal(t, "nope", errors.GetErrorDetails(err)["tag"])
	})

	t.Run("must parse panics", func(t *testing.T) {
		assert.Panics(t, func() { markup.MustParse("<bold>") })
		assert.NotPanics(t, func() { markup.MustParse("<bold>x</bold>") })
	})
}

func TestClearAndCleanLength(t *testing.T) {
	inputs := []string{
		"plain",
		"<bold>hi</bold> there",
		"<#8000f0><bold>Hello! This is</bold></#f00040> <#7700ff><blink>ANSIParser</blink>!</#3c00f0>",
		"<reverse><bold><#000000:bg><#ffffff>By VicExe0</#000000></#ffffff:bg></bold></reverse>",
		`<italic>\<tag> stays</italic>`,
	}
	visible := []string{
		"plain",
		"hi there",
		"Hello! This is ANSIParser!",
		"By VicExe0",
		"<tag> stays",
	}

	for i, input := range inputs {
		t.Run(visible[i], func(t *testing.T) {
			out, err := markup.Parse(input)
			require.NoError(t, err)
			assert.Equal(t, visible[i], markup.Clear(out))
			assert.Equal(t, len([]rune(visible[i])), markup.CleanLength(out))
		})
	}

	t.Run("text without escapes", func(t *testing.T) {
		assert.Equal(t, "a<b>c", markup.Clear("a<b>c"))
		assert.Equal(t, 5, markup.CleanLength("a<b>c"))
		assert.Equal(t, 3, markup.CleanLength("äöü"))
	})

	t.Run("unterminated escape is permissive", func(t *testing.T) {
		assert.Equal(t, "a\x1b[31", markup.Clear("a\x1b[31"))
		assert.Equal(t, 5, markup.CleanLength("a\x1b[31"))
	})
}

func TestParserOptions(t *testing.T) {
	t.Run("custom styles", func(t *testing.T) {
		p := markup.New(markup.WithStyles(styles.Table{"title": "\x1b[1;4m"}))
		got, err := p.Parse("<title>T</title>")
		require.NoError(t, err)
		assert.Equal(t, "\x1b[1;4mT"+reset, got)

		_, err = p.Parse("<bold>x</bold>")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag))

		assert.Contains(t, p.Styles(), "")
	})

	t.Run("max depth", func(t *testing.T) {
		p := markup.New(markup.WithMaxDepth(2))
		_, err := p.Parse("<bold><bold>x</bold></bold>")
		require.NoError(t, err)

		_, err = p.Parse("<bold><bold><bold>x</bold></bold></bold>")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNestingTooDeep))
	})

	t.Run("deep nesting without a bound", func(t *testing.T) {
		const depth = 500
		input := strings.Repeat("<#ff0000>", depth) + "x" + strings.Repeat("</#ff0000>", depth)
		p := markup.New(markup.WithMaxDepth(0))
		got, err := p.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "x", p.Clear(got))
		assert.Equal(t, depth, strings.Count(got, red))
		assert.Equal(t, depth, strings.Count(got, reset))
	})

	t.Run("shared caches", func(t *testing.T) {
		colors := colormath.NewCache(16)
		measure := escape.NewMeasurer(16)
		a := markup.New(markup.WithCaches(colors, measure))
		b := markup.New(markup.WithCaches(colors, measure), markup.WithStrategy(markup.StrategyRescan))

		outA, err := a.Parse("<#ff0000>abc</#0000ff>")
		require.NoError(t, err)
		outB, err := b.Parse("<#ff0000>abc</#0000ff>")
		require.NoError(t, err)
		assert.Equal(t, outA, outB)

		hex, lerp := colors.Len()
		assert.Equal(t, 2, hex)
		assert.Equal(t, 3, lerp)
		assert.Equal(t, 1, measure.Len())
	})

	t.Run("logger", func(t *testing.T) {
		prev := zerolog.GlobalLevel()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

		var buf bytes.Buffer
		p := markup.New(markup.WithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)))
		_, err := p.Parse("<bold>x</bold>")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"open":"bold"`)
		assert.Contains(t, buf.String(), "Reduced scope")

		buf.Reset()
		_, err = p.Parse("<nope>x</nope>")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "Scope resolution failed")
	})

	t.Run("silent without a logger", func(t *testing.T) {
		prevLevel := zerolog.GlobalLevel()
		prevLogger := log.Logger
		var buf bytes.Buffer
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
		t.Cleanup(func() {
			zerolog.SetGlobalLevel(prevLevel)
			log.Logger = prevLogger
		})

		p := markup.New()
		_, err := p.Parse("<bold>x</bold>")
		require.NoError(t, err)
		_, err = p.Parse("<nope>x</nope>")
		require.Error(t, err)
		_, err = markup.Parse("<#ff0000>x</#00ff00>")
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("empty style code still resets", func(t *testing.T) {
		p := markup.New(markup.WithStyles(styles.Table{"plain": ""}))
		got, err := p.Parse("a<plain>x</plain>b")
		require.NoError(t, err)
		assert.Equal(t, "ax"+reset+"b", got)

		got, err = p.Parse("ab")
		require.NoError(t, err)
		assert.Equal(t, "ab", got)
	})

	t.Run("without caches", func(t *testing.T) {
		p := markup.New(markup.WithCaches(nil, nil))
		got, err := p.Parse("<#ff0000>AB</#00ff00>")
		require.NoError(t, err)
		assert.Equal(t, red+"A"+green+"B"+reset, got)
		assert.Equal(t, 2, p.CleanLength(got))
	})

	t.Run("concurrent use", func(t *testing.T) {
		p := markup.New(markup.WithCacheSize(32))
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					got, err := p.Parse("<#ff0000>AB</#00ff00>")
					assert.NoError(t, err)
					assert.Equal(t, red+"A"+green+"B"+reset, got)
				}
			}()
		}
		wg.Wait()
	})
}

func TestParseStrategy(t *testing.T) {
	s, err := markup.ParseStrategy("rescan")
	require.NoError(t, err)
	assert.Equal(t, markup.StrategyRescan, s)

	s, err = markup.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, markup.StrategyStack, s)

	_, err = markup.ParseStrategy("bfs")
	assert.Error(t, err)

	assert.Equal(t, "stack", markup.StrategyStack.String())
	assert.Equal(t, "rescan", markup.StrategyRescan.String())
}
