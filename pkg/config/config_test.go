package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ansimarkup/pkg/config"
	"github.com/arthur-debert/ansimarkup/pkg/errors"
	"github.com/arthur-debert/ansimarkup/pkg/terminal"
)

// isolate points the XDG config dir at a temp dir so no user file leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.LoadOptions{SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, 512, cfg.Parser.MaxDepth)
	assert.Equal(t, "stack", cfg.Parser.Strategy)
	assert.Equal(t, 1024, cfg.Parser.CacheSize)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Empty(t, cfg.Styles.File)
	assert.Empty(t, cfg.Styles.Extra)

	assert.Equal(t, cfg, config.Default())
}

func TestLoadLayers(t *testing.T) {
	t.Run("user config file from xdg dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "ansimarkup", "config.toml"), `
[parser]
max_depth = 64

[styles.extra]
title = "1;4"
`)

		cfg, err := config.Load(config.LoadOptions{SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.Parser.MaxDepth)
		assert.Equal(t, "stack", cfg.Parser.Strategy)
		assert.Equal(t, map[string]string{"title": "1;4"}, cfg.Styles.Extra)
	})

	t.Run("explicit yaml file", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, filepath.Join(t.TempDir(), "custom.yaml"), `
parser:
  strategy: rescan
output:
  color: never
`)

		cfg, err := config.Load(config.LoadOptions{ConfigFile: path, SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, "rescan", cfg.Parser.Strategy)
		assert.Equal(t, "never", cfg.Output.Color)
		assert.Equal(t, 512, cfg.Parser.MaxDepth)
	})

	t.Run("environment beats file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "ansimarkup", "config.toml"), "[parser]\nmax_depth = 64\n")
		t.Setenv("ANSIMARKUP_PARSER__MAX_DEPTH", "8")
		t.Setenv("ANSIMARKUP_OUTPUT__COLOR", "always")

		cfg, err := config.Load(config.LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Parser.MaxDepth)
		assert.Equal(t, "always", cfg.Output.Color)
	})

	t.Run("color mode aliases", func(t *testing.T) {
		isolate(t)
		for value, mode := range map[string]terminal.ColorMode{
			"force":  terminal.ColorAlways,
			"none":   terminal.ColorNever,
			"Always": terminal.ColorAlways,
			"":       terminal.ColorAuto,
		} {
			cfg, err := config.Load(config.LoadOptions{
				SkipEnv:   true,
				Overrides: map[string]interface{}{"output.color": value},
			})
			require.NoError(t, err, value)
			assert.Equal(t, mode, cfg.ColorMode(), value)
		}
	})

	t.Run("overrides beat environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("ANSIMARKUP_PARSER__MAX_DEPTH", "8")

		cfg, err := config.Load(config.LoadOptions{
			Overrides: map[string]interface{}{"parser.max_depth": 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Parser.MaxDepth)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{"malformed toml", "bad.toml", "[parser\nmax_depth = 1", errors.ErrConfigParse},
		{"unsupported format", "config.ini", "max_depth=1", errors.ErrConfigLoad},
		{"negative depth", "neg.toml", "[parser]\nmax_depth = -1", errors.ErrConfigValid},
		{"unknown strategy", "s.toml", "[parser]\nstrategy = \"bfs\"", errors.ErrConfigValid},
		{"unknown color mode", "c.toml", "[output]\ncolor = \"sometimes\"", errors.ErrConfigValid},
		{"bad style codes", "st.toml", "[styles.extra]\ntitle = \"1;x\"", errors.ErrConfigValid},
		{"bad style name", "sn.toml", "[styles.extra]\n\"my title\" = \"1\"", errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, filepath.Join(t.TempDir(), tt.file), tt.content)

			_, err := config.Load(config.LoadOptions{ConfigFile: path, SkipEnv: true})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestStyleTable(t *testing.T) {
	stylesFile := writeFile(t, filepath.Join(t.TempDir(), "styles.yaml"), `
styles:
  warn:
    codes: [1, 33]
`)

	cfg := config.Default()
	cfg.Styles.File = stylesFile
	cfg.Styles.Extra = map[string]string{"title": "1;4"}

	table, err := cfg.StyleTable()
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m", table["bold"])
	assert.Equal(t, "\x1b[1;33m", table["warn"])
	assert.Equal(t, "\x1b[1;4m", table["title"])

	p, err := cfg.NewParser()
	require.NoError(t, err)
	out, err := p.Parse("<title>T</title>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;4mT\x1b[0m", out)

	cfg.Styles.File = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.NewParser()
	assert.True(t, errors.IsErrorCode(err, errors.ErrStyleLoad))
}

func TestNewParserLogs(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevLogger := log.Logger
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	})

	p, err := config.Default().NewParser()
	require.NoError(t, err)
	_, err = p.Parse("<bold>x</bold>")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"component":"markup"`)
	assert.Contains(t, buf.String(), "Reduced scope")
}

func TestTOML(t *testing.T) {
	cfg := config.Default()
	cfg.Styles.Extra = map[string]string{"title": "1;4"}

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, out, "max_depth = 512")
	assert.Contains(t, out, "[styles.extra]")

	var back config.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &back))
	assert.Equal(t, *cfg, back)
}

func TestGenerateConfigContent(t *testing.T) {
	content := config.GenerateConfigContent()
	assert.Contains(t, content, "[parser]")
	assert.Contains(t, content, "# max_depth = 512")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), line)
	}
}
