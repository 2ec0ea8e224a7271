package styles

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/ansimarkup/pkg/errors"
)

// StyleDef represents a style definition in YAML. Either Codes or SGR is
// set; Codes wins when both are.
type StyleDef struct {
	Codes []int  `yaml:"codes,omitempty"`
	SGR   string `yaml:"sgr,omitempty"`
}

// Config represents a style table file
//
//	styles:
//	  title: {codes: [1, 4]}
//	  warn:  {sgr: "38;5;208"}
type Config struct {
	Styles map[string]StyleDef `yaml:"styles"`
}

// LoadFile loads a style table from a YAML file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleLoad, "failed to read styles file %s", path)
	}
	t, err := LoadData(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleLoad, "failed to load styles file %s", path)
	}
	return t, nil
}

// LoadData parses a style table from YAML bytes.
func LoadData(data []byte) (Table, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrStyleInvalid, "failed to parse styles data")
	}

	t := make(Table, len(cfg.Styles))
	for name, def := range cfg.Styles {
		code, err := buildCode(name, def)
		if err != nil {
			return nil, err
		}
		t[name] = code
	}
	return t, nil
}

func buildCode(name string, def StyleDef) (string, error) {
	if !ValidName(name) {
		return "", errors.Newf(errors.ErrStyleInvalid, "invalid style name %q", name)
	}
	if len(def.Codes) > 0 {
		for _, c := range def.Codes {
			if c < 0 || c > 255 {
				return "", errors.Newf(errors.ErrStyleInvalid, "style %s: code %d out of range", name, c)
			}
		}
		return Code(def.Codes...), nil
	}
	if def.SGR == "" {
		return "", errors.Newf(errors.ErrStyleInvalid, "style %s defines no codes", name)
	}
	code, err := ParseSGR(def.SGR)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrStyleInvalid, "style %s", name)
	}
	return code, nil
}
