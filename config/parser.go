package config

import (
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Parser deserializes a config source and validates the result. Either a
// fully valid Config comes back or an error does; never a partial one.
type Parser func(r io.Reader) (*Config, error)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var formatByExt = map[string]string{
	"json": "json",
	"yaml": "yaml",
	"yml":  "yaml",
}

var parserByFormat = map[string]Parser{
	"json": parseJSON,
	"yaml": parseYAML,
}

// FormatFromExt maps a file extension (with or without the leading dot)
// to a format token. The table is fixed; content is never sniffed.
func FormatFromExt(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	format, ok := formatByExt[ext]
	if !ok {
		return "", errors.Errorf("no known format for extension %q", ext)
	}
	return format, nil
}

// ParserFor returns the parser for a format token (`json` or `yaml`).
func ParserFor(format string) (Parser, error) {
	parser, ok := parserByFormat[format]
	if !ok {
		return nil, errors.Errorf("unsupported config format %q", format)
	}
	return parser, nil
}

func parseJSON(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding json config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseYAML(r io.Reader) (*Config, error) {
	var cfg Config
	// An empty document yields io.EOF; the zero Config falls through to
	// validation like any other incomplete input.
	err := yaml.NewDecoder(r).Decode(&cfg)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
