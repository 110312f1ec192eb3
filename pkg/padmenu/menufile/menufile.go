// Package menufile loads menu definitions from TOML, YAML or JSON files and
// builds them into menus ready to run.
package menufile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown menu file format")

// File is the on disk form of a set of menus.
type File struct {
	Root  string    `toml:"root" yaml:"root" json:"root"`
	Menus []MenuDef `toml:"menus" yaml:"menus" json:"menus"`
}

type MenuDef struct {
	Name     string    `toml:"name" yaml:"name" json:"name"`
	Title    string    `toml:"title" yaml:"title" json:"title"`
	Storage  string    `toml:"storage" yaml:"storage" json:"storage"` // "ram" (default) or "rom"
	Flags    []string  `toml:"flags" yaml:"flags" json:"flags"`
	Selected int       `toml:"selected" yaml:"selected" json:"selected"`
	Items    []ItemDef `toml:"items" yaml:"items" json:"items"`
}

type ItemDef struct {
	Label   string   `toml:"label" yaml:"label" json:"label"`
	Literal bool     `toml:"literal" yaml:"literal" json:"literal"`
	Flags   []string `toml:"flags" yaml:"flags" json:"flags"`
	Exclude []int    `toml:"exclude" yaml:"exclude" json:"exclude"`
	Hook    string   `toml:"hook" yaml:"hook" json:"hook"`
	Value   string   `toml:"value" yaml:"value" json:"value"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse TOML: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &f, nil
}
