package repository

import (
	"dojo/catalog"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog format %q", s)
	}
}

func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// catalogFile is the on-disk layout: a top-level techniques list.
type catalogFile struct {
	Techniques []*catalog.Technique `json:"techniques" yaml:"techniques"`
}

func Decode(r io.Reader, format Format) ([]*catalog.Technique, error) {
	var file catalogFile
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode json catalog: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if file.Techniques == nil {
		file.Techniques = []*catalog.Technique{}
	}
	return file.Techniques, nil
}

func Encode(w io.Writer, format Format, techniques []*catalog.Technique) error {
	file := catalogFile{Techniques: techniques}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported catalog format %q", format)
	}
}
