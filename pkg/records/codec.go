package records

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/textfilter/pkg/errors"
	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a rule file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// listKey is the table holding the rule list in TOML documents, and the
// optional wrapper key in JSON and YAML
const listKey = "rules"

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "jsonc":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrFormat, "unknown rule file format %q", s)
	}
}

// FormatFromPath picks a format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrFormat, "cannot tell the format of %q without an extension", path)
	}
	return ParseFormat(ext)
}

// Unmarshal decodes a rule list. Every format goes through DecodeLoose so the
// same type checks apply whatever the encoding.
func Unmarshal(format Format, data []byte) ([]Record, error) {
	var raw interface{}
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(jsonc.ToJSON(data), &raw)
	case FormatTOML:
		var doc map[string]interface{}
		err = toml.Unmarshal(data, &doc)
		raw = doc
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatXML:
		raw, err = decodeXML(data)
	default:
		return nil, errors.Newf(errors.ErrFormat, "unknown rule file format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFormat, "failed to decode %s rules", format)
	}

	return DecodeLoose(unwrapList(raw))
}

// unwrapList accepts either a bare list or a document with a rules key
func unwrapList(raw interface{}) interface{} {
	switch v := raw.(type) {
	case nil:
		return []interface{}{}
	case map[string]interface{}:
		list, ok := v[listKey]
		if !ok {
			return []interface{}{}
		}
		return list
	default:
		return raw
	}
}

// Marshal encodes recs in format
func Marshal(format Format, recs []Record) ([]byte, error) {
	if recs == nil {
		recs = []Record{}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(recs, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatTOML:
		data, err = toml.Marshal(struct {
			Rules []Record `toml:"rules"`
		}{Rules: recs})
	case FormatYAML:
		data, err = yaml.Marshal(recs)
	case FormatXML:
		data, err = encodeXML(recs)
	default:
		return nil, errors.Newf(errors.ErrFormat, "unknown rule file format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFormat, "failed to encode %s rules", format)
	}
	return data, nil
}

// LoadFile reads a rule file, picking the format from its extension
func LoadFile(path string) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read rules from %s", path).
			WithDetail("path", path)
	}

	recs, err := Unmarshal(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// SaveFile writes recs to path, picking the format from its extension
func SaveFile(path string, recs []Record) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(format, recs)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write rules to %s", path).
			WithDetail("path", path)
	}
	return nil
}
