// Package document reads person records from a JSON or YAML file.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
)

var (
	ErrUnreadable = errors.New("input unreadable")
	ErrDecode     = errors.New("input not decodable")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the decoder by file extension; anything but .yaml/.yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func Load(path string) ([]person.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return Decode(b, FormatOf(path))
}

func Decode(b []byte, format Format) ([]person.Record, error) {
	var records []person.Record
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		if len(bytes.TrimSpace(b)) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		if err := json.Unmarshal(b, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}
	return records, nil
}
