package person

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ScalarKind uint8

const (
	ScalarNull ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarText
	ScalarBool
)

// Scalar is a profile attribute copied to the store exactly as the document
// wrote it: null, integer, float, text or boolean. The zero Scalar is null.
type Scalar struct {
	kind ScalarKind
	i    int64
	f    float64
	s    string
	b    bool
}

func NullScalar() Scalar           { return Scalar{} }
func IntScalar(v int64) Scalar     { return Scalar{kind: ScalarInt, i: v} }
func FloatScalar(v float64) Scalar { return Scalar{kind: ScalarFloat, f: v} }
func TextScalar(v string) Scalar   { return Scalar{kind: ScalarText, s: v} }
func BoolScalar(v bool) Scalar     { return Scalar{kind: ScalarBool, b: v} }
func (s Scalar) Kind() ScalarKind  { return s.kind }
func (s Scalar) IsNull() bool      { return s.kind == ScalarNull }

// String renders the value as text; null renders as "".
func (s Scalar) String() string {
	switch s.kind {
	case ScalarInt:
		return strconv.FormatInt(s.i, 10)
	case ScalarFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case ScalarText:
		return s.s
	case ScalarBool:
		return strconv.FormatBool(s.b)
	default:
		return ""
	}
}

// Text is String for non-null values and nil for null, for TEXT columns.
func (s Scalar) Text() *string {
	if s.IsNull() {
		return nil
	}
	out := s.String()
	return &out
}

// Value binds the native Go value, so untyped SQLite columns keep the
// document's type.
func (s Scalar) Value() (driver.Value, error) {
	switch s.kind {
	case ScalarInt:
		return s.i, nil
	case ScalarFloat:
		return s.f, nil
	case ScalarText:
		return s.s, nil
	case ScalarBool:
		return s.b, nil
	default:
		return nil, nil
	}
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = NullScalar()
		return nil
	}
	switch data[0] {
	case 'n':
		*s = NullScalar()
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = TextScalar(v)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = BoolScalar(v)
	case '{', '[':
		return fmt.Errorf("expected a scalar, got %s", jsonKind(data[0]))
	default:
		*s = parseNumber(string(data))
		if s.IsNull() {
			return fmt.Errorf("invalid number %q", data)
		}
	}
	return nil
}

// parseNumber keeps integer literals integral; anything with a fraction or
// exponent, or too large for int64, becomes a float. Null means unparsable.
func parseNumber(lit string) Scalar {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return IntScalar(i)
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return NullScalar()
	}
	return FloatScalar(f)
}

func jsonKind(c byte) string {
	if c == '{' {
		return "object"
	}
	return "array"
}

func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*s = NullScalar()
	case "!!int":
		var v int64
		if err := node.Decode(&v); err == nil {
			*s = IntScalar(v)
			return nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			*s = TextScalar(node.Value)
			return nil
		}
		*s = FloatScalar(f)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			*s = TextScalar(node.Value)
			return nil
		}
		*s = FloatScalar(f)
	case "!!bool":
		var v bool
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = BoolScalar(v)
	default:
		*s = TextScalar(node.Value)
	}
	return nil
}
