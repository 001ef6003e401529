package level

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Kind uint8

const (
	KindAbsent Kind = iota
	KindNumeric
	KindText
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a raw attribute value as it appears in the source document.
// The zero Value is absent.
type Value struct {
	kind Kind
	num  float64
	text string
}

func Absent() Value             { return Value{kind: KindAbsent} }
func Numeric(v float64) Value   { return Value{kind: KindNumeric, num: v} }
func Text(s string) Value       { return Value{kind: KindText, text: s} }
func Unsupported() Value        { return Value{kind: KindUnsupported} }
func (v Value) Kind() Kind      { return v.kind }
func (v Value) Number() float64 { return v.num }
func (v Value) String() string  { return v.text }
func (v Value) IsAbsent() bool  { return v.kind == KindAbsent }

// UnmarshalJSON classifies a JSON token: null, number, string, anything else.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Absent()
		return nil
	}
	switch data[0] {
	case 'n':
		*v = Absent()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	case '{', '[', 't', 'f':
		if !json.Valid(data) {
			return fmt.Errorf("level: invalid json value")
		}
		*v = Unsupported()
		return nil
	}
	// out-of-range literals keep the ±Inf ParseFloat returns
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("level: invalid number %q: %w", data, err)
	}
	*v = Numeric(f)
	return nil
}

// UnmarshalYAML applies the same classification to YAML scalars.
// Only !!int and !!float scalars are numeric; quoted digits stay text.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		*v = Unsupported()
		return nil
	}
	switch node.ShortTag() {
	case "!!null":
		*v = Absent()
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			*v = Unsupported()
			return nil
		}
		*v = Numeric(f)
	case "!!str":
		*v = Text(node.Value)
	default:
		*v = Unsupported()
	}
	return nil
}
