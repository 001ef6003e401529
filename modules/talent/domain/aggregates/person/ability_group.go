package person

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iota-uz/talent-import/modules/talent/domain/level"
)

// AbilityGroup is an ability-name → raw value mapping that keeps document order.
// A repeated name keeps its first position and its last value.
type AbilityGroup []Ability

func (g AbilityGroup) Get(name string) (level.Value, bool) {
	for _, a := range g {
		if a.Name == name {
			return a.Value, true
		}
	}
	return level.Value{}, false
}

func (g *AbilityGroup) set(name string, v level.Value) {
	for i := range *g {
		if (*g)[i].Name == name {
			(*g)[i].Value = v
			return
		}
	}
	*g = append(*g, Ability{Name: name, Value: v})
}

func (g *AbilityGroup) UnmarshalJSON(data []byte) error {
	*g = nil
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ability group: expected object, got %v", tok)
	}

	out := AbilityGroup{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ability group: expected key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("ability group: %s: %w", key, err)
		}
		var v level.Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("ability group: %s: %w", key, err)
		}
		out.set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*g = out
	return nil
}

func (g *AbilityGroup) UnmarshalYAML(node *yaml.Node) error {
	*g = nil
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("ability group: line %d: expected mapping", node.Line)
	}

	out := AbilityGroup{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var v level.Value
		if err := v.UnmarshalYAML(valNode); err != nil {
			return fmt.Errorf("ability group: %s: %w", keyNode.Value, err)
		}
		out.set(keyNode.Value, v)
	}
	*g = out
	return nil
}
