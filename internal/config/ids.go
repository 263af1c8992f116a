package config

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Scene and faction ids must be strings. Decoding never fails on a mistyped id:
// the raw text is kept and IDNotString is set so scene construction can reject
// the record while the file keeps its place in the scene list.

// splitYAMLID returns a copy of the mapping without its id pair, the id text, and
// whether the id was written as something other than a string scalar.
func splitYAMLID(node *yaml.Node) (*yaml.Node, string, bool) {
	if node.Kind != yaml.MappingNode {
		return node, "", false
	}
	rest := *node
	rest.Content = make([]*yaml.Node, 0, len(node.Content))
	var id string
	var notString bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Value != "id" {
			rest.Content = append(rest.Content, k, v)
			continue
		}
		switch {
		case v.Kind == yaml.ScalarNode && v.ShortTag() == "!!str":
			id = v.Value
		case v.Kind == yaml.ScalarNode && v.ShortTag() == "!!null":
		case v.Kind == yaml.ScalarNode:
			id, notString = v.Value, true
		default:
			notString = true
		}
	}
	return &rest, id, notString
}

func jsonID(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, false
		}
	}
	return string(raw), true
}

func (d *SceneDef) UnmarshalYAML(node *yaml.Node) error {
	type plain SceneDef
	rest, id, notString := splitYAMLID(node)
	var p plain
	if err := rest.Decode(&p); err != nil {
		return err
	}
	*d = SceneDef(p)
	d.ID, d.IDNotString = id, notString
	return nil
}

func (d *SceneDef) UnmarshalJSON(b []byte) error {
	type plain SceneDef
	var aux struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*d = SceneDef(aux.plain)
	d.ID, d.IDNotString = jsonID(aux.ID)
	return nil
}

func (d *FactionDef) UnmarshalYAML(node *yaml.Node) error {
	type plain FactionDef
	rest, id, notString := splitYAMLID(node)
	var p plain
	if err := rest.Decode(&p); err != nil {
		return err
	}
	*d = FactionDef(p)
	d.ID, d.IDNotString = id, notString
	return nil
}

func (d *FactionDef) UnmarshalJSON(b []byte) error {
	type plain FactionDef
	var aux struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*d = FactionDef(aux.plain)
	d.ID, d.IDNotString = jsonID(aux.ID)
	return nil
}
