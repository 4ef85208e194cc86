package serde

import (
	"github.com/goccy/go-yaml"

	"github.com/aledsdavies/jsona/pkgs/dom"
)

// ToYAML marshals a Node's YAML projection, the same lossy JSON-shaped
// projection ToJSON uses (spec.md §4.6 "annotations are dropped").
func ToYAML(n dom.Node) ([]byte, error) {
	v, err := ToValue(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

// FromYAML parses YAML text directly into a synthetic Node tree.
func FromYAML(data []byte) (dom.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromValue(v), nil
}
