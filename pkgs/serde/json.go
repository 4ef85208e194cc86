package serde

import (
	"encoding/json"

	"github.com/aledsdavies/jsona/pkgs/dom"
)

// ToJSON marshals a Node's JSON projection. Object key order is not
// guaranteed to survive a round trip: encoding/json's own decoder (and
// therefore FromJSON) reads objects into a map, which has no order.
func ToJSON(n dom.Node) ([]byte, error) {
	v, err := ToValue(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// FromJSON parses raw JSON text directly into a synthetic Node tree.
// FromValue already promotes a whole-number float64 back to an integer
// node, so a JSON integer survives as dom.KindInteger rather than being
// pinned to Float.
func FromJSON(data []byte) (dom.Node, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromValue(v), nil
}
