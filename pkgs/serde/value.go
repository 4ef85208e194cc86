// Package serde converts between a dom.Node and the three interchange
// formats SPEC_FULL.md's domain stack wires in: JSON, YAML, and CBOR.
// Every conversion routes through ToValue/FromValue, a single plain-Go
// intermediate representation (nil, bool, uint64/int64, float64,
// string, []any, map[string]any) that each format's own library already
// knows how to marshal. Annotations are never part of this
// representation — they are JSONA-specific metadata with no equivalent
// in any of the three wire formats.
package serde

import "github.com/aledsdavies/jsona/pkgs/dom"

// ToValue flattens a Node into the plain Go value its concrete kind
// represents, dropping annotations and syntax positions.
func ToValue(n dom.Node) (any, error) {
	switch v := n.(type) {
	case *dom.NullNode:
		return nil, nil
	case *dom.BoolNode:
		return v.Value(), nil
	case *dom.IntegerNode:
		if v.Value().IsNegative() {
			return v.Value().AsInt64(), nil
		}
		return v.Value().AsUint64(), nil
	case *dom.FloatNode:
		return v.Value(), nil
	case *dom.StrNode:
		return v.Value(), nil
	case *dom.ArrayNode:
		items := v.Items()
		out := make([]any, len(items))
		for i, item := range items {
			val, err := ToValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	case *dom.ObjectNode:
		entries := v.Entries().All()
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			if !e.Key.IsValid() {
				continue
			}
			val, err := ToValue(e.Value)
			if err != nil {
				return nil, err
			}
			out[e.Key.Text()] = val
		}
		return out, nil
	default:
		return nil, &UnsupportedNodeError{Kind: n.NodeKind()}
	}
}

// FromValue builds a synthetic Node tree from a plain Go value of the
// kind ToValue produces (plus the common numeric/map shapes a JSON,
// YAML, or CBOR decoder hands back).
func FromValue(v any) dom.Node {
	switch t := v.(type) {
	case nil:
		return dom.NewNull()
	case bool:
		return dom.NewBool(t)
	case string:
		return dom.NewStr(t)
	case int:
		return intToNode(int64(t))
	case int64:
		return intToNode(t)
	case uint64:
		return dom.NewInteger(dom.Positive(t), dom.ReprDec)
	case float64:
		if isWholeNumber(t) {
			return intToNode(int64(t))
		}
		return dom.NewFloat(t)
	case []any:
		items := make([]dom.Node, len(t))
		for i, e := range t {
			items[i] = FromValue(e)
		}
		return dom.NewArray(items, dom.Inline)
	case map[string]any:
		entries := dom.NewEntries()
		for k, val := range t {
			entries.Add(dom.NewKey(k), FromValue(val))
		}
		return dom.NewObject(entries, dom.Inline)
	default:
		return dom.NewInvalid()
	}
}

func intToNode(v int64) *dom.IntegerNode {
	if v < 0 {
		return dom.NewInteger(dom.Negative(v), dom.ReprDec)
	}
	return dom.NewInteger(dom.Positive(uint64(v)), dom.ReprDec)
}

func isWholeNumber(f float64) bool {
	return f == float64(int64(f))
}

// UnsupportedNodeError reports that a Node kind has no representation
// in the target interchange format.
type UnsupportedNodeError struct {
	Kind dom.NodeKind
}

func (e *UnsupportedNodeError) Error() string {
	return "serde: cannot serialize a " + e.Kind.String() + " node"
}
