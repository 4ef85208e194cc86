package serde

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/jsona/pkgs/dom"
)

// cborDecMode decodes a CBOR map into any as map[string]any rather than
// fxamacker/cbor's own default of map[interface{}]interface{}, so the
// result is a shape FromValue actually handles instead of falling
// through to NewInvalid.
var cborDecMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{DefaultMapType: reflect.TypeOf(map[string]any{})}.DecMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// ToCBOR marshals a Node's CBOR projection, useful for caching a parsed
// document or shipping it over a wire protocol without re-parsing
// JSONA source text.
func ToCBOR(n dom.Node) ([]byte, error) {
	v, err := ToValue(n)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(v)
}

// FromCBOR decodes CBOR-encoded data directly into a synthetic Node
// tree.
func FromCBOR(data []byte) (dom.Node, error) {
	var v any
	if err := cborDecMode.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromValue(v), nil
}
