package dom

// PathSegment is one step of a Lookup path: either an object field name
// or an array index.
type PathSegment struct {
	key     string
	index   int
	isIndex bool
}

// Field builds a PathSegment that indexes into an Object by key.
func Field(key string) PathSegment { return PathSegment{key: key} }

// Elem builds a PathSegment that indexes into an Array by position.
func Elem(i int) PathSegment { return PathSegment{index: i, isIndex: true} }

// Lookup walks path from root, descending through Object entries and
// Array elements, and reports the node found at the end of the path, if
// any. This is a supplemental convenience the distilled spec omits but
// the original implementation's consumers relied on for traversing deep
// documents without hand-rolling a type switch at every level.
func Lookup(root Node, path ...PathSegment) (Node, bool) {
	cur := root
	for _, seg := range path {
		if seg.isIndex {
			arr, ok := cur.(*ArrayNode)
			if !ok || seg.index < 0 || seg.index >= len(arr.Items()) {
				return nil, false
			}
			cur = arr.Items()[seg.index]
			continue
		}
		obj, ok := cur.(*ObjectNode)
		if !ok {
			return nil, false
		}
		v, ok := obj.Get(seg.key)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}
