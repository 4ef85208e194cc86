package dom

import "sort"

// Validate walks the full DOM rooted at n — every scalar, every
// annotation value, every array item and object entry — and returns
// every deferred error found, ordered by source position (spec.md
// §4.5 "Validate").
func Validate(n Node) []Error {
	var errs []Error
	collectErrors(n, &errs)
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Range.Start < errs[j].Range.Start
	})
	return errs
}

func collectErrors(n Node, out *[]Error) {
	if n == nil {
		return
	}
	*out = append(*out, n.Errors()...)
	for _, e := range n.Annotations().All() {
		collectErrors(e.Value, out)
	}
	switch v := n.(type) {
	case *ArrayNode:
		for _, item := range v.Items() {
			collectErrors(item, out)
		}
	case *ObjectNode:
		for _, e := range v.Entries().All() {
			collectErrors(e.Value, out)
		}
	}
}
