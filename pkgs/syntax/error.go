package syntax

// Error is a syntax-level diagnostic: a byte range plus a fixed,
// human-readable message drawn from the parser's message corpus
// (spec.md §4.2/§7). Errors never abort parsing; they accumulate in
// Parse.Errors in document order.
type Error struct {
	Range   TextRange
	Message string
}
