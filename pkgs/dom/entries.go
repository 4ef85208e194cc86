package dom

// Entry is one (Key, Node) pair, used both by Object (one per key) and
// by the per-node annotations container (one per "@name" attached to a
// value).
type Entry struct {
	Key   Key
	Value Node
}

// Entries is an insertion-ordered list of (Key, Node) pairs with an
// auxiliary lookup map, generalized from the teacher's
// pkgs/decorators.Registry — a plain map[string]T with an exists bool —
// by adding the "all" slice that preserves source order the registry
// never needed (decorators are looked up by name only, never iterated
// in declaration order).
type Entries struct {
	all    []Entry
	lookup map[string]int // index into all; invalid keys use sentinel slots
	nextID int            // sentinel counter for invalid-key slots
}

// NewEntries returns an empty entries container.
func NewEntries() *Entries {
	return &Entries{lookup: make(map[string]int)}
}

// All returns every entry in source order, including later occurrences
// of a duplicate key (spec.md invariant 4).
func (e *Entries) All() []Entry { return e.all }

// Len returns the number of entries, including duplicates.
func (e *Entries) Len() int { return len(e.all) }

// Get returns the first (canonical) value stored under key, if any.
func (e *Entries) Get(key string) (Node, bool) {
	idx, ok := e.lookup[key]
	if !ok {
		return nil, false
	}
	return e.all[idx].Value, true
}

// Add appends an entry. If key is valid and already present, the new
// entry is still appended to All() but the earlier occurrence remains
// the canonical lookup hit; Add reports whether this was a conflict and,
// if so, the key of the first (canonical) occurrence.
func (e *Entries) Add(key Key, value Node) (conflictsWith Key, conflict bool) {
	entry := Entry{Key: key, Value: value}
	if key.IsValid() {
		if idx, exists := e.lookup[key.Text()]; exists {
			e.all = append(e.all, entry)
			return e.all[idx].Key, true
		}
		e.lookup[key.Text()] = len(e.all)
		e.all = append(e.all, entry)
		return Key{}, false
	}

	// Invalid keys never collide with anything, including each other
	// (spec.md §9): give each one a private sentinel slot in lookup.
	// Later duplicates of a valid key get no lookup slot of their own.
	e.nextID++
	e.lookup[invalidSentinel(e.nextID)] = len(e.all)
	e.all = append(e.all, entry)
	return Key{}, false
}

func invalidSentinel(n int) string {
	// NUL can never appear in an unescaped JSONA string, so sentinels
	// never collide with a real valid key.
	return "\x00invalid#" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
