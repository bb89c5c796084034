package pythonic

import (
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// maxRepeat bounds the element count produced by sequence repetition.
const maxRepeat = 1 << 28

// GraphRef is the handle a graph component hands out for storage in a Var.
// The graph itself lives outside this package.
type GraphRef interface {
	GraphID() uint64
}

// DictEntry is one key/value pair of a dictionary.
type DictEntry struct {
	Key   string
	Value Var
}

// dictPayload keeps keys sorted (Dict) or in insertion order (OrderedDict).
type dictPayload struct {
	keys []string
	vals map[string]Var
}

// NewList returns a List cell. The slice is retained.
func NewList(elems ...Var) Var {
	if elems == nil {
		elems = []Var{}
	}
	return Var{tag: TagList, ref: elems}
}

// NewSet returns a Set cell holding the distinct elements in sorted order.
func NewSet(elems ...Var) Var {
	return Var{tag: TagSet, ref: sortedUnique(elems)}
}

// NewOrderedSet returns an OrderedSet cell keeping the first occurrence of
// every distinct element in input order.
func NewOrderedSet(elems ...Var) Var {
	return Var{tag: TagOrderedSet, ref: firstUnique(elems)}
}

// NewDict returns a Dict cell. The map is copied.
func NewDict(m map[string]Var) Var {
	p := &dictPayload{
		keys: make([]string, 0, len(m)),
		vals: make(map[string]Var, len(m)),
	}
	for k, v := range m {
		p.keys = append(p.keys, k)
		p.vals[k] = v
	}
	sort.Strings(p.keys)
	return Var{tag: TagDict, ref: p}
}

// NewOrderedDict returns an OrderedDict cell. A repeated key keeps its
// first position and its last value.
func NewOrderedDict(entries ...DictEntry) Var {
	p := &dictPayload{
		keys: make([]string, 0, len(entries)),
		vals: make(map[string]Var, len(entries)),
	}
	for _, e := range entries {
		if _, ok := p.vals[e.Key]; !ok {
			p.keys = append(p.keys, e.Key)
		}
		p.vals[e.Key] = e.Value
	}
	return Var{tag: TagOrderedDict, ref: p}
}

// NewGraph wraps a graph handle. A nil handle gives None.
func NewGraph(g GraphRef) Var {
	if g == nil {
		return None()
	}
	return Var{tag: TagGraph, ref: g}
}

// Len returns the element count of strings and containers, and 0 otherwise.
func (v Var) Len() int {
	switch v.tag {
	case TagString:
		return len(v.ref.(string))
	case TagList, TagSet, TagOrderedSet:
		return len(v.ref.([]Var))
	case TagDict, TagOrderedDict:
		return len(v.ref.(*dictPayload).keys)
	}
	return 0
}

func sortedUnique(elems []Var) []Var {
	out := firstUnique(elems)
	slices.SortStableFunc(out, Compare)
	return out
}

// firstUnique keeps the first occurrence of every distinct element, in input
// order.
func firstUnique(elems []Var) []Var {
	seen := set.NewTreeSet[Var](Compare)
	out := make([]Var, 0, len(elems))
	for _, e := range elems {
		if seen.Insert(e) {
			out = append(out, e)
		}
	}
	return out
}

// entries returns the entries of a dictionary payload in stored order.
func (p *dictPayload) entries() []DictEntry {
	out := make([]DictEntry, len(p.keys))
	for i, k := range p.keys {
		out[i] = DictEntry{Key: k, Value: p.vals[k]}
	}
	return out
}

// concatList returns a new List holding a's elements followed by b's.
func concatList(a, b []Var) Var {
	out := make([]Var, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return NewList(out...)
}

// repeatList returns a new List holding n copies of elems; n <= 0 gives [].
func repeatList(elems []Var, n int64) (Var, error) {
	if n <= 0 || len(elems) == 0 {
		return NewList(), nil
	}
	if n > maxRepeat/int64(len(elems)) {
		return Var{}, &OpError{Op: OpMul, Left: TagList, Right: TagLong, Err: ErrOverflow}
	}
	return NewList(slices.Repeat(elems, int(n))...), nil
}

// repeatString is the string counterpart of repeatList.
func repeatString(s string, n int64) (Var, error) {
	if n <= 0 || len(s) == 0 {
		return NewString(""), nil
	}
	if n > maxRepeat/int64(len(s)) {
		return Var{}, &OpError{Op: OpMul, Left: TagString, Right: TagLong, Err: ErrOverflow}
	}
	return NewString(strings.Repeat(s, int(n))), nil
}
