package pythonic

import (
	"math"
	"testing"
)

type testGraph uint64

func (g testGraph) GraphID() uint64 { return uint64(g) }

func TestCompareAcrossKinds(t *testing.T) {
	ordered := []Var{
		None(),
		NewDouble(math.NaN()),
		NewDouble(math.Inf(-1)),
		NewLong(math.MinInt64),
		NewInt(-1),
		NewBool(false),
		NewFloat(0.5),
		NewBool(true),
		NewULong(math.MaxUint64),
		NewExtended(ExtendedFromUint64(math.MaxUint64).Add(ExtendedFromInt64(1))),
		NewDouble(math.Inf(1)),
		NewString(""),
		NewString("a"),
		NewList(),
		NewList(NewInt(1)),
		NewSet(NewInt(1)),
		NewDict(map[string]Var{"a": NewInt(1)}),
		NewOrderedSet(NewInt(1)),
		NewOrderedDict(DictEntry{Key: "a", Value: NewInt(1)}),
		NewGraph(testGraph(1)),
		NewGraph(testGraph(2)),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Fatalf("Compare(%s, %s) = %d, want %d", ordered[i].Repr(), ordered[j].Repr(), got, want)
			}
		}
	}
}

func TestEqualValuesHashEqually(t *testing.T) {
	groups := [][]Var{
		{NewInt(1), NewBool(true), NewUInt(1), NewLongLong(1), NewFloat(1), NewDouble(1), NewLongDouble(1)},
		{NewInt(0), NewDouble(math.Copysign(0, -1)), NewLongDouble(0), NewBool(false)},
		{NewULong(1 << 63), NewDouble(math.Ldexp(1, 63)), NewLongDouble(math.Ldexp(1, 63))},
		{NewLong(math.MinInt64), NewDouble(-math.Ldexp(1, 63))},
		{NewFloat(0.5), NewDouble(0.5), NewLongDouble(0.5)},
		{NewDouble(math.Ldexp(1, 100)), NewLongDouble(math.Ldexp(1, 100))},
		{NewDouble(math.NaN()), NewFloat(float32(math.NaN())), NewExtended(ExtendedNaN())},
		{NewList(NewInt(1), NewString("x")), NewList(NewDouble(1), NewString("x"))},
		{NewSet(NewInt(2), NewInt(1)), NewSet(NewDouble(1), NewLong(2), NewInt(1))},
		{NewDict(map[string]Var{"a": NewInt(1), "b": NewInt(2)}), NewDict(map[string]Var{"b": NewDouble(2), "a": NewUInt(1)})},
	}
	for gi, group := range groups {
		for _, v := range group[1:] {
			if !Equal(group[0], v) {
				t.Fatalf("group %d: %s != %s", gi, group[0].Repr(), v.Repr())
			}
			if Hash(group[0]) != Hash(v) {
				t.Fatalf("group %d: hash(%s) != hash(%s)", gi, group[0].Repr(), v.Repr())
			}
		}
	}
}

func TestContainerConstruction(t *testing.T) {
	set := NewSet(NewInt(2), NewDouble(2), NewInt(1), NewString("a"))
	expectVar(t, set, TagSet, "{1, 2, 'a'}")

	oset := NewOrderedSet(NewInt(3), NewInt(1), NewDouble(3), NewInt(1))
	expectVar(t, oset, TagOrderedSet, "{3, 1}")

	dict := NewDict(map[string]Var{"b": NewInt(1), "a": NewInt(2)})
	expectVar(t, dict, TagDict, "{'a': 2, 'b': 1}")

	od := NewOrderedDict(
		DictEntry{Key: "b", Value: NewInt(1)},
		DictEntry{Key: "a", Value: NewInt(2)},
		DictEntry{Key: "b", Value: NewInt(3)},
	)
	expectVar(t, od, TagOrderedDict, "{'b': 3, 'a': 2}")
	if v, ok := od.Get("b"); !ok || !Equal(v, NewInt(3)) {
		t.Fatalf("Get(b) = %s, %v", v.Repr(), ok)
	}
	if od.Len() != 2 {
		t.Fatalf("Len = %d", od.Len())
	}

	swapped := NewOrderedDict(
		DictEntry{Key: "a", Value: NewInt(2)},
		DictEntry{Key: "b", Value: NewInt(3)},
	)
	if Equal(od, swapped) {
		t.Fatalf("ordered dicts with different key order compared equal")
	}
	expectVar(t, NewSet(), TagSet, "set()")
	expectVar(t, NewList(), TagList, "[]")
}

func TestNilGraphIsNone(t *testing.T) {
	g := NewGraph(nil)
	if !g.IsNone() {
		t.Fatalf("NewGraph(nil) tag = %s", g.Tag())
	}
	if !Equal(g, NewGraph(nil)) || Compare(g, NewGraph(testGraph(0))) >= 0 {
		t.Fatalf("nil graph does not order as None")
	}
	if Hash(g) != Hash(None()) || g.String() != "None" {
		t.Fatalf("nil graph hash/text = %d %q", Hash(g), g.String())
	}
}

func TestSetDeduplicatesAcrossKinds(t *testing.T) {
	nan := NewDouble(math.NaN())
	oset := NewOrderedSet(NewString("b"), nan, NewLong(2), NewFloat(float32(math.NaN())), NewString("b"), NewDouble(2), NewBool(true), NewInt(1))
	expectVar(t, oset, TagOrderedSet, "{'b', nan, 2, True}")
	if got := oset.ElemsUnchecked()[2].Tag(); got != TagLong {
		t.Fatalf("kept %s, want the first occurrence", got)
	}
	expectVar(t, NewSet(NewString("b"), NewLong(2), NewInt(2), NewBool(true), NewInt(1)), TagSet, "{True, 2, 'b'}")
}

func TestAccessors(t *testing.T) {
	if _, err := NewInt(1).AsLong(); err == nil {
		t.Fatalf("AsLong on int should fail")
	}
	if x, err := NewULong(7).AsULong(); err != nil || x != 7 {
		t.Fatalf("AsULong = %d, %v", x, err)
	}
	if _, err := NewULong(math.MaxUint64).AsInt64(); err == nil {
		t.Fatalf("AsInt64 above int64 should fail")
	}
	if x, err := NewBool(true).AsInt64(); err != nil || x != 1 {
		t.Fatalf("AsInt64(true) = %d, %v", x, err)
	}
	if _, err := NewString("x").AsFloat64(); err == nil {
		t.Fatalf("AsFloat64 on str should fail")
	}
	elems, err := NewOrderedSet(NewInt(1)).AsSet()
	if err != nil || len(elems) != 1 {
		t.Fatalf("AsSet = %v, %v", elems, err)
	}
	g, err := NewGraph(testGraph(9)).AsGraph()
	if err != nil || g.GraphID() != 9 {
		t.Fatalf("AsGraph = %v, %v", g, err)
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{"a": []int{1, 2}, "b": nil, "c": uint8(3)})
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	expectVar(t, v, TagDict, "{'a': [1, 2], 'b': None, 'c': 3}")
	if _, err := FromAny(struct{}{}); err == nil {
		t.Fatalf("FromAny(struct) should fail")
	}
	if _, err := FromAny(map[int]int{1: 1}); err == nil {
		t.Fatalf("FromAny(map[int]int) should fail")
	}
}
