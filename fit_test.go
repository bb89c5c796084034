package pythonic

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestPromoteTags(t *testing.T) {
	cases := []struct {
		a, b Tag
		want Tag
	}{
		{TagInt, TagInt, TagInt},
		{TagInt, TagUInt, TagInt},
		{TagUInt, TagLong, TagLong},
		{TagULong, TagLong, TagLong},
		{TagLongLong, TagULongLong, TagLongLong},
		{TagBool, TagBool, TagBool},
		{TagBool, TagUInt, TagUInt},
		{TagULongLong, TagFloat, TagFloat},
		{TagDouble, TagFloat, TagDouble},
		{TagLongDouble, TagDouble, TagLongDouble},
		{TagString, TagDouble, TagString},
		{TagList, TagString, TagString},
		{TagList, TagInt, TagInt},
		{TagNone, TagDouble, TagDouble},
	}
	for _, tc := range cases {
		got, err := PromoteTags(tc.a, tc.b)
		if err != nil {
			t.Fatalf("PromoteTags(%s, %s): %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("PromoteTags(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
	if _, err := PromoteTags(TagList, TagDict); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("list, dict: expected type mismatch, got %v", err)
	}
}

func TestRankTable(t *testing.T) {
	order := []Tag{TagBool, TagUInt, TagInt, TagULong, TagLong, TagULongLong, TagLongLong, TagFloat, TagDouble, TagLongDouble}
	for i, tag := range order {
		r, ok := Rank(tag)
		if !ok || r != i {
			t.Fatalf("Rank(%s) = %d, %v; want %d", tag, r, ok, i)
		}
	}
	if r, _ := Rank(TagString); r != RankString {
		t.Fatalf("Rank(str) = %d", r)
	}
	if _, ok := Rank(TagGraph); ok {
		t.Fatalf("graph reported a rank")
	}
	if ArithmeticHost(TagBool) != TagInt || ArithmeticHost(TagULong) != TagULong {
		t.Fatalf("unexpected arithmetic host")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		a, b Tag
		want Classification
	}{
		{TagInt, TagFloat, HasFloat},
		{TagLongDouble, TagULong, HasFloat},
		{TagUInt, TagULongLong, BothUnsigned},
		{TagBool, TagUInt, BothUnsigned},
		{TagBool, TagBool, Others},
		{TagUInt, TagInt, Others},
		{TagLong, TagLong, Others},
	}
	for _, tc := range cases {
		if got := Classify(tc.a, tc.b); got != tc.want {
			t.Fatalf("Classify(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
	if FloorFor(TagLong, TagInt, true) != RankUInt {
		t.Fatalf("smallest fit floor should only exclude bool")
	}
	if FloorFor(TagLong, TagInt, false) != RankLong {
		t.Fatalf("floor without smallest fit should be the wider operand")
	}
	if FloorFor(TagBool, TagBool, false) != RankUInt {
		t.Fatalf("bool operands still floor at uint")
	}
}

func TestFitLadders(t *testing.T) {
	twoTo64 := new(big.Int).Lsh(big.NewInt(1), 64)
	huge := ExtendedFromFloat64(math.MaxFloat64).Mul(ExtendedFromInt64(4))
	cases := []struct {
		name        string
		raw         Raw
		class       Classification
		floor       int
		forceSigned bool
		tag         Tag
	}{
		{"small signed", RawInt64(5), Others, RankUInt, false, TagInt},
		{"small unsigned", RawInt64(5), BothUnsigned, RankUInt, false, TagUInt},
		{"wide unsigned", RawUint64(1 << 40), BothUnsigned, RankUInt, false, TagULong},
		{"max unsigned", RawUint64(math.MaxUint64), BothUnsigned, RankUInt, false, TagULong},
		{"wide signed", RawInt64(1 << 40), Others, RankUInt, false, TagLong},
		{"min signed", RawInt64(math.MinInt64), Others, RankUInt, false, TagLong},
		{"floor skips int", RawInt64(5), Others, RankULong, false, TagLong},
		{"floor above long", RawInt64(5), Others, RankULongLong, false, TagLongLong},
		{"floor on unsigned ladder", RawInt64(5), BothUnsigned, RankLong, false, TagULongLong},
		{"forced signed", RawInt64(5), BothUnsigned, RankUInt, true, TagInt},
		{"negative unsigned", RawInt64(-1), BothUnsigned, RankUInt, false, TagFloat},
		{"unsigned ladder exhausted", RawBigInt(twoTo64), BothUnsigned, RankUInt, false, TagFloat},
		{"signed ladder exhausted", RawUint64(math.MaxUint64), Others, RankUInt, false, TagLongDouble},
		{"integer with float class", RawInt64(5), HasFloat, RankUInt, false, TagFloat},
		{"exact float32", RawFloat64(0.5), HasFloat, RankUInt, false, TagFloat},
		{"needs double", RawFloat64(0.1), HasFloat, RankUInt, false, TagDouble},
		{"float floor", RawFloat64(0.5), HasFloat, RankDouble, false, TagDouble},
		{"beyond double", RawExtended(huge), HasFloat, RankUInt, false, TagLongDouble},
		{"int beyond int64 exact in float32", RawBigInt(new(big.Int).Neg(twoTo64)), Others, RankUInt, false, TagFloat},
	}
	for _, tc := range cases {
		v, err := Fit(tc.raw, tc.class, tc.floor, tc.forceSigned)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if v.Tag() != tc.tag {
			t.Fatalf("%s: tag = %s, want %s (%s)", tc.name, v.Tag(), tc.tag, v.Repr())
		}
		if !Equal(v, NewExtended(tc.raw.Extended())) {
			t.Fatalf("%s: value %s does not equal the exact result", tc.name, v.Repr())
		}
	}
}

func TestFitNonFinite(t *testing.T) {
	for _, x := range []Extended{ExtendedInf(1), ExtendedInf(-1), ExtendedNaN()} {
		if _, err := Fit(RawExtended(x), HasFloat, RankUInt, false); !errors.Is(err, ErrOverflow) {
			t.Fatalf("Fit(%s): expected overflow, got %v", x, err)
		}
	}
}
