package pythonic

// NoRank is reported for kinds that do not take part in promotion.
const NoRank = -1

// Unsigned kinds sit just below the signed kind of the same width, so a
// signed operand wins a mixed pairing.
const (
	RankBool       = 0
	RankUInt       = 1
	RankInt        = 2
	RankULong      = 3
	RankLong       = 4
	RankULongLong  = 5
	RankLongLong   = 6
	RankFloat      = 7
	RankDouble     = 8
	RankLongDouble = 9
	RankString     = 100
)

var ranks = [tagCount]int{
	TagNone:        NoRank,
	TagBool:        RankBool,
	TagInt:         RankInt,
	TagUInt:        RankUInt,
	TagLong:        RankLong,
	TagULong:       RankULong,
	TagLongLong:    RankLongLong,
	TagULongLong:   RankULongLong,
	TagFloat:       RankFloat,
	TagDouble:      RankDouble,
	TagLongDouble:  RankLongDouble,
	TagString:      RankString,
	TagList:        NoRank,
	TagSet:         NoRank,
	TagDict:        NoRank,
	TagOrderedSet:  NoRank,
	TagOrderedDict: NoRank,
	TagGraph:       NoRank,
}

// Rank returns the promotion rank of t. ok is false for kinds without one.
func Rank(t Tag) (int, bool) {
	if t >= tagCount {
		return NoRank, false
	}
	r := ranks[t]
	return r, r != NoRank
}

func rankOf(t Tag) int {
	r, _ := Rank(t)
	return r
}

// PromoteTags returns the kind that hosts a binary operation between a and b.
// String dominates, then the higher rank wins. A side without a rank yields
// to the other side; when neither side ranks the result is ErrTypeMismatch.
func PromoteTags(a, b Tag) (Tag, error) {
	if a == TagString || b == TagString {
		return TagString, nil
	}
	ra, oka := Rank(a)
	rb, okb := Rank(b)
	switch {
	case oka && okb:
		if rb > ra {
			return b, nil
		}
		return a, nil
	case oka:
		return a, nil
	case okb:
		return b, nil
	}
	return TagNone, &OpError{Op: OpPromote, Left: a, Right: b, Err: ErrTypeMismatch}
}

// ArithmeticHost maps a promoted kind to the kind arithmetic runs in. Bool
// cannot hold True + True, so it computes in Int.
func ArithmeticHost(t Tag) Tag {
	if t == TagBool {
		return TagInt
	}
	return t
}

// Classification summarises an operand pairing for the smallest-fit search.
type Classification uint8

const (
	HasFloat Classification = iota
	BothUnsigned
	Others
)

func (c Classification) String() string {
	switch c {
	case HasFloat:
		return "has float"
	case BothUnsigned:
		return "both unsigned"
	}
	return "others"
}

// Classify derives the classification of a numeric pairing. Bool counts as
// unsigned when paired with an unsigned kind.
func Classify(a, b Tag) Classification {
	switch {
	case a.IsFloat() || b.IsFloat():
		return HasFloat
	case a == TagBool && b == TagBool:
		return Others
	case (a.IsUnsigned() || a == TagBool) && (b.IsUnsigned() || b == TagBool):
		return BothUnsigned
	}
	return Others
}

// FloorFor returns the rank floor of the smallest-fit search. With
// smallestFit the floor only excludes Bool; otherwise the result may not be
// narrower than either operand.
func FloorFor(a, b Tag, smallestFit bool) int {
	if smallestFit {
		return RankUInt
	}
	return max(rankOf(a), rankOf(b), RankUInt)
}
