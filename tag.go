package pythonic

// Tag identifies which kind a Var currently holds.
type Tag uint8

const (
	TagNone Tag = iota
	TagBool
	TagInt        // int32
	TagUInt       // uint32
	TagLong       // int64
	TagULong      // uint64
	TagLongLong   // int64
	TagULongLong  // uint64
	TagFloat      // float32
	TagDouble     // float64
	TagLongDouble // Extended
	TagString
	TagList
	TagSet
	TagDict
	TagOrderedSet
	TagOrderedDict
	TagGraph

	tagCount
)

var tagNames = [tagCount]string{
	TagNone:        "none",
	TagBool:        "bool",
	TagInt:         "int",
	TagUInt:        "uint",
	TagLong:        "long",
	TagULong:       "ulong",
	TagLongLong:    "long long",
	TagULongLong:   "ulong long",
	TagFloat:       "float",
	TagDouble:      "double",
	TagLongDouble:  "long double",
	TagString:      "str",
	TagList:        "list",
	TagSet:         "set",
	TagDict:        "dict",
	TagOrderedSet:  "orderedset",
	TagOrderedDict: "ordereddict",
	TagGraph:       "graph",
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "unknown"
}

// ParseTag returns the tag whose name is s.
func ParseTag(s string) (Tag, bool) {
	for i, name := range tagNames {
		if name == s {
			return Tag(i), true
		}
	}
	return TagNone, false
}

// IsNumeric reports whether t takes part in arithmetic promotion.
// Bool counts as numeric (0 or 1).
func (t Tag) IsNumeric() bool {
	return t >= TagBool && t <= TagLongDouble
}

// IsInteger reports whether t is Bool or one of the six integer kinds.
func (t Tag) IsInteger() bool {
	return t >= TagBool && t <= TagULongLong
}

// IsSigned reports whether t is a signed integer kind.
func (t Tag) IsSigned() bool {
	return t == TagInt || t == TagLong || t == TagLongLong
}

// IsUnsigned reports whether t is an unsigned integer kind.
func (t Tag) IsUnsigned() bool {
	return t == TagUInt || t == TagULong || t == TagULongLong
}

// IsFloat reports whether t is one of the floating kinds.
func (t Tag) IsFloat() bool {
	return t == TagFloat || t == TagDouble || t == TagLongDouble
}

// IsContainer reports whether t is a container or graph tag.
func (t Tag) IsContainer() bool {
	return t >= TagList && t <= TagGraph
}

// NumericTags lists the numeric tags in enumeration order.
func NumericTags() []Tag {
	out := make([]Tag, 0, TagLongDouble-TagBool+1)
	for t := TagBool; t <= TagLongDouble; t++ {
		out = append(out, t)
	}
	return out
}

// bitSize returns the payload width in bits for integer and float tags.
func (t Tag) bitSize() int {
	switch t {
	case TagBool:
		return 1
	case TagInt, TagUInt, TagFloat:
		return 32
	case TagLong, TagULong, TagLongLong, TagULongLong, TagDouble:
		return 64
	case TagLongDouble:
		return 80
	default:
		return 0
	}
}
