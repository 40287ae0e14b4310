package steprange

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// BoundType names one of the four combinations of lower and upper bound inclusivities of a StepRange. A bound is
// "closed" if its endpoint value is part of the StepRange and "open" if it is not.
type BoundType uint8

const (
	// BoundTypeOpen indicates that both the lower and the upper bound are exclusive.
	BoundTypeOpen BoundType = iota

	// BoundTypeOpenClosed indicates an exclusive lower bound and an inclusive upper bound.
	BoundTypeOpenClosed

	// BoundTypeClosedOpen indicates an inclusive lower bound and an exclusive upper bound.
	BoundTypeClosedOpen

	// BoundTypeClosed indicates that both the lower and the upper bound are inclusive.
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeOpenClosed",
	"BoundTypeClosedOpen",
	"BoundTypeClosed",
}

// boundTypeTags contains the bracket notation of BoundTypes, indexed by the BoundType itself.
var boundTypeTags = [...]string{
	"()",
	"(]",
	"[)",
	"[]",
}

// BoundTypeFromTag parses a BoundType from its bracket notation. It returns ErrInvalidBoundType if the tag is not one
// of "()", "(]", "[)" or "[]".
func BoundTypeFromTag(tag string) (boundType BoundType, err error) {
	for candidate, candidateTag := range boundTypeTags {
		if tag == candidateTag {
			return BoundType(candidate), nil
		}
	}

	return 0, ierrors.Wrapf(ErrInvalidBoundType, "unknown bound type tag %q", tag)
}

// BoundTypeFromInclusivities returns the BoundType that corresponds to the given lower and upper bound inclusivities.
func BoundTypeFromInclusivities(lowerInclusive bool, upperInclusive bool) BoundType {
	switch {
	case lowerInclusive && upperInclusive:
		return BoundTypeClosed
	case lowerInclusive:
		return BoundTypeClosedOpen
	case upperInclusive:
		return BoundTypeOpenClosed
	default:
		return BoundTypeOpen
	}
}

// BoundTypeFromBytes unmarshals a BoundType from a sequence of bytes.
func BoundTypeFromBytes(boundTypeBytes []byte) (boundType BoundType, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundTypeBytes)
	if boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundTypeFromMarshalUtil unmarshals a BoundType using a MarshalUtil (for easier unmarshalling).
func BoundTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundType BoundType, err error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read BoundType: %v", err)

		return
	}

	if boundType = BoundType(boundTypeByte); boundType > BoundTypeClosed {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported BoundType (%X)", boundType)

		return
	}

	return
}

// Inclusivities returns whether the lower and the upper bound include their endpoint values.
func (b BoundType) Inclusivities() (lowerInclusive bool, upperInclusive bool) {
	return b == BoundTypeClosedOpen || b == BoundTypeClosed, b == BoundTypeOpenClosed || b == BoundTypeClosed
}

// Tag returns the bracket notation of the BoundType ("[)" for an inclusive lower and exclusive upper bound).
func (b BoundType) Tag() string {
	if int(b) >= len(boundTypeTags) {
		return b.String()
	}

	return boundTypeTags[b]
}

// Bytes returns a marshaled version of the BoundType.
func (b BoundType) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
