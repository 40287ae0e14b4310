// Package steprange provides StepRange, an integer range characterized by a lower bound, an upper bound, a step and a
// base.
//
// A StepRange represents the list of all integers between its lower and upper bounds that are of the form
//
//	n*step + base
//
// for some integer n. The lower and upper bounds can be any combination of inclusive and exclusive, so any bound
// shape can be expressed directly instead of being simulated through adjusted start/stop arithmetic. Values are
// ordered such that (a*step + base) comes before (b*step + base) if and only if a < b: StepRanges with a positive
// step run from low to high and StepRanges with a negative step run from high to low.
package steprange

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// StepRange is an integer range characterized by a lower bound, an upper bound, a step and a base.
//
// An integer x is in the StepRange if and only if:
//   - lower.Number <= x if the lower bound is inclusive, lower.Number < x if it is exclusive,
//   - x <= upper.Number if the upper bound is inclusive, x < upper.Number if it is exclusive,
//   - x is of the form n*Step + Base for some integer n.
//
// Every value appears only once. StepRanges with a positive step run from low to high and StepRanges with a negative
// step run from high to low.
//
// Example: the StepRange with inclusive lower bound 0, exclusive upper bound 10, step 2 and base 1 represents all x
// with 0 <= x < 10 of the form 2n + 1, i.e. the list [1, 3, 5, 7, 9].
//
// Example: the StepRange with exclusive lower bound 5, inclusive upper bound 55, step -10 and base 5 represents all x
// with 5 < x <= 55 of the form -10n + 5, i.e. the list [55, 45, 35, 25, 15].
//
// A StepRange is immutable after construction: it keeps the Spec it was created from for introspection and the
// canonical Span derived from it for all queries. It is therefore safe for unrestricted concurrent read access.
type StepRange struct {
	spec Spec
	span Span
}

// New creates a StepRange from 1 to 4 numbers, with an inclusive lower and an exclusive upper bound:
//
//	New(upper)
//	New(lower, upper)
//	New(lower, upper, step)
//	New(lower, upper, step, base)
//
// The single-number form uses a lower bound of 0. The step defaults to 1 and the base to 0. It returns
// ErrInvalidArguments for any other number of arguments and ErrZeroStep if the step is 0.
func New(nums ...int64) (stepRange *StepRange, err error) {
	switch len(nums) {
	case 1:
		return FromSpec(NewSpec(NewBound(0, true), NewBound(nums[0], false), 1, 0))
	case 2, 3, 4:
		return newFromNums(true, false, nums)
	default:
		return nil, ierrors.Wrapf(ErrInvalidArguments, "expected 1 to 4 numbers, got %d", len(nums))
	}
}

// NewWithBoundType creates a StepRange from an explicit BoundType and 2 to 4 numbers:
//
//	NewWithBoundType(boundType, lower, upper)
//	NewWithBoundType(boundType, lower, upper, step)
//	NewWithBoundType(boundType, lower, upper, step, base)
//
// The step defaults to 1 and the base to 0. It returns ErrInvalidBoundType if the BoundType is not one of the four
// recognized values, ErrInvalidArguments for any other number of arguments and ErrZeroStep if the step is 0.
func NewWithBoundType(boundType BoundType, nums ...int64) (stepRange *StepRange, err error) {
	if boundType > BoundTypeClosed {
		return nil, ierrors.Wrapf(ErrInvalidBoundType, "unknown bound type %s", boundType)
	}

	if len(nums) < 2 || len(nums) > 4 {
		return nil, ierrors.Wrapf(ErrInvalidArguments, "expected 2 to 4 numbers, got %d", len(nums))
	}

	lowerInclusive, upperInclusive := boundType.Inclusivities()

	return newFromNums(lowerInclusive, upperInclusive, nums)
}

// newFromNums assembles a Spec from 2 to 4 numbers and the given inclusivities, filling in the default step and base.
func newFromNums(lowerInclusive bool, upperInclusive bool, nums []int64) (stepRange *StepRange, err error) {
	step, base := int64(1), int64(0)
	switch len(nums) {
	case 2:
	case 3:
		step = nums[2]
	case 4:
		step, base = nums[2], nums[3]
	default:
		return nil, ierrors.Wrapf(ErrInvalidArguments, "expected 2 to 4 numbers, got %d", len(nums))
	}

	return FromSpec(NewSpec(NewBound(nums[0], lowerInclusive), NewBound(nums[1], upperInclusive), step, base))
}

// FromSpec constructs a StepRange directly from a Spec. It returns ErrZeroStep if the Spec's step is 0; no StepRange
// is observable in that case.
func FromSpec(spec Spec) (stepRange *StepRange, err error) {
	if spec.Step == 0 {
		return nil, ErrZeroStep
	}

	return &StepRange{
		spec: spec,
		span: specToSpan(spec),
	}, nil
}

// FromSpan constructs the StepRange that contains the same values as the given Span. The inferred Spec uses an
// inclusive lower bound for positive steps (an inclusive upper bound for negative steps) and the Span's start value
// as the base; converting the result back with Span is lossless. It returns ErrZeroStep if the Span's step is 0.
func FromSpan(span Span) (stepRange *StepRange, err error) {
	if span.Step == 0 {
		return nil, ErrZeroStep
	}

	if span.Step > 0 {
		return FromSpec(NewSpec(NewBound(span.Start, true), NewBound(span.Stop, false), span.Step, span.Start))
	}

	return FromSpec(NewSpec(NewBound(span.Stop, false), NewBound(span.Start, true), span.Step, span.Start))
}

// FromBytes unmarshals a StepRange from a sequence of bytes.
func FromBytes(stepRangeBytes []byte) (stepRange *StepRange, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(stepRangeBytes)
	if stepRange, err = FromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse StepRange from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals a StepRange using a MarshalUtil (for easier unmarshalling).
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (stepRange *StepRange, err error) {
	spec, err := SpecFromMarshalUtil(marshalUtil)
	if err != nil {
		err = ierrors.Wrap(err, "failed to parse Spec from MarshalUtil")

		return
	}

	return FromSpec(spec)
}

// specToSpan computes the canonical Span of a Spec with a nonzero step.
//
// Let the "progress" of an integer x be the real number r with x = r*Step + Base. Writing a for the progress of the
// inclusive start bound and b for the progress of the exclusive stop bound, a value with integer progress p lies
// inside the bounds iff a <= p < b. The first value with progress >= a becomes the Span's start and the first value
// with progress >= b becomes its stop, which makes the number of values exactly ceil((stop-start)/step), clamped at
// zero when stop comes before start.
func specToSpan(spec Spec) Span {
	var inclusiveStart, exclusiveStop int64
	if spec.Step > 0 {
		inclusiveStart = spec.Lower.Number
		if !spec.Lower.Inclusive {
			inclusiveStart++
		}
		exclusiveStop = spec.Upper.Number
		if spec.Upper.Inclusive {
			exclusiveStop++
		}
	} else {
		inclusiveStart = spec.Upper.Number
		if !spec.Upper.Inclusive {
			inclusiveStart--
		}
		exclusiveStop = spec.Lower.Number
		if spec.Lower.Inclusive {
			exclusiveStop--
		}
	}

	return Span{
		Start: ceilProgress(inclusiveStart, spec.Step, spec.Base),
		Stop:  ceilProgress(exclusiveStop, spec.Step, spec.Base),
		Step:  spec.Step,
	}
}

// ceilProgress expresses x as r*step + base for a real number r and returns ceil(r)*step + base, using exact integer
// arithmetic so that arbitrarily large inputs stay precise.
func ceilProgress(x int64, step int64, base int64) int64 {
	return ceilDiv(x-base, step)*step + base
}

// LowerBound returns the lower bound of the StepRange.
func (s *StepRange) LowerBound() Bound {
	return s.spec.Lower
}

// UpperBound returns the upper bound of the StepRange.
func (s *StepRange) UpperBound() Bound {
	return s.spec.Upper
}

// Step returns the step of the StepRange. It is never 0.
func (s *StepRange) Step() int64 {
	return s.spec.Step
}

// Base returns the base of the StepRange.
func (s *StepRange) Base() int64 {
	return s.spec.Base
}

// Spec returns the Spec that the StepRange was constructed from, unchanged.
func (s *StepRange) Spec() Spec {
	return s.spec
}

// Span returns the canonical Span that contains the same values as the StepRange.
func (s *StepRange) Span() Span {
	return s.span
}

// Len returns the number of values in the StepRange without iterating them.
func (s *StepRange) Len() int {
	return s.span.Len()
}

// IsEmpty returns true if the StepRange contains no values.
func (s *StepRange) IsEmpty() bool {
	return s.span.IsEmpty()
}

// Contains returns true if x is one of the values of the StepRange.
func (s *StepRange) Contains(x int64) bool {
	return s.span.Contains(x)
}

// At returns the value at the given index. Negative indices count from the end. It returns ErrIndexOutOfRange if the
// index lies outside of [-Len, Len).
func (s *StepRange) At(index int) (value int64, err error) {
	return s.span.At(index)
}

// Index returns the position of x within the StepRange. It returns ErrValueNotFound if x is not one of its values.
func (s *StepRange) Index(x int64) (index int, err error) {
	return s.span.Index(x)
}

// Count returns the number of occurrences of x, which is never more than 1.
func (s *StepRange) Count(x int64) int {
	return s.span.Count(x)
}

// Slice applies the given selection to the StepRange and returns the result as a new StepRange (constructed through
// FromSpan, so its bound type is the inferred one). It returns ErrZeroStep if the selection steps by 0.
func (s *StepRange) Slice(selection Slice) (slicedStepRange *StepRange, err error) {
	slicedSpan, err := s.span.Slice(selection)
	if err != nil {
		return nil, err
	}

	return FromSpan(slicedSpan)
}

// Iterator returns a new Iterator over the values of the StepRange, from first to last.
func (s *StepRange) Iterator() *Iterator {
	return s.span.Iterator()
}

// ReverseIterator returns a new Iterator over the values of the StepRange, from last to first.
func (s *StepRange) ReverseIterator() *Iterator {
	return s.span.ReverseIterator()
}

// ToSlice returns the values of the StepRange as a slice of integers.
func (s *StepRange) ToSlice() []int64 {
	return s.span.ToSlice()
}

// Equal returns true if the other StepRange represents the same list of values, regardless of whether the two Specs
// differ.
func (s *StepRange) Equal(other *StepRange) bool {
	return other != nil && s.span.Equal(other.span)
}

// Hash returns a digest of the StepRange. It is computed from the canonical Span rather than the Spec, so StepRanges
// that are Equal always hash to the same value even if their Specs differ.
func (s *StepRange) Hash() uint64 {
	return s.span.Hash()
}

// Bytes returns a marshaled version of the StepRange. It serializes the Spec, so unmarshalling through FromBytes
// restores an identical Spec.
func (s *StepRange) Bytes() []byte {
	return s.spec.Bytes()
}

// String returns a textual form of the StepRange that Parse turns back into a StepRange with an identical Spec. The
// step is omitted while it still has its default value of 1 and the base is omitted while it is 0.
func (s *StepRange) String() string {
	boundType := BoundTypeFromInclusivities(s.spec.Lower.Inclusive, s.spec.Upper.Inclusive)
	switch {
	case s.spec.Base != 0:
		return fmt.Sprintf("StepRange(%q, %d, %d, %d, %d)", boundType.Tag(), s.spec.Lower.Number, s.spec.Upper.Number, s.spec.Step, s.spec.Base)
	case s.spec.Step != 1:
		return fmt.Sprintf("StepRange(%q, %d, %d, %d)", boundType.Tag(), s.spec.Lower.Number, s.spec.Upper.Number, s.spec.Step)
	default:
		return fmt.Sprintf("StepRange(%q, %d, %d)", boundType.Tag(), s.spec.Lower.Number, s.spec.Upper.Number)
	}
}
