package steprange

import (
	"github.com/cespare/xxhash/v2"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// Span is the canonical contiguous form of a StepRange: the values that start at Start, stop before Stop and advance
// by Step. It plays the role that a start/stop/step range type plays in other ecosystems.
//
// A Span is empty if Stop does not come after Start in the direction of Step. Empty Spans keep their raw Start and
// Stop values so that converting them through FromSpan and back is lossless; emptiness only ever shows up as a Len of
// 0, never as a negative count.
type Span struct {
	// Start is the first value of the Span (if the Span is not empty).
	Start int64

	// Stop is the exclusive limit of the Span.
	Stop int64

	// Step is the distance between two consecutive values.
	Step int64
}

// SpanFromBytes unmarshals a Span from a sequence of bytes.
func SpanFromBytes(spanBytes []byte) (span Span, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(spanBytes)
	if span, err = SpanFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Span from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// SpanFromMarshalUtil unmarshals a Span using a MarshalUtil (for easier unmarshalling).
func SpanFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (span Span, err error) {
	if span.Start, err = marshalUtil.ReadInt64(); err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Span start: %v", err)

		return
	}
	if span.Stop, err = marshalUtil.ReadInt64(); err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Span stop: %v", err)

		return
	}
	if span.Step, err = marshalUtil.ReadInt64(); err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Span step: %v", err)

		return
	}

	return
}

// Len returns the number of values in the Span without iterating them.
func (s Span) Len() int {
	if s.Step == 0 {
		return 0
	}

	if length := ceilDiv(s.Stop-s.Start, s.Step); length > 0 {
		return int(length)
	}

	return 0
}

// IsEmpty returns true if the Span contains no values.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Contains returns true if x is one of the values of the Span.
func (s Span) Contains(x int64) bool {
	switch {
	case s.Step > 0:
		if x < s.Start || x >= s.Stop {
			return false
		}
	case s.Step < 0:
		if x > s.Start || x <= s.Stop {
			return false
		}
	default:
		return false
	}

	return (x-s.Start)%s.Step == 0
}

// At returns the value at the given index. Negative indices count from the end. It returns ErrIndexOutOfRange if the
// index lies outside of [-Len, Len).
func (s Span) At(index int) (value int64, err error) {
	effectiveIndex := index
	if effectiveIndex < 0 {
		effectiveIndex += s.Len()
	}
	if effectiveIndex < 0 || effectiveIndex >= s.Len() {
		return 0, ierrors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, s.Len())
	}

	return s.Start + int64(effectiveIndex)*s.Step, nil
}

// Index returns the position of x within the Span. It returns ErrValueNotFound if x is not one of its values.
func (s Span) Index(x int64) (index int, err error) {
	if !s.Contains(x) {
		return 0, ierrors.Wrapf(ErrValueNotFound, "%d is not contained", x)
	}

	return int((x - s.Start) / s.Step), nil
}

// Count returns the number of occurrences of x, which is never more than 1.
func (s Span) Count(x int64) int {
	if s.Contains(x) {
		return 1
	}

	return 0
}

// Slice applies the given selection to the Span and returns the resulting Span. It returns ErrZeroStep if the
// selection steps by 0.
func (s Span) Slice(selection Slice) (slicedSpan Span, err error) {
	if selection.step != nil && *selection.step == 0 {
		return Span{}, ErrZeroStep
	}

	start, step, count := selection.indices(s.Len())
	slicedStep := s.Step * int64(step)
	slicedStart := s.Start + int64(start)*s.Step

	return Span{
		Start: slicedStart,
		Stop:  slicedStart + int64(count)*slicedStep,
		Step:  slicedStep,
	}, nil
}

// Iterator returns a new Iterator over the values of the Span, from first to last.
func (s Span) Iterator() *Iterator {
	return newIterator(s.Start, s.Step, s.Len())
}

// ReverseIterator returns a new Iterator over the values of the Span, from last to first.
func (s Span) ReverseIterator() *Iterator {
	length := s.Len()

	return newIterator(s.Start+int64(length-1)*s.Step, -s.Step, length)
}

// ToSlice returns the values of the Span as a slice of integers.
func (s Span) ToSlice() (values []int64) {
	for iterator := s.Iterator(); iterator.HasNext(); {
		values = append(values, iterator.Next())
	}

	return values
}

// Equal returns true if the other Span contains exactly the same values in the same order. All empty Spans are equal
// to each other and Spans with a single value compare independently of their step.
func (s Span) Equal(other Span) bool {
	length := s.Len()
	switch {
	case length != other.Len():
		return false
	case length == 0:
		return true
	case s.Start != other.Start:
		return false
	case length == 1:
		return true
	default:
		return s.Step == other.Step
	}
}

// Hash returns a digest of the Span. Spans that are Equal to each other always hash to the same value.
func (s Span) Hash() uint64 {
	length := int64(s.Len())
	normalizedStart, normalizedStep := int64(0), int64(0)
	if length > 0 {
		normalizedStart = s.Start
	}
	if length > 1 {
		normalizedStep = s.Step
	}

	return xxhash.Sum64(marshalutil.New().
		WriteInt64(length).
		WriteInt64(normalizedStart).
		WriteInt64(normalizedStep).
		Bytes())
}

// Bytes returns a marshaled version of the Span.
func (s Span) Bytes() []byte {
	return marshalutil.New().
		WriteInt64(s.Start).
		WriteInt64(s.Stop).
		WriteInt64(s.Step).
		Bytes()
}

// String returns a human-readable version of the Span.
func (s Span) String() string {
	return stringify.Struct("Span",
		stringify.NewStructField("start", s.Start),
		stringify.NewStructField("stop", s.Stop),
		stringify.NewStructField("step", s.Step),
	)
}

// floorDiv divides a by b rounding towards negative infinity. Go's native division truncates towards zero instead,
// which differs for negative quotients.
func floorDiv(a int64, b int64) int64 {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quotient--
	}

	return quotient
}

// ceilDiv divides a by b rounding towards positive infinity.
func ceilDiv(a int64, b int64) int64 {
	return -floorDiv(-a, b)
}
