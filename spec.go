package steprange

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// Spec is the complete description of a StepRange: its lower and upper bounds together with the step and base of the
// progression n*Step + Base.
//
// Note that Specs may have a step of 0, but StepRanges may not. Specs with a step of 0 do not describe valid
// StepRanges and are rejected by FromSpec.
type Spec struct {
	// Lower is the lower bound.
	Lower Bound

	// Upper is the upper bound.
	Upper Bound

	// Step is the distance between two consecutive values. It must be nonzero to describe a valid StepRange.
	Step int64

	// Base is the offset of the progression: every value is of the form n*Step + Base.
	Base int64
}

// NewSpec creates a new Spec from the given details.
func NewSpec(lower Bound, upper Bound, step int64, base int64) Spec {
	return Spec{
		Lower: lower,
		Upper: upper,
		Step:  step,
		Base:  base,
	}
}

// SpecFromBytes unmarshals a Spec from a sequence of bytes.
func SpecFromBytes(specBytes []byte) (spec Spec, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(specBytes)
	if spec, err = SpecFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Spec from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// SpecFromMarshalUtil unmarshals a Spec using a MarshalUtil (for easier unmarshalling).
func SpecFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (spec Spec, err error) {
	if spec.Lower, err = BoundFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse lower Bound from MarshalUtil")

		return
	}
	if spec.Upper, err = BoundFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse upper Bound from MarshalUtil")

		return
	}
	if spec.Step, err = marshalUtil.ReadInt64(); err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Spec step: %v", err)

		return
	}
	if spec.Base, err = marshalUtil.ReadInt64(); err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Spec base: %v", err)

		return
	}

	return
}

// Bytes returns a marshaled version of the Spec.
func (s Spec) Bytes() []byte {
	return marshalutil.New().
		Write(s.Lower).
		Write(s.Upper).
		WriteInt64(s.Step).
		WriteInt64(s.Base).
		Bytes()
}

// String returns a human-readable version of the Spec.
func (s Spec) String() string {
	return stringify.Struct("Spec",
		stringify.NewStructField("lower", s.Lower),
		stringify.NewStructField("upper", s.Upper),
		stringify.NewStructField("step", s.Step),
		stringify.NewStructField("base", s.Base),
	)
}
