package steprange

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// Bound is the lower or upper bound of a StepRange. It combines a numeric bound with the information whether the bound
// value itself belongs to the StepRange.
type Bound struct {
	// Number is the numeric value of the bound.
	Number int64

	// Inclusive indicates whether Number itself satisfies the bound.
	Inclusive bool
}

// NewBound creates a new Bound from the given details.
func NewBound(number int64, inclusive bool) Bound {
	return Bound{
		Number:    number,
		Inclusive: inclusive,
	}
}

// BoundFromBytes unmarshals a Bound from a sequence of bytes.
func BoundFromBytes(boundBytes []byte) (bound Bound, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundBytes)
	if bound, err = BoundFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Bound from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundFromMarshalUtil unmarshals a Bound using a MarshalUtil (for easier unmarshalling).
func BoundFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (bound Bound, err error) {
	if bound.Number, err = marshalUtil.ReadInt64(); err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Bound number: %v", err)

		return
	}
	if bound.Inclusive, err = marshalUtil.ReadBool(); err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Bound inclusivity: %v", err)

		return
	}

	return
}

// Bytes returns a marshaled version of the Bound.
func (b Bound) Bytes() []byte {
	return marshalutil.New().
		WriteInt64(b.Number).
		WriteBool(b.Inclusive).
		Bytes()
}

// String returns a human-readable version of the Bound.
func (b Bound) String() string {
	return stringify.Struct("Bound",
		stringify.NewStructField("number", b.Number),
		stringify.NewStructField("inclusive", b.Inclusive),
	)
}
