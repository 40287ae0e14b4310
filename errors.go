package steprange

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidArguments is returned if a constructor receives a number of arguments it does not recognize.
	ErrInvalidArguments = ierrors.New("invalid step range arguments")

	// ErrInvalidBoundType is returned if a bound type is not one of the four recognized values.
	ErrInvalidBoundType = ierrors.New("invalid bound type")

	// ErrZeroStep is returned if the step of a StepRange resolves to 0.
	ErrZeroStep = ierrors.New("step range step cannot be 0")

	// ErrIndexOutOfRange is returned if an index lies outside of [-Len, Len).
	ErrIndexOutOfRange = ierrors.New("step range index out of range")

	// ErrValueNotFound is returned if Index is called with a value that is not part of the StepRange.
	ErrValueNotFound = ierrors.New("value not found in step range")

	// ErrParseFailed is returned if a StepRange can not be parsed from its textual form.
	ErrParseFailed = ierrors.New("failed to parse step range")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")
)
