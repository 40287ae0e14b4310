package steprange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoundBytes tests marshalling and unmarshalling of Bounds.
func TestBoundBytes(t *testing.T) {
	for _, bound := range []Bound{
		NewBound(0, true),
		NewBound(-7, false),
		NewBound(1<<62, true),
		NewBound(-(1 << 62), false),
	} {
		marshaledBound := bound.Bytes()
		unmarshaledBound, consumedBytes, err := BoundFromBytes(marshaledBound)
		require.NoError(t, err)
		require.Equal(t, len(marshaledBound), consumedBytes)
		require.Equal(t, bound, unmarshaledBound)
	}

	_, _, err := BoundFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

// TestSpecBytes tests marshalling and unmarshalling of Specs.
func TestSpecBytes(t *testing.T) {
	for _, spec := range []Spec{
		NewSpec(NewBound(0, true), NewBound(10, false), 1, 0),
		NewSpec(NewBound(5, false), NewBound(55, true), -10, 5),
		NewSpec(NewBound(-3, true), NewBound(3, true), 0, 7),
	} {
		marshaledSpec := spec.Bytes()
		unmarshaledSpec, consumedBytes, err := SpecFromBytes(marshaledSpec)
		require.NoError(t, err)
		require.Equal(t, len(marshaledSpec), consumedBytes)
		require.Equal(t, spec, unmarshaledSpec)
	}

	_, _, err := SpecFromBytes(NewBound(12, true).Bytes())
	require.ErrorIs(t, err, ErrParseBytesFailed)
}
