package steprange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSpanLen tests the exact length arithmetic, including empty and non-aligned Spans.
func TestSpanLen(t *testing.T) {
	lengths := map[Span]int{
		{Start: 0, Stop: 10, Step: 1}:   10,
		{Start: 0, Stop: 10, Step: 3}:   4,
		{Start: 0, Stop: 9, Step: 3}:    3,
		{Start: 9, Stop: -1, Step: -1}:  10,
		{Start: 55, Stop: 5, Step: -10}: 5,
		{Start: 0, Stop: 0, Step: 1}:    0,
		{Start: 10, Stop: 0, Step: 1}:   0,
		{Start: 0, Stop: 10, Step: -1}:  0,
		{Start: 7, Stop: 8, Step: 100}:  1,
	}

	for span, length := range lengths {
		require.Equal(t, length, span.Len(), "span %s", span)
		require.Equal(t, length == 0, span.IsEmpty(), "span %s", span)
		require.Len(t, span.ToSlice(), length, "span %s", span)
	}
}

// TestSpanContains tests membership against the materialized values of the Span.
func TestSpanContains(t *testing.T) {
	spans := []Span{
		{Start: 0, Stop: 10, Step: 1},
		{Start: 1, Stop: 11, Step: 2},
		{Start: 9, Stop: -1, Step: -1},
		{Start: 55, Stop: 5, Step: -10},
		{Start: -41, Stop: 59, Step: 10},
		{Start: 10, Stop: 0, Step: 1},
	}

	for _, span := range spans {
		values := make(map[int64]struct{})
		for _, value := range span.ToSlice() {
			values[value] = struct{}{}
		}

		for x := int64(-70); x <= 70; x++ {
			_, expected := values[x]
			require.Equal(t, expected, span.Contains(x), "span %s, value %d", span, x)
		}
	}
}

// TestSpanAt tests indexing, negative indices and the out-of-range error.
func TestSpanAt(t *testing.T) {
	span := Span{Start: 55, Stop: 5, Step: -10}
	values := span.ToSlice()
	require.Equal(t, []int64{55, 45, 35, 25, 15}, values)

	for i, expected := range values {
		value, err := span.At(i)
		require.NoError(t, err)
		require.Equal(t, expected, value)

		value, err = span.At(i - len(values))
		require.NoError(t, err)
		require.Equal(t, expected, value)
	}

	for _, index := range []int{5, -6, 100} {
		_, err := span.At(index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		require.Contains(t, err.Error(), "index")
	}

	_, err := Span{Start: 3, Stop: 3, Step: 1}.At(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

// TestSpanIndexAndCount tests locating values and the 0-or-1 occurrence count.
func TestSpanIndexAndCount(t *testing.T) {
	span := Span{Start: 1, Stop: 11, Step: 2}

	for i, value := range span.ToSlice() {
		index, err := span.Index(value)
		require.NoError(t, err)
		require.Equal(t, i, index)
		require.Equal(t, 1, span.Count(value))
	}

	for _, absent := range []int64{0, 2, 11, -1} {
		_, err := span.Index(absent)
		require.ErrorIs(t, err, ErrValueNotFound)
		require.Equal(t, 0, span.Count(absent))
	}
}

// TestSpanEqual tests sequence equality of Spans: equal value lists compare equal even for different raw triples.
func TestSpanEqual(t *testing.T) {
	equalPairs := [][2]Span{
		{{Start: 0, Stop: 10, Step: 1}, {Start: 0, Stop: 10, Step: 1}},
		{{Start: 0, Stop: 5, Step: 2}, {Start: 0, Stop: 6, Step: 2}},   // both [0 2 4]
		{{Start: 0, Stop: 1, Step: 1}, {Start: 0, Stop: 2, Step: 2}},   // both [0]
		{{Start: 10, Stop: 0, Step: 1}, {Start: 0, Stop: 0, Step: -3}}, // both empty
	}
	for _, pair := range equalPairs {
		require.True(t, pair[0].Equal(pair[1]), "%s vs %s", pair[0], pair[1])
		require.True(t, pair[1].Equal(pair[0]), "%s vs %s", pair[1], pair[0])
		require.Equal(t, pair[0].Hash(), pair[1].Hash(), "%s vs %s", pair[0], pair[1])
	}

	unequalPairs := [][2]Span{
		{{Start: 0, Stop: 10, Step: 1}, {Start: 0, Stop: 9, Step: 1}},
		{{Start: 0, Stop: 10, Step: 2}, {Start: 1, Stop: 11, Step: 2}},
		{{Start: 0, Stop: 10, Step: 2}, {Start: 0, Stop: 10, Step: 3}},
		{{Start: 0, Stop: 10, Step: 1}, {Start: 9, Stop: -1, Step: -1}},
	}
	for _, pair := range unequalPairs {
		require.False(t, pair[0].Equal(pair[1]), "%s vs %s", pair[0], pair[1])
		require.False(t, pair[1].Equal(pair[0]), "%s vs %s", pair[1], pair[0])
	}
}

// TestSpanBytes tests marshalling and unmarshalling of Spans.
func TestSpanBytes(t *testing.T) {
	span := Span{Start: -41, Stop: 59, Step: 10}
	marshaledSpan := span.Bytes()
	unmarshaledSpan, consumedBytes, err := SpanFromBytes(marshaledSpan)
	require.NoError(t, err)
	require.Equal(t, len(marshaledSpan), consumedBytes)
	require.Equal(t, span, unmarshaledSpan)

	_, _, err = SpanFromBytes(marshaledSpan[:10])
	require.ErrorIs(t, err, ErrParseBytesFailed)
}

// TestFloorDiv tests the truncation-corrected integer division that the canonicalization builds on.
func TestFloorDiv(t *testing.T) {
	quotients := map[[2]int64]int64{
		{7, 2}:    3,
		{-7, 2}:   -4,
		{7, -2}:   -4,
		{-7, -2}:  3,
		{6, 2}:    3,
		{-6, 2}:   -3,
		{0, 5}:    0,
		{1, 100}:  0,
		{-1, 100}: -1,
	}

	for input, expected := range quotients {
		require.Equal(t, expected, floorDiv(input[0], input[1]), "floorDiv(%d, %d)", input[0], input[1])
		require.Equal(t, -expected, ceilDiv(-input[0], input[1]), "ceilDiv(%d, %d)", -input[0], input[1])
	}
}
