package steprange

// Slice selects a subsequence of a StepRange or Span by index: it starts at the From index, stops before the To index
// and keeps every By-th value. All three parts are optional and negative indices count from the end, following the
// usual slicing conventions of sequence types:
//
//	NewSlice()                  selects every value
//	NewSlice().From(2)          drops the first two values
//	NewSlice().To(-1)           drops the last value
//	NewSlice().By(-1)           reverses the order
//	NewSlice().From(1).By(2)    selects every other value, starting at index 1
//
// A Slice is an immutable value; From, To and By return modified copies.
type Slice struct {
	start *int
	stop  *int
	step  *int
}

// NewSlice returns a Slice that selects every value.
func NewSlice() Slice {
	return Slice{}
}

// From returns a copy of the Slice that starts at the given index.
func (s Slice) From(start int) Slice {
	s.start = &start

	return s
}

// To returns a copy of the Slice that stops before the given index.
func (s Slice) To(stop int) Slice {
	s.stop = &stop

	return s
}

// By returns a copy of the Slice that keeps every step-th value. A negative step selects in reverse order.
func (s Slice) By(step int) Slice {
	s.step = &step

	return s
}

// indices resolves the Slice against a sequence of the given length. It returns the effective start index, the
// resolved step and the number of selected values. Out-of-bounds indices are clamped rather than rejected. The step
// must have been checked for 0 by the caller.
func (s Slice) indices(length int) (start int, step int, count int) {
	step = 1
	if s.step != nil {
		step = *s.step
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	if s.start == nil {
		start = lower
		if step < 0 {
			start = upper
		}
	} else {
		start = clampIndex(*s.start, length, lower, upper)
	}

	stop := upper
	if step < 0 {
		stop = lower
	}
	if s.stop != nil {
		stop = clampIndex(*s.stop, length, lower, upper)
	}

	if step < 0 {
		if stop < start {
			count = (start-stop-1)/(-step) + 1
		}
	} else {
		if start < stop {
			count = (stop-start-1)/step + 1
		}
	}

	return start, step, count
}

// clampIndex translates a possibly negative index into [lower, upper].
func clampIndex(index int, length int, lower int, upper int) int {
	if index < 0 {
		index += length
		if index < lower {
			return lower
		}

		return index
	}

	if index > upper {
		return upper
	}

	return index
}
