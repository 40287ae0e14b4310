package steprange

// Iterator yields the values of a StepRange or Span one at a time. Every call to the Iterator and ReverseIterator
// methods hands out a fresh Iterator, so an iteration can be restarted at any time by asking for a new one. Values are
// computed lazily; an Iterator over a huge range costs no more than one over an empty range.
type Iterator struct {
	next      int64
	step      int64
	remaining int
}

// newIterator creates an Iterator that yields count values, starting at first and advancing by step.
func newIterator(first int64, step int64, count int) *Iterator {
	return &Iterator{
		next:      first,
		step:      step,
		remaining: count,
	}
}

// HasNext returns true if the Iterator has another value to yield.
func (i *Iterator) HasNext() bool {
	return i.remaining > 0
}

// Next returns the next value of the iteration. It must only be called after HasNext returned true.
func (i *Iterator) Next() (value int64) {
	value = i.next
	i.next += i.step
	i.remaining--

	return value
}
