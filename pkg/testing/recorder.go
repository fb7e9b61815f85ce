package testing

// RecordingObserver implements animated.ValueObserver and records every
// callback, letting tests assert on the exact notification sequence a
// mutation produced.
type RecordingObserver struct {
	// Values holds each notified effective value, in order.
	Values []float64
}

// OnValueUpdate appends the notified value.
func (r *RecordingObserver) OnValueUpdate(value float64) {
	r.Values = append(r.Values, value)
}

// Count returns the number of notifications received.
func (r *RecordingObserver) Count() int {
	return len(r.Values)
}

// Last returns the most recent notified value, or 0 when none.
func (r *RecordingObserver) Last() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[len(r.Values)-1]
}

// Reset clears the recorded values.
func (r *RecordingObserver) Reset() {
	r.Values = r.Values[:0]
}
