package event

// Recorder collects the events an aggregate raises. It is embedded by value
// and is not safe for concurrent use, same as the aggregate holding it.
type Recorder struct {
	pending []Event
}

func (r *Recorder) Record(e Event) {
	if e == nil {
		return
	}
	r.pending = append(r.pending, e)
}

// PendingEvents returns the recorded events in the order they were raised.
func (r *Recorder) PendingEvents() []Event {
	out := make([]Event, len(r.pending))
	copy(out, r.pending)
	return out
}

func (r *Recorder) ClearEvents() {
	r.pending = nil
}

// CloneRecorder copies the pending list so the clone can record independently.
func (r *Recorder) CloneRecorder() Recorder {
	return Recorder{pending: r.PendingEvents()}
}
