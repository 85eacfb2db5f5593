package events

// Recorder keeps every event it is handed. The zero value is ready to use.
type Recorder struct {
	events []Event
}

func (r *Recorder) Handle(event Event) {
	r.events = append(r.events, event)
}

// Failed reports whether any error event was recorded.
func (r *Recorder) Failed() bool {
	for _, event := range r.events {
		if event.Level == Error {
			return true
		}
	}
	return false
}

func (r *Recorder) Summary() Summary {
	s := Summary{Total: len(r.events)}
	for _, event := range r.events {
		switch event.Level {
		case Debug:
			s.Debug++
		case Info:
			s.Info++
		case Error:
			s.Errors = append(s.Errors, event)
		}
	}
	return s
}
