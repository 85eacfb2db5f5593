package events

import "fmt"

type Summary struct {
	Total  int
	Debug  int
	Info   int
	Errors []Event
}

// FailureLines lists the error events, or nothing when there were none.
func (s Summary) FailureLines() []string {
	if len(s.Errors) == 0 {
		return nil
	}

	lines := make([]string, 0, len(s.Errors)+1)
	lines = append(lines, fmt.Sprintf("Failed (%d):", len(s.Errors)))
	for _, event := range s.Errors {
		lines = append(lines, "- "+event.String())
	}
	return lines
}
