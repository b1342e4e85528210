package models

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Status represents how far along a word is on the maturity ladder.
type Status int

const (
	StatusNew      Status = iota + 1 // Never reviewed.
	StatusLearning                   // Seen at least once, not yet reliable.
	StatusReview                     // In the regular review cycle.
	StatusMastered                   // Long intervals, considered known.
)

var (
	statusNames = [...]string{
		StatusNew:      "new",
		StatusLearning: "learning",
		StatusReview:   "review",
		StatusMastered: "mastered",
	}
	statusByName = map[string]Status{
		"new":      StatusNew,
		"learning": StatusLearning,
		"review":   StatusReview,
		"mastered": StatusMastered,
	}
)

var (
	_ fmt.Stringer             = Status(0)
	_ json.Marshaler           = Status(0)
	_ json.Unmarshaler         = (*Status)(nil)
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	return s >= StatusNew && s <= StatusMastered
}

func (s Status) String() string {
	if s.IsValid() {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus converts a stored status name back into a Status.
func ParseStatus(name string) (Status, error) {
	s, ok := statusByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown word status: %q", name)
	}
	return s, nil
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid word status: %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("invalid word status: %s", data)
	}
	return s.UnmarshalText([]byte(name))
}
