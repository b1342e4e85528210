package models

import (
	"encoding"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TestType selects the question format of an assessment.
type TestType int

const (
	TestTrueFalse TestType = iota + 1
	TestMultipleChoice
	TestWriting
)

var (
	testTypeNames = [...]string{
		TestTrueFalse:      "true-false",
		TestMultipleChoice: "multiple-choice",
		TestWriting:        "writing",
	}
	testTypeByName = map[string]TestType{
		"true-false":      TestTrueFalse,
		"multiple-choice": TestMultipleChoice,
		"writing":         TestWriting,
	}
)

var (
	_ fmt.Stringer             = TestType(0)
	_ encoding.TextMarshaler   = TestType(0)
	_ encoding.TextUnmarshaler = (*TestType)(nil)
)

// IsValid reports whether t is a known test type.
func (t TestType) IsValid() bool {
	return t >= TestTrueFalse && t <= TestWriting
}

func (t TestType) String() string {
	if t.IsValid() {
		return testTypeNames[t]
	}
	return fmt.Sprintf("TestType(%d)", int(t))
}

// ParseTestType converts a test type name into a TestType.
func ParseTestType(name string) (TestType, error) {
	t, ok := testTypeByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown test type: %q", name)
	}
	return t, nil
}

func (t TestType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid test type: %d", int(t))
	}
	return []byte(testTypeNames[t]), nil
}

func (t *TestType) UnmarshalText(text []byte) error {
	v, err := ParseTestType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TestType) MarshalJSON() ([]byte, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (t *TestType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("invalid test type: %s", data)
	}
	return t.UnmarshalText([]byte(name))
}

// TestStat is one completed assessment over a list.
type TestStat struct {
	ID           int64     `json:"id"`
	ListID       uuid.UUID `json:"list_id"`
	TestType     TestType  `json:"test_type"`
	Score        int       `json:"score"` // percentage, 0-100
	NumQuestions int       `json:"num_questions"`
	NumCorrect   int       `json:"num_correct"`
	CreatedAt    time.Time `json:"created_at"`
}
