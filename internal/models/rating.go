package models

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Rating is the user's judgement of a flashcard after seeing the answer.
type Rating int

const (
	RatingDifficult Rating = iota + 1
	RatingGood
	RatingEasy
)

var (
	ratingNames = [...]string{
		RatingDifficult: "difficult",
		RatingGood:      "good",
		RatingEasy:      "easy",
	}
	ratingByName = map[string]Rating{
		"difficult": RatingDifficult,
		"good":      RatingGood,
		"easy":      RatingEasy,
	}
)

var (
	_ fmt.Stringer             = Rating(0)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// IsValid reports whether r is a known rating.
func (r Rating) IsValid() bool {
	return r >= RatingDifficult && r <= RatingEasy
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating converts a rating name into a Rating.
func ParseRating(name string) (Rating, error) {
	r, ok := ratingByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown rating: %q", name)
	}
	return r, nil
}

func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rating: %d", int(r))
	}
	return []byte(ratingNames[r]), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("invalid rating: %s", data)
	}
	return r.UnmarshalText([]byte(name))
}
