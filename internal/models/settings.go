package models

// StudySettings bounds a flashcard session and parameterizes the scheduler.
// Callers validate it (see the validate tags) before handing it to the
// scheduler; the scheduler itself trusts the values.
type StudySettings struct {
	CardsPerDay       int `json:"cards_per_day" validate:"min=5,max=100"`
	NewCardsPerDay    int `json:"new_cards_per_day" validate:"min=1,max=50"`
	DifficultInterval int `json:"difficult_interval" validate:"min=1"` // base days
	GoodInterval      int `json:"good_interval" validate:"min=1"`
	EasyInterval      int `json:"easy_interval" validate:"min=1"`
}

// DefaultStudySettings returns the stock session bounds and base intervals.
func DefaultStudySettings() StudySettings {
	return StudySettings{
		CardsPerDay:       20,
		NewCardsPerDay:    10,
		DifficultInterval: 1,
		GoodInterval:      2,
		EasyInterval:      4,
	}
}

// BaseInterval returns the unscaled interval in days for a rating.
func (s StudySettings) BaseInterval(r Rating) int {
	switch r {
	case RatingDifficult:
		return s.DifficultInterval
	case RatingEasy:
		return s.EasyInterval
	default:
		return s.GoodInterval
	}
}
