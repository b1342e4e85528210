package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lmeunier/vocaflash/internal/models"
)

// MaxQuestions bounds any single assessment.
const MaxQuestions = 20

// Distractor translations per multiple-choice question, set permitting.
const numDistractors = 3

var (
	ErrNoWords         = errors.New("word set is empty")
	ErrInvalidTestType = errors.New("invalid test type")
)

// Direction is the translation direction of a question.
type Direction int

const (
	DirectionForward Direction = iota + 1 // original -> translation
	DirectionReverse                      // translation -> original
)

func (d Direction) String() string {
	if d == DirectionReverse {
		return "reverse"
	}
	return "forward"
}

// MarshalJSON serializes the direction name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON parses a direction name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "forward":
		*d = DirectionForward
	case "reverse":
		*d = DirectionReverse
	default:
		return fmt.Errorf("unknown direction %q", name)
	}
	return nil
}

// Question is one graded prompt generated from a word.
type Question struct {
	Word      models.Word     `json:"-"`
	WordID    uuid.UUID       `json:"word_id"`
	Type      models.TestType `json:"type"`
	Direction Direction       `json:"direction"`
	Prompt    string          `json:"prompt"`
	Answer    string          `json:"-"` // never serialized to the client
	Options   []string        `json:"options,omitempty"`  // multiple-choice
	Proposed  string          `json:"proposed,omitempty"` // true-false
	Expected  bool            `json:"-"`                  // true-false
}

// Answer records the outcome of one submitted question.
type Answer struct {
	Question Question `json:"question"`
	Given    string   `json:"given"`
	Correct  bool     `json:"correct"`
}

// Generator builds assessment question batches from a word set.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with a randomly seeded source.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator creates a Generator with a deterministic source.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Generate samples up to maxQuestions words without replacement and builds
// one question per word. maxQuestions values outside (0, MaxQuestions] are
// clamped to MaxQuestions. The translation direction of each question is
// chosen uniformly.
func (g *Generator) Generate(words []models.Word, testType models.TestType, maxQuestions int) ([]Question, error) {
	if !testType.IsValid() {
		return nil, ErrInvalidTestType
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if maxQuestions <= 0 || maxQuestions > MaxQuestions {
		maxQuestions = MaxQuestions
	}

	pool := make([]models.Word, len(words))
	copy(pool, words)
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	selected := pool[:min(len(pool), maxQuestions)]
	questions := make([]Question, 0, len(selected))
	for _, w := range selected {
		q := Question{
			Word:   w,
			WordID: w.ID,
			Type:   testType,
		}
		q.Direction = DirectionForward
		if g.rng.IntN(2) == 1 {
			q.Direction = DirectionReverse
		}
		if q.Direction == DirectionForward {
			q.Prompt = w.Original
			q.Answer = w.Translation
		} else {
			q.Prompt = w.Translation
			q.Answer = w.Original
		}

		switch testType {
		case models.TestTrueFalse:
			distractors := g.distractors(w, q.Direction, words, 1)
			if g.rng.IntN(2) == 0 || len(distractors) == 0 {
				q.Proposed = q.Answer
				q.Expected = true
			} else {
				q.Proposed = distractors[0]
				q.Expected = false
			}
		case models.TestMultipleChoice:
			options := append(g.distractors(w, q.Direction, words, numDistractors), q.Answer)
			g.rng.Shuffle(len(options), func(i, j int) {
				options[i], options[j] = options[j], options[i]
			})
			q.Options = options
		}

		questions = append(questions, q)
	}
	return questions, nil
}

// distractors picks up to limit translations from other words in the set,
// matching the question's direction.
func (g *Generator) distractors(w models.Word, direction Direction, words []models.Word, limit int) []string {
	others := make([]models.Word, 0, len(words))
	for _, o := range words {
		if o.ID != w.ID {
			others = append(others, o)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	picked := make([]string, 0, limit)
	for _, o := range others[:min(len(others), limit)] {
		if direction == DirectionForward {
			picked = append(picked, o.Translation)
		} else {
			picked = append(picked, o.Original)
		}
	}
	return picked
}

// Score grades a single answer. True-false answers are parsed as booleans,
// multiple-choice answers must match the correct option exactly, and
// written answers go through the fuzzy matcher.
func Score(q Question, given string) bool {
	switch q.Type {
	case models.TestTrueFalse:
		b, err := strconv.ParseBool(given)
		return err == nil && b == q.Expected
	case models.TestMultipleChoice:
		return given == q.Answer
	default:
		return MatchAnswer(given, q.Answer)
	}
}

// Finish aggregates answered questions into a statistics record with a
// rounded percentage score.
func Finish(listID uuid.UUID, testType models.TestType, answers []Answer, now time.Time) (models.TestStat, error) {
	if len(answers) == 0 {
		return models.TestStat{}, ErrNoWords
	}
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	score := int(math.Round(100 * float64(correct) / float64(len(answers))))
	return models.TestStat{
		ListID:       listID,
		TestType:     testType,
		Score:        score,
		NumQuestions: len(answers),
		NumCorrect:   correct,
		CreatedAt:    now,
	}, nil
}
