// Package quiz scores the multiple-choice webhook quiz.
package quiz

import (
	"errors"

	"webhook-lab/internal/catalog"
)

var (
	// ErrNotReady is returned by Submit while a question is unanswered.
	ErrNotReady = errors.New("quiz: every question needs an answer before submitting")
	// ErrSubmitted is returned by Submit after the quiz was already submitted.
	ErrSubmitted = errors.New("quiz: already submitted")
)

const (
	perfectVerdict = "Perfect! You're a Webhook Master."
	partialVerdict = "Great effort! Review the answers below."
)

// ReviewItem is the post-submit view of one question.
type ReviewItem struct {
	QuestionID  int
	Prompt      string
	Correct     bool
	Chosen      string
	Answer      string // set only when Correct is false
	Explanation string
}

// Engine holds the answers of one quiz session.
type Engine struct {
	questions []catalog.QuizQuestion
	answers   map[int]int
	submitted bool
}

// New starts an unanswered session over questions.
func New(questions []catalog.QuizQuestion) *Engine {
	return &Engine{questions: questions, answers: make(map[int]int)}
}

// Questions returns the quiz questions in order.
func (e *Engine) Questions() []catalog.QuizQuestion { return e.questions }

func (e *Engine) question(id int) (catalog.QuizQuestion, bool) {
	for _, q := range e.questions {
		if q.ID == id {
			return q, true
		}
	}
	return catalog.QuizQuestion{}, false
}

// Select records option as the answer to question id. It is ignored after
// submit and for unknown questions or out-of-range options.
func (e *Engine) Select(id, option int) bool {
	if e.submitted {
		return false
	}
	q, ok := e.question(id)
	if !ok || option < 0 || option >= len(q.Options) {
		return false
	}
	e.answers[id] = option
	return true
}

// Answer returns the recorded answer to question id.
func (e *Engine) Answer(id int) (int, bool) {
	opt, ok := e.answers[id]
	return opt, ok
}

// Answered returns how many questions have an answer.
func (e *Engine) Answered() int { return len(e.answers) }

// CanSubmit reports whether every question is answered and the quiz is open.
func (e *Engine) CanSubmit() bool {
	return !e.submitted && len(e.answers) == len(e.questions)
}

// Submit locks the answers.
func (e *Engine) Submit() error {
	if e.submitted {
		return ErrSubmitted
	}
	if !e.CanSubmit() {
		return ErrNotReady
	}
	e.submitted = true
	return nil
}

// Submitted reports whether the quiz is in review mode.
func (e *Engine) Submitted() bool { return e.submitted }

// Score counts correct answers.
func (e *Engine) Score() int {
	score := 0
	for _, q := range e.questions {
		if opt, ok := e.answers[q.ID]; ok && opt == q.CorrectIndex {
			score++
		}
	}
	return score
}

// Total returns the number of questions.
func (e *Engine) Total() int { return len(e.questions) }

// Reset clears every answer and reopens the quiz.
func (e *Engine) Reset() {
	e.answers = make(map[int]int)
	e.submitted = false
}

// Verdict returns the headline shown above the review.
func (e *Engine) Verdict() string {
	if e.Score() == e.Total() {
		return perfectVerdict
	}
	return partialVerdict
}

// Review describes each question against the recorded answers.
func (e *Engine) Review() []ReviewItem {
	items := make([]ReviewItem, 0, len(e.questions))
	for _, q := range e.questions {
		item := ReviewItem{QuestionID: q.ID, Prompt: q.Prompt, Explanation: q.Explanation}
		opt, ok := e.answers[q.ID]
		if ok {
			item.Chosen = q.Options[opt]
			item.Correct = opt == q.CorrectIndex
		}
		if !item.Correct {
			item.Answer = q.Options[q.CorrectIndex]
		}
		items = append(items, item)
	}
	return items
}
