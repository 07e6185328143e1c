package quiz

import (
	"github.com/nicoespa/mentalgym/internal/content"
)

// Verdict is the evaluator's judgment of one submitted response.
type Verdict struct {
	// Correct reports whether the response matches the canonical answer.
	Correct bool

	// Close is set when a wrong text answer was within a small edit
	// distance of the canonical one. Feedback hint only.
	Close bool

	// Recorded holds the free text of an open reflection, kept for
	// later display. Empty for all other variants.
	Recorded string
}

// Evaluate judges a response against a question. It is pure and total:
// the same inputs always produce the same verdict, and a response whose
// shape does not fit the question's variant is simply incorrect.
func Evaluate(q content.Question, r Response) Verdict {
	switch q := q.(type) {
	case content.MultipleChoice:
		return evaluateMultipleChoice(q, r)
	case content.Open:
		return evaluateOpen(r)
	case content.TrueFalse:
		return evaluateTrueFalse(q, r)
	case content.Order:
		return evaluateOrder(q, r)
	case content.Match:
		return evaluateMatch(q, r)
	case content.FillInBlank:
		return evaluateFillInBlank(q, r)
	case content.ListenAndWrite:
		return evaluateListenAndWrite(q, r)
	}
	return Verdict{}
}

// evaluateMultipleChoice checks the selected option's correctness flag.
// If content ever carries more than one correct option, the first match
// wins; that is a content bug surfaced by validation, not handled here.
func evaluateMultipleChoice(q content.MultipleChoice, r Response) Verdict {
	sel, ok := r.(OptionAnswer)
	if !ok {
		return Verdict{}
	}
	for _, opt := range q.Options {
		if opt.ID == sel.OptionID {
			return Verdict{Correct: opt.Correct}
		}
	}
	return Verdict{}
}

// evaluateOpen accepts any reflection; the reward is in writing it.
func evaluateOpen(r Response) Verdict {
	text, ok := r.(TextAnswer)
	if !ok {
		return Verdict{}
	}
	return Verdict{Correct: true, Recorded: text.Text}
}

func evaluateTrueFalse(q content.TrueFalse, r Response) Verdict {
	b, ok := r.(BoolAnswer)
	if !ok {
		return Verdict{}
	}
	return Verdict{Correct: b.Value == q.Answer}
}

// evaluateOrder requires the exact canonical sequence, element by element.
func evaluateOrder(q content.Order, r Response) Verdict {
	ord, ok := r.(OrderAnswer)
	if !ok || len(ord.Items) != len(q.CorrectOrder) {
		return Verdict{}
	}
	for i, item := range ord.Items {
		if item != q.CorrectOrder[i] {
			return Verdict{}
		}
	}
	return Verdict{Correct: true}
}

// evaluateMatch is binary: every left item must map to its canonical right
// item. No partial credit.
func evaluateMatch(q content.Match, r Response) Verdict {
	m, ok := r.(MatchAnswer)
	if !ok {
		return Verdict{}
	}
	for _, p := range q.Pairs {
		if m.Matches[p.Left] != p.Right {
			return Verdict{}
		}
	}
	return Verdict{Correct: true}
}

// evaluateFillInBlank requires every blank to match its canonical answer
// after normalization; one wrong blank fails the whole question.
func evaluateFillInBlank(q content.FillInBlank, r Response) Verdict {
	b, ok := r.(BlanksAnswer)
	if !ok || len(b.Values) != len(q.Answers) {
		return Verdict{}
	}
	correct := true
	near := false
	for i, v := range b.Values {
		if textEqual(v, q.Answers[i]) {
			continue
		}
		correct = false
		if nearMiss(v, q.Answers[i]) {
			near = true
		}
	}
	if correct {
		return Verdict{Correct: true}
	}
	return Verdict{Close: near}
}

func evaluateListenAndWrite(q content.ListenAndWrite, r Response) Verdict {
	text, ok := r.(TextAnswer)
	if !ok {
		return Verdict{}
	}
	if textEqual(text.Text, q.Answer) {
		return Verdict{Correct: true}
	}
	return Verdict{Close: nearMiss(text.Text, q.Answer)}
}
