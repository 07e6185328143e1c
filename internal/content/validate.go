package content

import (
	"fmt"
	"sort"
	"strings"
)

// ValidateTopic performs structural checks on a topic and its questions.
// Returns a combined error describing all problems found, or nil if valid.
func ValidateTopic(t Topic) error {
	var errs []string

	if t.ID == "" {
		errs = append(errs, "empty topic id")
	}
	if t.Title == "" {
		errs = append(errs, "empty topic title")
	}
	if len(t.Questions) == 0 {
		errs = append(errs, "topic has no questions")
	}

	idSet := make(map[string]bool, len(t.Questions))
	for _, q := range t.Questions {
		info := q.Base()
		if info.ID == "" {
			errs = append(errs, "question with empty id")
			continue
		}
		if idSet[info.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question id %q", info.ID))
		}
		idSet[info.ID] = true
		if info.XPReward < 0 {
			errs = append(errs, fmt.Sprintf("question %q: negative xp reward", info.ID))
		}
		if msg := validateQuestion(q); msg != "" {
			errs = append(errs, fmt.Sprintf("question %q: %s", info.ID, msg))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid topic: %s", strings.Join(errs, "; "))
	}
	return nil
}

// validateQuestion checks the variant-specific invariant that exactly one
// correct answer is derivable from the question's fields.
func validateQuestion(q Question) string {
	switch q := q.(type) {
	case MultipleChoice:
		if len(q.Options) < 2 {
			return "needs at least 2 options"
		}
		correct := 0
		for _, opt := range q.Options {
			if opt.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Sprintf("expected exactly 1 correct option, found %d", correct)
		}
	case Open:
		// Nothing to derive; any reflection is accepted.
	case TrueFalse:
		if q.Statement == "" {
			return "empty statement"
		}
	case Order:
		if len(q.Items) < 2 {
			return "needs at least 2 items"
		}
		if !sameMultiset(q.Items, q.CorrectOrder) {
			return "items and correct order are not the same set"
		}
	case Match:
		if len(q.Pairs) == 0 {
			return "no pairs"
		}
		seen := make(map[string]bool, len(q.Pairs))
		for _, p := range q.Pairs {
			if p.Left == "" || p.Right == "" {
				return "pair with empty side"
			}
			if seen[p.Left] {
				return fmt.Sprintf("duplicate left item %q", p.Left)
			}
			seen[p.Left] = true
		}
	case FillInBlank:
		if len(q.Blanks) == 0 {
			return "no blanks"
		}
		if len(q.Blanks) != len(q.Answers) {
			return fmt.Sprintf("%d blanks but %d answers", len(q.Blanks), len(q.Answers))
		}
	case ListenAndWrite:
		if q.Answer == "" {
			return "empty canonical transcript"
		}
	}
	return ""
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
