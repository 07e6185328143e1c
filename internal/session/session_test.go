package session

import (
	"fmt"
	"testing"

	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/quiz"
)

// testTopic builds a topic of n true/false questions whose answer is true,
// so tests can choose right and wrong answers freely.
func testTopic(n int) content.Topic {
	qs := make([]content.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, content.TrueFalse{
			Info: content.Info{
				ID:       fmt.Sprintf("q%d", i+1),
				Prompt:   fmt.Sprintf("statement %d", i+1),
				XPReward: 10,
			},
			Statement: fmt.Sprintf("statement %d", i+1),
			Answer:    true,
		})
	}
	return content.Topic{
		ID:        "test-topic",
		Title:     "Test Topic",
		Questions: qs,
	}
}

func answer(t *testing.T, state *State, correct bool) quiz.Verdict {
	t.Helper()
	v := HandleAnswer(state, quiz.BoolAnswer{Value: correct})
	if v.Correct != correct {
		t.Fatalf("verdict.Correct = %v, want %v", v.Correct, correct)
	}
	return v
}

func TestPerfectSessionEarnsThreeStars(t *testing.T) {
	state := NewState(testTopic(5), "s1")

	for i := 0; i < 5; i++ {
		answer(t, state, true)
	}

	if state.Mode != ModeFinalizing {
		t.Errorf("mode = %s, want finalizing", state.Mode)
	}
	if state.Correct != 5 {
		t.Errorf("correct = %d, want 5", state.Correct)
	}
	if state.Stars != 3 {
		t.Errorf("stars = %d, want 3", state.Stars)
	}
	if state.Hearts != MaxHearts {
		t.Errorf("hearts = %d, want %d", state.Hearts, MaxHearts)
	}
	if state.XPEarned != 50 {
		t.Errorf("xp = %d, want 50", state.XPEarned)
	}
	if len(state.Failed) != 0 {
		t.Errorf("failed queue len = %d, want 0", len(state.Failed))
	}
}

func TestWrongAnswerCostsHeartAndQueuesReview(t *testing.T) {
	state := NewState(testTopic(5), "s1")

	answer(t, state, false)

	if state.Hearts != MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", state.Hearts, MaxHearts-1)
	}
	if len(state.Failed) != 1 {
		t.Fatalf("failed queue len = %d, want 1", len(state.Failed))
	}
	if state.Failed[0].Base().ID != "q1" {
		t.Errorf("queued question = %s, want q1", state.Failed[0].Base().ID)
	}
	if state.Mode != ModeAnswering {
		t.Errorf("mode = %s, want answering", state.Mode)
	}
	if state.Index != 1 {
		t.Errorf("index = %d, want 1", state.Index)
	}
}

func TestThreeWrongAnswersDefeat(t *testing.T) {
	state := NewState(testTopic(5), "s1")

	for i := 0; i < 3; i++ {
		answer(t, state, false)
	}

	if state.Mode != ModeDefeated {
		t.Fatalf("mode = %s, want defeated", state.Mode)
	}
	if state.Hearts != 0 {
		t.Errorf("hearts = %d, want 0", state.Hearts)
	}

	// Defeated sessions accept no more answers.
	before := *state
	v := HandleAnswer(state, quiz.BoolAnswer{Value: true})
	if v.Correct {
		t.Error("defeated session evaluated an answer")
	}
	if state.Correct != before.Correct || state.Index != before.Index {
		t.Error("defeated session state changed")
	}
}

func TestStarThresholds(t *testing.T) {
	tests := []struct {
		correct int
		stars   int
	}{
		{5, 3},
		{4, 3}, // 0.8
		{3, 2}, // 0.6
		{2, 1}, // 0.4
		{1, 0},
		{0, 0},
	}
	for _, tt := range tests {
		state := NewState(testTopic(5), "s1")
		for i := 0; i < 5 && state.Mode == ModeAnswering; i++ {
			answer(t, state, i < tt.correct)
		}
		if state.Stars != tt.stars {
			t.Errorf("%d/5 correct: stars = %d, want %d", tt.correct, state.Stars, tt.stars)
		}
	}
}

func TestReviewLoopClearsFailedQuestions(t *testing.T) {
	state := NewState(testTopic(4), "s1")

	// Miss q1 and q3.
	answer(t, state, false)
	answer(t, state, true)
	answer(t, state, false)
	answer(t, state, true)

	if state.Mode != ModeReviewing {
		t.Fatalf("mode = %s, want reviewing", state.Mode)
	}
	if len(state.Failed) != 2 {
		t.Fatalf("failed queue len = %d, want 2", len(state.Failed))
	}

	heartsBefore := state.Hearts
	xpBefore := state.XPEarned
	starsBefore := state.Stars

	// Miss q1 again: it is consumed anyway, no heart lost.
	answer(t, state, false)
	if state.Hearts != heartsBefore {
		t.Errorf("review wrong answer cost a heart")
	}
	if len(state.Failed) != 1 {
		t.Fatalf("failed queue len = %d, want 1", len(state.Failed))
	}
	if got := state.Failed[0].Base().ID; got != "q3" {
		t.Errorf("front of queue = %s, want q3", got)
	}

	answer(t, state, true)

	if state.Mode != ModeFinalizing {
		t.Errorf("mode = %s, want finalizing", state.Mode)
	}
	if state.ReviewAttempts != 2 {
		t.Errorf("review attempts = %d, want 2", state.ReviewAttempts)
	}
	if state.ReviewCleared != 1 {
		t.Errorf("review cleared = %d, want 1", state.ReviewCleared)
	}
	// Review has no effect on score, stars, or XP.
	if state.XPEarned != xpBefore {
		t.Errorf("review changed xp: %d -> %d", xpBefore, state.XPEarned)
	}
	if state.Stars != starsBefore {
		t.Errorf("review changed stars: %d -> %d", starsBefore, state.Stars)
	}
	if state.Correct != 2 {
		t.Errorf("correct = %d, want 2", state.Correct)
	}
}

func TestFailedQueueDedup(t *testing.T) {
	state := NewState(testTopic(3), "s1")

	q := state.Topic.Questions[0]
	pushFailed(state, q)
	pushFailed(state, q)

	if len(state.Failed) != 1 {
		t.Errorf("failed queue len = %d, want 1", len(state.Failed))
	}
}

func TestOpenResponseRecorded(t *testing.T) {
	topic := content.Topic{
		ID:    "open-topic",
		Title: "Open",
		Questions: []content.Question{
			content.Open{Info: content.Info{ID: "o1", Prompt: "why?", XPReward: 15}},
		},
	}
	state := NewState(topic, "s1")

	v := HandleAnswer(state, quiz.TextAnswer{Text: "  porque sí  "})
	if !v.Correct {
		t.Fatal("open answer not accepted")
	}
	if state.OpenResponses["o1"] == "" {
		t.Error("open response not recorded")
	}
	if state.Mode != ModeFinalizing {
		t.Errorf("mode = %s, want finalizing", state.Mode)
	}
}

func TestReviewEndsAfterLastQuestionEvenWhenWrong(t *testing.T) {
	state := NewState(testTopic(2), "s1")

	answer(t, state, false)
	answer(t, state, true)
	if state.Mode != ModeReviewing {
		t.Fatalf("mode = %s, want reviewing", state.Mode)
	}

	// Missing the lone review question still ends the pass.
	answer(t, state, false)
	if state.Mode != ModeFinalizing {
		t.Errorf("mode = %s, want finalizing", state.Mode)
	}
	if len(state.Failed) != 0 {
		t.Errorf("failed queue len = %d, want 0", len(state.Failed))
	}
	if state.ReviewCleared != 0 {
		t.Errorf("review cleared = %d, want 0", state.ReviewCleared)
	}
}

func TestStarsFollowQuestionPosition(t *testing.T) {
	state := NewState(testTopic(5), "s1")

	// A miss on q1 does not hold stars back: the ratio tracks how far
	// into the sequence a correct answer lands.
	answer(t, state, false)
	answer(t, state, true) // (1+1)/5 = 0.4

	if state.Stars != 1 {
		t.Errorf("stars = %d, want 1", state.Stars)
	}

	answer(t, state, true) // 3/5 = 0.6
	if state.Stars != 2 {
		t.Errorf("stars = %d, want 2", state.Stars)
	}
}
