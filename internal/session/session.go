package session

import (
	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/progression"
	"github.com/nicoespa/mentalgym/internal/quiz"
)

// HandleAnswer processes an answer to the current question, updating hearts,
// score, stars, the review queue, and the session mode. It returns the verdict
// for feedback display. Answers outside the answering and reviewing modes are
// ignored.
func HandleAnswer(state *State, resp quiz.Response) quiz.Verdict {
	q, ok := CurrentQuestion(state)
	if !ok {
		return quiz.Verdict{}
	}

	verdict := quiz.Evaluate(q, resp)
	state.LastQuestion = q
	state.LastVerdict = &verdict
	if verdict.Recorded != "" {
		state.OpenResponses[q.Base().ID] = verdict.Recorded
	}

	switch state.Mode {
	case ModeAnswering:
		handleFirstPass(state, q, verdict)
	case ModeReviewing:
		handleReview(state, verdict)
	}
	return verdict
}

func handleFirstPass(state *State, q content.Question, verdict quiz.Verdict) {
	if verdict.Correct {
		state.Correct++
		state.XPEarned += q.Base().XPReward
		updateStars(state)
	} else {
		state.Hearts--
		pushFailed(state, q)
		if state.Hearts <= 0 {
			state.Mode = ModeDefeated
			return
		}
	}

	state.Index++
	if state.Index >= len(state.Topic.Questions) {
		if len(state.Failed) > 0 {
			state.Mode = ModeReviewing
		} else {
			state.Mode = ModeFinalizing
		}
	}
}

// handleReview runs the remedial pass as a single bounded sweep: every
// answer consumes the front of the queue, and the session finalizes after
// the last review question no matter the tally.
func handleReview(state *State, verdict quiz.Verdict) {
	state.ReviewAttempts++
	if verdict.Correct {
		state.ReviewCleared++
	}

	state.Failed = state.Failed[1:]
	if len(state.Failed) == 0 {
		state.Mode = ModeFinalizing
	}
}

// pushFailed queues a question for review, at most once per question.
func pushFailed(state *State, q content.Question) {
	id := q.Base().ID
	if state.FailedIDs[id] {
		return
	}
	state.FailedIDs[id] = true
	state.Failed = append(state.Failed, q)
}

// updateStars recomputes the star count when a question is answered
// correctly. The ratio is positional: how far into the question sequence
// the session has come, not how many answers were right.
func updateStars(state *State) {
	total := len(state.Topic.Questions)
	if total == 0 {
		return
	}
	ratio := float64(state.Index+1) / float64(total)
	state.Stars = progression.StarsForRatio(ratio, state.Stars)
}
