package session

import "time"

// Summary holds the session results displayed on the summary screen.
type Summary struct {
	TopicID        string
	TopicName      string
	Total          int
	Correct        int
	Accuracy       float64
	Stars          int
	XPEarned       int
	HeartsLeft     int
	ReviewAttempts int
	ReviewCleared  int
	Duration       time.Duration
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) *Summary {
	total := len(state.Topic.Questions)
	var accuracy float64
	if total > 0 {
		accuracy = float64(state.Correct) / float64(total)
	}

	return &Summary{
		TopicID:        state.Topic.ID,
		TopicName:      state.Topic.Title,
		Total:          total,
		Correct:        state.Correct,
		Accuracy:       accuracy,
		Stars:          state.Stars,
		XPEarned:       state.XPEarned,
		HeartsLeft:     state.Hearts,
		ReviewAttempts: state.ReviewAttempts,
		ReviewCleared:  state.ReviewCleared,
		Duration:       time.Since(state.StartTime),
	}
}
