package content

import (
	"strings"
	"testing"
)

func validTopic() Topic {
	return Topic{
		ID:    "t",
		Title: "T",
		Questions: []Question{
			TrueFalse{
				Info:      Info{ID: "q1", Prompt: "p", XPReward: 10},
				Statement: "s",
				Answer:    true,
			},
		},
	}
}

func TestValidateTopic_OK(t *testing.T) {
	if err := ValidateTopic(validTopic()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateTopic_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Topic)
		wantMsg string
	}{
		{
			name:    "no questions",
			mutate:  func(tp *Topic) { tp.Questions = nil },
			wantMsg: "no questions",
		},
		{
			name: "duplicate question ids",
			mutate: func(tp *Topic) {
				tp.Questions = append(tp.Questions, tp.Questions[0])
			},
			wantMsg: "duplicate question id",
		},
		{
			name: "two correct options",
			mutate: func(tp *Topic) {
				tp.Questions = []Question{MultipleChoice{
					Info: Info{ID: "q1", Prompt: "p"},
					Options: []Option{
						{ID: "a", Text: "a", Correct: true},
						{ID: "b", Text: "b", Correct: true},
					},
				}}
			},
			wantMsg: "exactly 1 correct option",
		},
		{
			name: "order items mismatch",
			mutate: func(tp *Topic) {
				tp.Questions = []Question{Order{
					Info:         Info{ID: "q1", Prompt: "p"},
					Items:        []string{"a", "b"},
					CorrectOrder: []string{"a", "c"},
				}}
			},
			wantMsg: "not the same set",
		},
		{
			name: "blank count mismatch",
			mutate: func(tp *Topic) {
				tp.Questions = []Question{FillInBlank{
					Info:    Info{ID: "q1", Prompt: "p"},
					Text:    "x [a] y",
					Blanks:  []string{"a", "b"},
					Answers: []string{"only-one"},
				}}
			},
			wantMsg: "2 blanks but 1 answers",
		},
		{
			name: "empty transcript",
			mutate: func(tp *Topic) {
				tp.Questions = []Question{ListenAndWrite{
					Info: Info{ID: "q1", Prompt: "p"},
				}}
			},
			wantMsg: "empty canonical transcript",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := validTopic()
			tt.mutate(&topic)
			err := ValidateTopic(topic)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}
