package session

import (
	"github.com/nicoespa/mentalgym/internal/quiz"
)

// answerResultMsg is sent when the orchestrator has judged an answer.
type answerResultMsg struct {
	Verdict quiz.Verdict
	Err     error
}

// retryResultMsg is sent after a finalization retry.
type retryResultMsg struct {
	Err error
}
