package content

import "fmt"

// Tier is the topic-level difficulty band.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Topic is an ordered unit of questions on one reflective theme.
// Topics are immutable content; per-user completion lives in the store.
type Topic struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Difficulty  Tier
	XPReward    int
	Questions   []Question
}

// Store supplies read-only topic content to the session engine.
type Store interface {
	// Topic returns the topic with the given id, or a *NotFoundError.
	Topic(id string) (Topic, error)

	// Topics returns all topics in authoring order.
	Topics() []Topic
}

// NotFoundError reports a topic id unknown to the content store.
type NotFoundError struct {
	TopicID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("topic %q not found", e.TopicID)
}
