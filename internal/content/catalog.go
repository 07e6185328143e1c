package content

import "fmt"

// Catalog is an in-memory Store over a fixed topic list.
type Catalog struct {
	topics []Topic
	byID   map[string]int
}

var _ Store = (*Catalog)(nil)

// NewCatalog builds a Catalog from the given topics, validating each one.
// Topic order is preserved (authoring order is the presentation order).
func NewCatalog(topics []Topic) (*Catalog, error) {
	c := &Catalog{
		topics: topics,
		byID:   make(map[string]int, len(topics)),
	}
	for i, t := range topics {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate topic id %q", t.ID)
		}
		if err := ValidateTopic(t); err != nil {
			return nil, fmt.Errorf("topic %q: %w", t.ID, err)
		}
		c.byID[t.ID] = i
	}
	return c, nil
}

// Topic returns the topic with the given id.
func (c *Catalog) Topic(id string) (Topic, error) {
	i, ok := c.byID[id]
	if !ok {
		return Topic{}, &NotFoundError{TopicID: id}
	}
	return c.topics[i], nil
}

// Topics returns all topics in authoring order.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Builtin returns a catalog over the embedded seed topics.
func Builtin() *Catalog {
	c, err := NewCatalog(seedTopics())
	if err != nil {
		// The seed is authored in this package and covered by tests;
		// failing to validate it is a build defect, not a runtime case.
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}
