package content

import (
	"errors"
	"testing"
)

func TestBuiltinCatalogValid(t *testing.T) {
	c := Builtin()
	topics := c.Topics()
	if len(topics) == 0 {
		t.Fatal("expected builtin topics")
	}
	for _, topic := range topics {
		if err := ValidateTopic(topic); err != nil {
			t.Errorf("topic %q: %v", topic.ID, err)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	c := Builtin()

	topic, err := c.Topic("creatividad")
	if err != nil {
		t.Fatalf("lookup creatividad: %v", err)
	}
	if topic.Title != "Creatividad" {
		t.Errorf("title = %q, want Creatividad", topic.Title)
	}

	_, err = c.Topic("no-such-topic")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.TopicID != "no-such-topic" {
		t.Errorf("TopicID = %q", nf.TopicID)
	}
}

func TestCatalogOrderStable(t *testing.T) {
	c := Builtin()
	first := c.Topics()
	second := c.Topics()
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("topic order changed at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	seed := seedTopics()
	_, err := NewCatalog(append(seed, seed[0]))
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestSeedCoversAllKinds(t *testing.T) {
	kinds := make(map[Kind]bool)
	for _, topic := range seedTopics() {
		for _, q := range topic.Questions {
			kinds[q.Kind()] = true
		}
	}
	want := []Kind{
		KindMultipleChoice, KindOpen, KindTrueFalse, KindOrder,
		KindMatch, KindFillInBlank, KindListenAndWrite,
	}
	for _, k := range want {
		if !kinds[k] {
			t.Errorf("seed catalog has no %q question", k)
		}
	}
}
