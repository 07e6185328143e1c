package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// packSchema returns the compiled topic pack schema, compiling it once.
func packSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(topicSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse topic schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://topic.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://topic.json")
	})
	return compiledSchema, schemaErr
}

// LoadPacks reads every *.json topic pack in dir, in filename order, and
// returns the decoded topics. Each file holds exactly one topic.
func LoadPacks(dir string) ([]Topic, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read topic dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	topics := make([]Topic, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		t, err := LoadPack(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// LoadPack reads and validates a single topic pack file.
func LoadPack(path string) (Topic, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Topic{}, fmt.Errorf("read pack: %w", err)
	}

	schema, err := packSchema()
	if err != nil {
		return Topic{}, err
	}
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return Topic{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Topic{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc topicDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Topic{}, fmt.Errorf("decode pack: %w", err)
	}

	t, err := doc.toTopic()
	if err != nil {
		return Topic{}, err
	}
	if err := ValidateTopic(t); err != nil {
		return Topic{}, err
	}
	return t, nil
}

// topicDoc mirrors the pack file shape.
type topicDoc struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Difficulty  string        `json:"difficulty"`
	XPReward    int           `json:"xp_reward"`
	Questions   []questionDoc `json:"questions"`
}

// questionDoc is the union of all variant fields; Type selects which are read.
type questionDoc struct {
	Type        string          `json:"type"`
	ID          string          `json:"id"`
	Prompt      string          `json:"prompt"`
	Difficulty  string          `json:"difficulty"`
	Category    string          `json:"category"`
	XPReward    int             `json:"xp_reward"`
	Explanation string          `json:"explanation"`
	Options     []optionDoc     `json:"options"`
	Placeholder string          `json:"placeholder"`
	Statement   string          `json:"statement"`
	Answer      json.RawMessage `json:"answer"`
	Items       []string        `json:"items"`
	CorrectOrd  []string        `json:"correct_order"`
	Pairs       []pairDoc       `json:"pairs"`
	Text        string          `json:"text"`
	Blanks      []string        `json:"blanks"`
	Answers     []string        `json:"answers"`
	AudioPath   string          `json:"audio_path"`
}

type optionDoc struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type pairDoc struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

func (d topicDoc) toTopic() (Topic, error) {
	t := Topic{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
		Difficulty:  Tier(d.Difficulty),
		XPReward:    d.XPReward,
	}
	if t.Difficulty == "" {
		t.Difficulty = TierBeginner
	}
	for _, qd := range d.Questions {
		q, err := qd.toQuestion()
		if err != nil {
			return Topic{}, fmt.Errorf("question %q: %w", qd.ID, err)
		}
		t.Questions = append(t.Questions, q)
	}
	return t, nil
}

func (d questionDoc) toQuestion() (Question, error) {
	info := Info{
		ID:          d.ID,
		Prompt:      d.Prompt,
		Difficulty:  Difficulty(d.Difficulty),
		Category:    d.Category,
		XPReward:    d.XPReward,
		Explanation: d.Explanation,
	}
	if info.Difficulty == "" {
		info.Difficulty = DifficultyMedium
	}

	switch Kind(d.Type) {
	case KindMultipleChoice:
		opts := make([]Option, 0, len(d.Options))
		for _, o := range d.Options {
			opts = append(opts, Option{ID: o.ID, Text: o.Text, Correct: o.Correct})
		}
		return MultipleChoice{Info: info, Options: opts}, nil
	case KindOpen:
		return Open{Info: info, Placeholder: d.Placeholder}, nil
	case KindTrueFalse:
		var answer bool
		if err := json.Unmarshal(d.Answer, &answer); err != nil {
			return nil, fmt.Errorf("true_false answer must be a boolean: %w", err)
		}
		statement := d.Statement
		if statement == "" {
			statement = d.Prompt
		}
		return TrueFalse{Info: info, Statement: statement, Answer: answer}, nil
	case KindOrder:
		return Order{Info: info, Items: d.Items, CorrectOrder: d.CorrectOrd}, nil
	case KindMatch:
		pairs := make([]Pair, 0, len(d.Pairs))
		for _, p := range d.Pairs {
			pairs = append(pairs, Pair{Left: p.Left, Right: p.Right})
		}
		return Match{Info: info, Pairs: pairs}, nil
	case KindFillInBlank:
		return FillInBlank{Info: info, Text: d.Text, Blanks: d.Blanks, Answers: d.Answers}, nil
	case KindListenAndWrite:
		var answer string
		if err := json.Unmarshal(d.Answer, &answer); err != nil {
			return nil, fmt.Errorf("listen_and_write answer must be a string: %w", err)
		}
		return ListenAndWrite{Info: info, AudioPath: d.AudioPath, Answer: answer}, nil
	default:
		return nil, fmt.Errorf("unknown question type %q", d.Type)
	}
}
