package content

// Kind identifies the question variant. The set is closed: the evaluator and
// the session screen switch exhaustively over the concrete types below.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindOpen           Kind = "open"
	KindTrueFalse      Kind = "true_false"
	KindOrder          Kind = "order"
	KindMatch          Kind = "match"
	KindFillInBlank    Kind = "fill_in_blank"
	KindListenAndWrite Kind = "listen_and_write"
)

// Difficulty is the per-question difficulty label.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Info carries the fields shared by every question variant.
type Info struct {
	ID          string
	Prompt      string
	Difficulty  Difficulty
	Category    string
	XPReward    int
	Explanation string
}

// Base returns the common question fields.
func (i Info) Base() Info { return i }

func (Info) sealedQuestion() {}

// Question is the closed union over the seven variants. Only the types in
// this package implement it; a type switch over them is exhaustive.
type Question interface {
	Kind() Kind
	Base() Info
	sealedQuestion()
}

// Option is a single multiple-choice option.
type Option struct {
	ID      string
	Text    string
	Correct bool
}

// MultipleChoice asks the user to pick one option. Exactly one option is
// expected to carry Correct; content violating that is caught by
// ValidateTopic, not by the evaluator.
type MultipleChoice struct {
	Info
	Options []Option
}

func (MultipleChoice) Kind() Kind { return KindMultipleChoice }

// Open is a free-reflection prompt. Any non-empty response counts as correct;
// the value is in writing it, not in matching an answer key.
type Open struct {
	Info
	Placeholder string
}

func (Open) Kind() Kind { return KindOpen }

// TrueFalse presents a statement to affirm or reject.
type TrueFalse struct {
	Info
	Statement string
	Answer    bool
}

func (TrueFalse) Kind() Kind { return KindTrueFalse }

// Order asks the user to arrange Items into CorrectOrder.
type Order struct {
	Info
	Items        []string
	CorrectOrder []string
}

func (Order) Kind() Kind { return KindOrder }

// Pair is one canonical left/right association of a match question.
type Pair struct {
	Left  string
	Right string
}

// Match asks the user to associate every left item with its right item.
type Match struct {
	Info
	Pairs []Pair
}

func (Match) Kind() Kind { return KindMatch }

// CorrectMatches returns the canonical left-to-right mapping.
func (m Match) CorrectMatches() map[string]string {
	out := make(map[string]string, len(m.Pairs))
	for _, p := range m.Pairs {
		out[p.Left] = p.Right
	}
	return out
}

// FillInBlank asks the user to complete the blanks embedded in Text.
// Text marks blanks with bracketed labels, e.g. "La capital es [ciudad]".
// Answers holds the canonical answer for each blank, in order.
type FillInBlank struct {
	Info
	Text    string
	Blanks  []string
	Answers []string
}

func (FillInBlank) Kind() Kind { return KindFillInBlank }

// ListenAndWrite plays an audio clip and asks for its transcript.
type ListenAndWrite struct {
	Info
	AudioPath string
	Answer    string
}

func (ListenAndWrite) Kind() Kind { return KindListenAndWrite }
