package quiz

// Response is the closed union of user answers, one shape per question
// variant. The evaluator tolerates a mismatched shape by returning an
// incorrect verdict; it never fails.
type Response interface {
	sealedResponse()
}

// OptionAnswer selects a multiple-choice option by id.
type OptionAnswer struct {
	OptionID string
}

// TextAnswer carries free text: open reflections, transcripts.
type TextAnswer struct {
	Text string
}

// BoolAnswer answers a true/false statement.
type BoolAnswer struct {
	Value bool
}

// OrderAnswer is the user's arrangement of an order question's items.
type OrderAnswer struct {
	Items []string
}

// MatchAnswer maps each left item to the chosen right item.
type MatchAnswer struct {
	Matches map[string]string
}

// BlanksAnswer holds one value per blank, in blank order.
type BlanksAnswer struct {
	Values []string
}

func (OptionAnswer) sealedResponse() {}
func (TextAnswer) sealedResponse()   {}
func (BoolAnswer) sealedResponse()   {}
func (OrderAnswer) sealedResponse()  {}
func (MatchAnswer) sealedResponse()  {}
func (BlanksAnswer) sealedResponse() {}
