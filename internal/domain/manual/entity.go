package manual

// QuestionID identifies a catalog question.
type QuestionID string

// Question is one supplementary question answered by hand, without photo
// analysis. Text may contain the %AREA% placeholder, substituted with the
// area name when a questionnaire is built. Options, when present, restrict
// the answer to the listed values; otherwise the answer is free text.
type Question struct {
	ID       QuestionID   `json:"id"`
	Text     string       `json:"text"`
	Part     BuildingPart `json:"part"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required,omitempty"`
	Answer   string       `json:"answer"`
}
