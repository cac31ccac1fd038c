package manual

import (
	"errors"
	"strings"
)

var (
	// ErrQuestionNotFound indicates an unknown question id.
	ErrQuestionNotFound = errors.New("manual question not found")

	// ErrInvalidOption rejects an answer outside a question's option set.
	ErrInvalidOption = errors.New("answer not in question options")
)

// Questionnaire holds the filtered question subset for one building part
// while the inspector fills it in.
type Questionnaire struct {
	Part      BuildingPart `json:"part"`
	Questions []*Question  `json:"questions"`
}

// Filter returns the catalog subset for the given part label, in stable
// catalog order, with the area name substituted into templated texts.
// An unrecognized label canonicalizes to Other and yields an empty set,
// which is a valid "no manual questions for this part" state.
func Filter(label, areaName string) *Questionnaire {
	part := Canonical(label)
	if areaName == "" {
		areaName = strings.TrimSpace(label)
	}
	var qs []*Question
	for _, c := range Catalog {
		if c.Part != part {
			continue
		}
		q := c
		q.Text = strings.ReplaceAll(c.Text, "%AREA%", areaName)
		q.Options = append([]string(nil), c.Options...)
		qs = append(qs, &q)
	}
	return &Questionnaire{Part: part, Questions: qs}
}

// UpdateAnswer sets or replaces a question's answer. When the question has
// an option set the value must be one of the options; free text otherwise.
func (qn *Questionnaire) UpdateAnswer(id QuestionID, value string) error {
	for _, q := range qn.Questions {
		if q.ID != id {
			continue
		}
		if len(q.Options) > 0 && value != "" {
			found := false
			for _, opt := range q.Options {
				if opt == value {
					found = true
					break
				}
			}
			if !found {
				return ErrInvalidOption
			}
		}
		q.Answer = value
		return nil
	}
	return ErrQuestionNotFound
}

// ValidateAndSubmit checks the required questions. When any required answer
// is empty or whitespace-only it returns nil plus the texts of the
// unanswered questions; otherwise it returns the full answered set,
// unanswered optional questions included with an empty answer.
func (qn *Questionnaire) ValidateAndSubmit() ([]Question, []string) {
	var missing []string
	for _, q := range qn.Questions {
		if q.Required && strings.TrimSpace(q.Answer) == "" {
			missing = append(missing, q.Text)
		}
	}
	if len(missing) > 0 {
		return nil, missing
	}
	out := make([]Question, 0, len(qn.Questions))
	for _, q := range qn.Questions {
		out = append(out, *q)
	}
	return out, nil
}
