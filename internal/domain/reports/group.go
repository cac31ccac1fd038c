package reports

import (
	"github.com/sitewalk/inspection-api/internal/domain/manual"
	"github.com/sitewalk/inspection-api/internal/domain/survey"
)

// SurveyGroup is one location's completed questions for display.
type SurveyGroup struct {
	Location  survey.Location   `json:"location"`
	Questions []survey.Question `json:"questions"`
}

// ManualGroup is one building part's manual questions for display.
type ManualGroup struct {
	Part      manual.BuildingPart `json:"part"`
	Questions []manual.Question   `json:"questions"`
}

// GroupSurvey buckets completed survey questions by location in the fixed
// canonical order, so reports look the same across submissions. Locations
// with no completed questions are omitted, not rendered empty.
func GroupSurvey(qs []survey.Question) []SurveyGroup {
	byLoc := make(map[survey.Location][]survey.Question)
	for _, q := range qs {
		if !q.Completed {
			continue
		}
		byLoc[q.Location] = append(byLoc[q.Location], q)
	}
	var out []SurveyGroup
	for _, loc := range survey.LocationOrder {
		if qs := byLoc[loc]; len(qs) > 0 {
			out = append(out, SurveyGroup{Location: loc, Questions: qs})
		}
	}
	return out
}

// GroupManual buckets manual questions by building part in canonical part
// order, omitting empty groups.
func GroupManual(qs []manual.Question) []ManualGroup {
	byPart := make(map[manual.BuildingPart][]manual.Question)
	for _, q := range qs {
		byPart[q.Part] = append(byPart[q.Part], q)
	}
	var out []ManualGroup
	for _, part := range manual.PartOrder {
		if qs := byPart[part]; len(qs) > 0 {
			out = append(out, ManualGroup{Part: part, Questions: qs})
		}
	}
	return out
}
