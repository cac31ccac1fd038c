package survey

// QuestionID identifies one photo prompt within a survey.
type QuestionID string

// Location enum for the fixed building areas.
type Location string

const (
	LocationEntrance    Location = "entrance"
	LocationCorridor    Location = "corridor"
	LocationBreakArea   Location = "break_area"
	LocationKitchen     Location = "kitchen"
	LocationRestroom    Location = "restroom"
	LocationMeetingRoom Location = "meeting_room"
	LocationStorage     Location = "storage"
	LocationExterior    Location = "exterior"
)

// LocationOrder is the canonical display order for report grouping.
// Reports iterate locations in this order, never alphabetical or insertion order.
var LocationOrder = []Location{
	LocationEntrance,
	LocationCorridor,
	LocationBreakArea,
	LocationKitchen,
	LocationRestroom,
	LocationMeetingRoom,
	LocationStorage,
	LocationExterior,
}

// Question is one photo prompt of the survey.
// Prompt is the short label shown to the inspector; Analytical is the full
// natural-language question sent to the vision service.
type Question struct {
	ID         QuestionID `json:"id"`
	Location   Location   `json:"location"`
	Prompt     string     `json:"prompt"`
	Analytical string     `json:"analytical"`
	Images     []string   `json:"images"`
	Answer     string     `json:"answer,omitempty"`
	Completed  bool       `json:"completed"`
}

// Phase of the survey state machine.
type Phase string

const (
	PhaseCapturing Phase = "capturing"
	PhaseAnalyzing Phase = "analyzing"
	PhaseComplete  Phase = "complete"
)
