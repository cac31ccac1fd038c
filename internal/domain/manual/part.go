package manual

import "strings"

// BuildingPart enum for the areas manual questions attach to.
type BuildingPart string

const (
	PartEntrance    BuildingPart = "entrance"
	PartCorridor    BuildingPart = "corridor"
	PartBreakArea   BuildingPart = "break_area"
	PartKitchen     BuildingPart = "kitchen"
	PartRestroom    BuildingPart = "restroom"
	PartMeetingRoom BuildingPart = "meeting_room"
	PartStorage     BuildingPart = "storage"
	PartExterior    BuildingPart = "exterior"
	PartOther       BuildingPart = "other"
)

// PartOrder is the canonical grouping order for reports, mirroring the
// survey location order.
var PartOrder = []BuildingPart{
	PartEntrance,
	PartCorridor,
	PartBreakArea,
	PartKitchen,
	PartRestroom,
	PartMeetingRoom,
	PartStorage,
	PartExterior,
	PartOther,
}

// synonyms maps every part label the upstream screens produce to one
// canonical part. The table must stay total: a label missing here lands in
// the Other bucket, which filters to zero questions without erroring.
var synonyms = map[string]BuildingPart{
	"entrance":           PartEntrance,
	"entrance area":      PartEntrance,
	"main entrance":      PartEntrance,
	"lobby":              PartEntrance,
	"corridor":           PartCorridor,
	"hall":               PartCorridor,
	"hallway":            PartCorridor,
	"corridor/hall area": PartCorridor,
	"break area":         PartBreakArea,
	"break room":         PartBreakArea,
	"lounge":             PartBreakArea,
	"kitchen":            PartKitchen,
	"kitchenette":        PartKitchen,
	"kitchen area":       PartKitchen,
	"restroom":           PartRestroom,
	"toilet":             PartRestroom,
	"bathroom":           PartRestroom,
	"wc":                 PartRestroom,
	"meeting room":       PartMeetingRoom,
	"conference room":    PartMeetingRoom,
	"meeting_room":       PartMeetingRoom,
	"storage":            PartStorage,
	"storage room":       PartStorage,
	"warehouse":          PartStorage,
	"exterior":           PartExterior,
	"outside":            PartExterior,
	"facade":             PartExterior,
	"yard":               PartExterior,
}

// Canonical normalizes a free-form part label to its BuildingPart.
// Unrecognized labels go to PartOther rather than failing hard; callers
// treat an empty question subset for such a part as a valid state.
func Canonical(label string) BuildingPart {
	key := strings.ToLower(strings.TrimSpace(label))
	if p, ok := synonyms[key]; ok {
		return p
	}
	if p := BuildingPart(key); known(p) {
		return p
	}
	return PartOther
}

func known(p BuildingPart) bool {
	for _, k := range PartOrder {
		if k == p {
			return true
		}
	}
	return false
}
