package manual

// yesNo is the common enumerated option set.
var yesNo = []string{"yes", "no"}

// Catalog is the static question bank. Filtering picks the subset tagged
// with a canonical part, in this order.
var Catalog = []Question{
	{
		ID:       "entrance-accessible",
		Text:     "Is the %AREA% accessible for wheelchair users?",
		Part:     PartEntrance,
		Options:  yesNo,
		Required: true,
	},
	{
		ID:   "entrance-notes",
		Text: "Other observations about the entrance",
		Part: PartEntrance,
	},
	{
		ID:       "corridor-clear",
		Text:     "Are the escape routes in the %AREA% free of obstructions?",
		Part:     PartCorridor,
		Options:  yesNo,
		Required: true,
	},
	{
		ID:      "corridor-lighting",
		Text:    "Did any corridor lights appear broken or flickering?",
		Part:    PartCorridor,
		Options: yesNo,
	},
	{
		ID:       "breakarea-cleanliness",
		Text:     "Was the %AREA% clean at the time of inspection?",
		Part:     PartBreakArea,
		Options:  yesNo,
		Required: true,
	},
	{
		ID:   "breakarea-notes",
		Text: "Other observations about the break area",
		Part: PartBreakArea,
	},
	{
		ID:       "kitchen-smells",
		Text:     "Were there unusual smells (gas, burning, drains) in the %AREA%?",
		Part:     PartKitchen,
		Options:  yesNo,
		Required: true,
	},
	{
		ID:      "kitchen-waste",
		Text:    "Is waste sorting arranged and were the bins emptied?",
		Part:    PartKitchen,
		Options: yesNo,
	},
	{
		ID:       "restroom-supplies",
		Text:     "Were soap and paper supplies stocked in the %AREA%?",
		Part:     PartRestroom,
		Options:  yesNo,
		Required: true,
	},
	{
		ID:      "restroom-ventilation",
		Text:    "Did the ventilation appear to work (no lingering humidity)?",
		Part:    PartRestroom,
		Options: yesNo,
	},
	{
		ID:      "meetingroom-av",
		Text:    "Did the presentation equipment power on normally?",
		Part:    PartMeetingRoom,
		Options: yesNo,
	},
	{
		ID:       "storage-hazards",
		Text:     "Were flammable or hazardous materials stored correctly in the %AREA%?",
		Part:     PartStorage,
		Options:  yesNo,
		Required: true,
	},
	{
		ID:      "exterior-snow",
		Text:    "Is snow and ice removal / yard maintenance in acceptable condition?",
		Part:    PartExterior,
		Options: yesNo,
	},
	{
		ID:   "exterior-notes",
		Text: "Other observations about the exterior",
		Part: PartExterior,
	},
}
