package survey

// Template is the fixed question set every new survey starts from, grouped
// by location but flattened into one linear sequence. The whole set is
// replaced when a new survey starts; questions are never removed one by one.
func Template() []Question {
	return []Question{
		{
			ID:         "entrance-door",
			Location:   LocationEntrance,
			Prompt:     "Entrance door and frame",
			Analytical: "Inspect the building entrance door and its frame. Describe the condition of the door surface, seals and hinges, and note any visible damage, rust or misalignment.",
		},
		{
			ID:         "entrance-signage",
			Location:   LocationEntrance,
			Prompt:     "Entrance signage and lighting",
			Analytical: "Look at the signage and lighting at the entrance area. Are the signs legible and the light fixtures intact and presumably working?",
		},
		{
			ID:         "corridor-floor",
			Location:   LocationCorridor,
			Prompt:     "Corridor floor",
			Analytical: "Inspect the corridor floor surface. Report wear, cracks, loose material or trip hazards visible in the photos.",
		},
		{
			ID:         "corridor-exits",
			Location:   LocationCorridor,
			Prompt:     "Emergency exits and routes",
			Analytical: "Check the emergency exit doors and escape route markings in the corridor. Are the routes unobstructed and the exit signs visible?",
		},
		{
			ID:         "breakarea-furniture",
			Location:   LocationBreakArea,
			Prompt:     "Break area furniture",
			Analytical: "Inspect the break area furniture. Describe the condition of tables, chairs and sofas, noting damage or heavy wear.",
		},
		{
			ID:         "kitchen-appliances",
			Location:   LocationKitchen,
			Prompt:     "Kitchen appliances",
			Analytical: "Inspect the kitchen appliances visible in the photos. Note the apparent condition of the refrigerator, stove, dishwasher and worktops, including visible dirt or damage.",
		},
		{
			ID:         "kitchen-plumbing",
			Location:   LocationKitchen,
			Prompt:     "Sink and plumbing",
			Analytical: "Look at the kitchen sink and visible plumbing. Are there signs of leaks, corrosion or water damage around the sink and under the counter?",
		},
		{
			ID:         "restroom-fixtures",
			Location:   LocationRestroom,
			Prompt:     "Restroom fixtures",
			Analytical: "Inspect the restroom fixtures: toilet, sink, faucet and mirror. Report damage, limescale, mold or leaks visible in the photos.",
		},
		{
			ID:         "meetingroom-equipment",
			Location:   LocationMeetingRoom,
			Prompt:     "Meeting room equipment",
			Analytical: "Inspect the meeting room. Describe the condition of the walls, furniture and any presentation equipment visible in the photos.",
		},
		{
			ID:         "storage-shelving",
			Location:   LocationStorage,
			Prompt:     "Storage shelving and order",
			Analytical: "Inspect the storage room. Are the shelves intact and safely loaded, and is the room generally tidy and accessible?",
		},
		{
			ID:         "exterior-facade",
			Location:   LocationExterior,
			Prompt:     "Facade and drainage",
			Analytical: "Inspect the building facade and visible drainage. Note cracks, flaking paint, damaged gutters or signs of moisture on the exterior walls.",
		},
	}
}
