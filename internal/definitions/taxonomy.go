package definitions

// Attribute taxonomies. Each maps an attribute to the importance category it
// contributes to. Outfield and goalkeeper ratings use disjoint taxonomies; an
// attribute absent from the active taxonomy never influences a rating.

// OutfieldCategories is the attribute taxonomy for field player ratings.
var OutfieldCategories = map[string]string{
	"Pace":          "Extremely Important",
	"Acceleration":  "Extremely Important",
	"Jumping Reach": "Important",
	"Anticipation":  "Important",
	"Balance":       "Important",
	"Agility":       "Important",
	"Concentration": "Important",
	"Finishing":     "Important",
	"Work Rate":     "Good",
	"Dribbling":     "Good",
	"Stamina":       "Good",
	"Strength":      "Good",
	"Passing":       "Good",
	"Determination": "Good",
	"Vision":        "Good",
	"Long Shots":    "Decent",
	"Marking":       "Decent",
	"Decisions":     "Decent",
	"First Touch":   "Decent",
	"Off the Ball":  "Almost Irrelevant",
	"Tackling":      "Almost Irrelevant",
	"Teamwork":      "Almost Irrelevant",
	"Composure":     "Almost Irrelevant",
	"Technique":     "Almost Irrelevant",
	"Positioning":   "Almost Irrelevant",
}

// GoalkeeperCategories is the attribute taxonomy for goalkeeper ratings.
var GoalkeeperCategories = map[string]string{
	"Agility":         "Top Importance",
	"Aerial Reach":    "High Importance",
	"Reflexes":        "High Importance",
	"Command of Area": "Medium Importance",
	"Handling":        "Medium Importance",
	"One vs One":      "Medium Importance",
}
