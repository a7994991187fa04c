package importer

// attributeMapping translates the export's abbreviated column headers to
// canonical attribute names.
var attributeMapping = map[string]string{
	"Reg":                 "Registration",
	"Inf":                 "Information",
	"Name":                "Name",
	"Age":                 "Age",
	"Wage":                "Wage",
	"Transfer Value":      "Transfer Value",
	"Nat":                 "Nationality",
	"2nd Nat":             "Second Nationality",
	"Position":            "Position",
	"Personality":         "Personality",
	"Media Handling":      "Media Handling",
	"Av Rat":              "Average Rating",
	"Left Foot":           "Left Foot",
	"Right Foot":          "Right Foot",
	"Height":              "Height",
	"1v1":                 "One vs One",
	"Acc":                 "Acceleration",
	"Aer":                 "Aerial Reach",
	"Agg":                 "Aggression",
	"Agi":                 "Agility",
	"Ant":                 "Anticipation",
	"Bal":                 "Balance",
	"Bra":                 "Bravery",
	"Cmd":                 "Command of Area",
	"Cnt":                 "Concentration",
	"Cmp":                 "Composure",
	"Cro":                 "Crossing",
	"Dec":                 "Decisions",
	"Det":                 "Determination",
	"Dri":                 "Dribbling",
	"Fin":                 "Finishing",
	"Fir":                 "First Touch",
	"Fla":                 "Flair",
	"Han":                 "Handling",
	"Hea":                 "Heading",
	"Jum":                 "Jumping Reach",
	"Kic":                 "Kicking",
	"Ldr":                 "Leadership",
	"Lon":                 "Long Shots",
	"Mar":                 "Marking",
	"OtB":                 "Off the Ball",
	"Pac":                 "Pace",
	"Pas":                 "Passing",
	"Pos":                 "Positioning",
	"Ref":                 "Reflexes",
	"Sta":                 "Stamina",
	"Str":                 "Strength",
	"Tck":                 "Tackling",
	"Tea":                 "Teamwork",
	"Tec":                 "Technique",
	"Thr":                 "Throwing",
	"TRO":                 "Rushing Out (Tendency)",
	"Vis":                 "Vision",
	"Wor":                 "Work Rate",
	"UID":                 "Unique ID",
	"Cor":                 "Corners",
	"Club":                "Club",
	"Agreed Playing Time": "Agreed Playing Time",
}

// identityColumns are consumed into dedicated Player fields rather than the
// attribute map.
var identityColumns = map[string]struct{}{
	"Unique ID":           {},
	"Name":                {},
	"Club":                {},
	"Age":                 {},
	"Position":            {},
	"Agreed Playing Time": {},
	"Information":         {},
	"Left Foot":           {},
	"Right Foot":          {},
}

// footStrength ranks the export's foot descriptors, strongest first.
var footStrength = map[string]int{
	"very strong":   6,
	"strong":        5,
	"fairly strong": 4,
	"reasonable":    3,
	"fairly weak":   2,
	"weak":          1,
	"very weak":     0,
}
