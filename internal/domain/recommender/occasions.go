package recommender

// occasionStyles maps each canonical occasion to the style tags it implies.
// Occasions missing from the table resolve to themselves.
var occasionStyles = map[string][]string{
	"interview":          {"formal"},
	"business meeting":   {"formal"},
	"office":             {"formal", "semi-formal"},
	"office party":       {"semi-formal", "party"},
	"office ethnic day":  {"ethnic"},
	"college ethnic day": {"ethnic"},
	"ethnic day":         {"ethnic"},
	"wedding":            {"party"},
	"ritual":             {"ethnic", "traditional"},
	"home ritual":        {"ethnic", "traditional"},
	"ceremony":           {"ethnic", "formal"},
	"temple visit":       {"ethnic", "traditional"},
	"birthday party":     {"party"},
	"party":              {"party"},
	"casual outing":      {"casual", "shopping", "picnic"},
	"picnic":             {"casual", "comfortable", "picnic", "shopping"},
	"shopping":           {"casual", "shopping", "picnic"},
	"date":               {"party", "smart-casual"},
	"beach party":        {"party", "summerwear"},
	"kids party":         {"colorful", "casual"},
	"kids outing":        {"casual", "comfortable"},
	"family outing":      {"casual", "semi-formal"},
	"family gathering":   {"casual", "ethnic", "semi-formal"},
	"school":             {"uniform", "casual"},
	"school function":    {"ethnic", "formal"},
	"tuition":            {"casual"},
	"cooking":            {"comfortable"},
	"swimming":           {"swim", "swimwear", "swiming"},
	"sports":             {"gym", "yoga", "camping", "trekking", "running", "hiking"},
	"gym":                {"yoga", "hiking", "camping", "trekking", "running"},
	"exercise":           {"gym", "yoga", "hiking", "camping", "trekking", "running"},
	"yoga":               {"gym", "hiking", "camping", "trekking", "running"},
	"meditation":         {"yoga"},
	"hiking":             {"gym", "yoga", "camping", "trekking", "running"},
	"camping":            {"gym", "yoga", "hiking", "trekking", "running"},
	"trekking":           {"gym", "yoga", "camping", "hiking", "running"},
	"mountain climbing":  {"gym", "yoga", "camping", "trekking", "running", "hiking"},
	"gardening":          {"casual", "camping"},
}

// occasionSynonyms maps canonical occasions to alias phrases. A prompt
// containing any alias resolves to the canonical occasion, and a matched
// occasion that appears as an alias pulls in its canonical form.
var occasionSynonyms = map[string][]string{
	"party":    {"birthday party", "beach party", "wedding", "date", "office party", "officeparty"},
	"gym":      {"yoga", "hiking", "camping", "trekking", "running", "exercise"},
	"shopping": {"mall", "buying clothes", "store visit"},
	"picnic":   {"outdoor fun", "park outing"},
}

// activeOccasions trigger the sport composition strategy.
var activeOccasions = newStringSet("gym", "hiking", "trekking", "yoga", "exercise", "camping")

// strictFormalOccasions trigger formal-only narrowing when they are the
// only occasions resolved.
var strictFormalOccasions = newStringSet("office", "business meeting", "interview")

// partyOccasions trigger the party/ethnic composition strategy.
var partyOccasions = newStringSet("party", "office party", "beach party")

var ethnicTags = newStringSet("ethnic", "traditional")

// resolveStyles expands an occasion set into the style-tag set used for tag
// matching. Each occasion contributes its table styles (or itself when
// unlisted) and the occasion word itself also acts as a tag.
func resolveStyles(occasions []string) stringSet {
	styles := make(stringSet, len(occasions)*2)
	for _, occ := range occasions {
		if mapped, ok := occasionStyles[occ]; ok {
			for _, tag := range mapped {
				styles.add(tag)
			}
		} else {
			styles.add(occ)
		}
		styles.add(occ)
	}
	return styles
}
