package wardrobe

// Item categories understood by the recommendation engine. Records without
// a category default to CategoryUnknown at load time.
const (
	CategoryTopwear    = "topwear"
	CategoryBottomwear = "bottomwear"
	CategorySwimwear   = "swimwear"
	CategoryOnePiece   = "one-piece"
	CategoryLayer      = "layer"
	CategoryUnknown    = "unknown"
)

// Audience wildcard values.
const (
	AgeGroupAll  = "all"
	GenderUnisex = "unisex"
	GenderFemale = "female"
	GenderMale   = "male"
)

// Item is a single wardrobe record. The catalog owns items; the engine only
// ever reads them.
type Item struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	AgeGroup string   `json:"age_group"`
	Gender   string   `json:"gender"`
	Image    string   `json:"image"`
}

// ApplyDefaults fills the documented defaults for missing optional fields.
// Called once at the load boundary so the engine never sees partial records.
func (i *Item) ApplyDefaults() {
	if i.Tags == nil {
		i.Tags = []string{}
	}
	if i.Category == "" {
		i.Category = CategoryUnknown
	}
	if i.AgeGroup == "" {
		i.AgeGroup = AgeGroupAll
	}
	if i.Gender == "" {
		i.Gender = GenderUnisex
	}
}

// HasTag reports whether the item carries the given tag.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether any item tag appears in the given set.
func (i Item) HasAnyTag(set map[string]struct{}) bool {
	for _, t := range i.Tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
