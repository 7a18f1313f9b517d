package recommender

import (
	"sort"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// Outfit type labels.
const (
	OutfitOnePiece   = "one_piece"
	OutfitMultiPiece = "multi_piece"
	OutfitSwimwear   = "swimwear"
	OutfitNone       = "none"
)

// Profile is the slice of the user record the engine consumes.
type Profile struct {
	AgeGroup string `json:"age_group"`
	Gender   string `json:"gender"`
}

// Requirements is the structured form of a free-text prompt.
type Requirements struct {
	RequestedColors []string
	ForbiddenColors []string
	Occasions       []string
	NeedsLayer      bool
}

// EnvContext is advisory wall-clock context. It influences layering but
// never filters candidates.
type EnvContext struct {
	TimeOfDay string `json:"time"`
	Season    string `json:"season"`
}

// Outfit is an ordered combination of one to three distinct items.
type Outfit struct {
	Type  string          `json:"type"`
	Items []wardrobe.Item `json:"items"`
}

// Result is the guaranteed-three recommendation payload.
type Result struct {
	User     string     `json:"user"`
	Occasion string     `json:"occasion"`
	Context  EnvContext `json:"context"`
	Outfits  []Outfit   `json:"outfits"`
}

// Request carries one recommendation call.
type Request struct {
	User    string  `json:"user"`
	Prompt  string  `json:"prompt" binding:"required"`
	Profile Profile `json:"profile"`
}

// TrendingOccasion is a resolved occasion with its request count.
type TrendingOccasion struct {
	Occasion string `json:"occasion"`
	Count    int64  `json:"count"`
}

type stringSet map[string]struct{}

func newStringSet(values ...string) stringSet {
	s := make(stringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s stringSet) add(v string) { s[v] = struct{}{} }

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s stringSet) intersects(other stringSet) bool {
	for v := range s {
		if other.has(v) {
			return true
		}
	}
	return false
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
