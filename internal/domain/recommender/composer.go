package recommender

import (
	"log/slog"
	"math/rand"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// composer runs one recommendation over a profile-eligible catalog slice.
// Strategy selection is priority ordered and mutually exclusive per call:
// swimwear, active, strict-formal narrowing, party/ethnic, default.
type composer struct {
	eligible   []wardrobe.Item
	profile    Profile
	req        Requirements
	styles     stringSet
	needsLayer bool
	rng        *rand.Rand
	logger     *slog.Logger
}

// pools holds the category-partitioned candidate lists. topsAll/bottomsAll
// keep the unnarrowed sets for ethnic fallbacks.
type pools struct {
	topsAll    []wardrobe.Item
	bottomsAll []wardrobe.Item
	tops       []wardrobe.Item
	bottoms    []wardrobe.Item
	layers     []wardrobe.Item
	onePieces  []wardrobe.Item
}

func (c *composer) compose() ([]Outfit, pools) {
	if c.isSwimming() {
		return c.composeSwimwear(), pools{}
	}

	p := c.buildPools()
	c.logger.Debug("candidate pools built",
		"tops", len(p.tops), "bottoms", len(p.bottoms),
		"layers", len(p.layers), "one_pieces", len(p.onePieces))

	if c.hasOccasionIn(activeOccasions) {
		return c.composeActive(p), p
	}

	if c.isStrictFormal() {
		p.tops = c.keepTagged(p.tops, "formal")
		p.bottoms = c.keepTagged(p.bottoms, "formal")
		c.logger.Debug("strict formal narrowing applied", "tops", len(p.tops), "bottoms", len(p.bottoms))
	}

	if c.hasOccasionIn(partyOccasions) {
		outfits, handled := c.composeParty(&p)
		if handled {
			return outfits, p
		}
	}

	return c.composeDefault(p), p
}

func (c *composer) isSwimming() bool {
	return c.hasOccasion("swimming") || c.styles.has("swimming")
}

// isStrictFormal holds when every resolved occasion is office-like and no
// ethnic intent is present.
func (c *composer) isStrictFormal() bool {
	if c.styles.intersects(ethnicTags) {
		return false
	}
	for _, occ := range c.req.Occasions {
		if !strictFormalOccasions.has(occ) {
			return false
		}
	}
	return len(c.req.Occasions) > 0
}

func (c *composer) hasOccasion(occ string) bool {
	for _, o := range c.req.Occasions {
		if o == occ {
			return true
		}
	}
	return false
}

func (c *composer) hasOccasionIn(set stringSet) bool {
	for _, o := range c.req.Occasions {
		if set.has(o) {
			return true
		}
	}
	return false
}

func (c *composer) buildPools() pools {
	var p pools

	if c.profile.Gender == wardrobe.GenderFemale {
		p.onePieces = filterCategory(c.eligible, wardrobe.CategoryOnePiece, wardrobe.GenderFemale)
		// Some catalogs spell the category with an underscore.
		p.onePieces = append(p.onePieces, filterCategory(c.eligible, "one_piece", wardrobe.GenderFemale)...)
		p.onePieces = c.withoutForbidden(p.onePieces)
	}

	p.topsAll = filterCategory(c.eligible, wardrobe.CategoryTopwear, c.profile.Gender)
	p.bottomsAll = filterCategory(c.eligible, wardrobe.CategoryBottomwear, c.profile.Gender)

	p.tops = itemsWithAnyTag(p.topsAll, c.styles)
	p.bottoms = itemsWithAnyTag(p.bottomsAll, c.styles)
	if len(p.tops) == 0 {
		p.tops = p.topsAll
	}
	if len(p.bottoms) == 0 {
		p.bottoms = p.bottomsAll
	}

	if len(c.req.ForbiddenColors) > 0 {
		p.tops = c.withoutForbidden(p.tops)
		p.bottoms = c.withoutForbidden(p.bottoms)
	}

	// Ethnic intent narrows to ethnic/traditional items when any exist.
	if c.styles.intersects(ethnicTags) {
		if narrowed := itemsWithAnyTag(p.tops, ethnicTags); len(narrowed) > 0 {
			p.tops = narrowed
		}
		if narrowed := itemsWithAnyTag(p.bottoms, ethnicTags); len(narrowed) > 0 {
			p.bottoms = narrowed
		}
	}

	p.layers = c.withoutForbidden(filterCategory(c.eligible, wardrobe.CategoryLayer, c.profile.Gender))
	return p
}

func (c *composer) withoutForbidden(items []wardrobe.Item) []wardrobe.Item {
	if len(c.req.ForbiddenColors) == 0 {
		return items
	}
	var out []wardrobe.Item
	for _, item := range items {
		if colorMatches(item.Tags, nil, c.req.ForbiddenColors) {
			out = append(out, item)
		}
	}
	return out
}

func (c *composer) keepTagged(items []wardrobe.Item, tag string) []wardrobe.Item {
	var out []wardrobe.Item
	for _, item := range items {
		if item.HasTag(tag) {
			out = append(out, item)
		}
	}
	return out
}

// composeSwimwear returns swimwear-only outfits: color-matched first, then
// remaining swimwear, cycling when fewer than three distinct pieces exist.
func (c *composer) composeSwimwear() []Outfit {
	swim := c.withoutForbidden(filterCategory(c.eligible, wardrobe.CategorySwimwear, c.profile.Gender))
	matched := colorMatched(swim, c.req.RequestedColors, c.req.ForbiddenColors)

	var outfits []Outfit
	used := newStringSet()
	for _, sw := range matched {
		if len(outfits) == 3 {
			break
		}
		outfits = append(outfits, Outfit{Type: OutfitSwimwear, Items: []wardrobe.Item{sw}})
		used.add(sw.Name)
	}
	for _, sw := range swim {
		if len(outfits) == 3 {
			break
		}
		if used.has(sw.Name) {
			continue
		}
		outfits = append(outfits, Outfit{Type: OutfitSwimwear, Items: []wardrobe.Item{sw}})
		used.add(sw.Name)
	}
	// Cycle distinct pieces rather than padding with placeholders.
	for i := 0; len(outfits) < 3 && len(swim) > 0; i++ {
		outfits = append(outfits, Outfit{Type: OutfitSwimwear, Items: []wardrobe.Item{swim[i%len(swim)]}})
	}
	return outfits
}

// composeActive builds sport outfits from style-relevant tops and bottoms,
// preferring color-matched pairs and cycling pairs to reach three.
func (c *composer) composeActive(p pools) []Outfit {
	relevantTags := make(stringSet, len(c.styles)+len(activeOccasions))
	for tag := range c.styles {
		relevantTags.add(tag)
	}
	for occ := range activeOccasions {
		relevantTags.add(occ)
	}
	tops := itemsWithAnyTag(p.tops, relevantTags)
	bottoms := itemsWithAnyTag(p.bottoms, relevantTags)

	type pair struct{ top, bottom wardrobe.Item }
	var all []pair
	for _, t := range tops {
		for _, b := range bottoms {
			all = append(all, pair{t, b})
		}
	}
	pairs := all
	if len(c.req.RequestedColors) > 0 {
		var colored []pair
		for _, pr := range all {
			if colorMatches(pr.top.Tags, c.req.RequestedColors, c.req.ForbiddenColors) ||
				colorMatches(pr.bottom.Tags, c.req.RequestedColors, c.req.ForbiddenColors) {
				colored = append(colored, pr)
			}
		}
		if len(colored) > 0 {
			pairs = colored
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	outfits := make([]Outfit, 0, 3)
	for i := 0; len(outfits) < 3; i++ {
		pr := pairs[i%len(pairs)]
		outfits = append(outfits, Outfit{Type: OutfitMultiPiece, Items: []wardrobe.Item{pr.top, pr.bottom}})
	}
	return outfits
}
