package recommender

import (
	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

var partyPriorityTags = newStringSet("party", "semi-formal", "summerwear", "beach party")
var partyFallbackTags = newStringSet("formal", "office party")

// composeParty narrows the pools to partywear, falling back to formal and
// then ethnic items. When colors were requested it fully composes outfits
// and reports handled; otherwise it only narrows the pools and lets the
// default strategy finish.
func (c *composer) composeParty(p *pools) ([]Outfit, bool) {
	partyTops := itemsWithAnyTag(p.tops, partyPriorityTags)
	partyBottoms := itemsWithAnyTag(p.bottoms, partyPriorityTags)
	if len(partyTops) == 0 {
		partyTops = itemsWithAnyTag(p.tops, partyFallbackTags)
	}
	if len(partyBottoms) == 0 {
		partyBottoms = itemsWithAnyTag(p.bottoms, partyFallbackTags)
	}
	if (len(partyTops) == 0 || len(partyBottoms) == 0) && c.styles.intersects(ethnicTags) {
		partyTops = itemsWithAnyTag(p.topsAll, ethnicTags)
		partyBottoms = itemsWithAnyTag(p.bottomsAll, ethnicTags)
	}

	if len(c.req.RequestedColors) == 0 {
		p.tops = partyTops
		p.bottoms = partyBottoms
		c.logger.Debug("party narrowing applied", "tops", len(p.tops), "bottoms", len(p.bottoms))
		return nil, false
	}

	// Colors requested: keep the color-matching subsets when non-empty.
	if matched := colorMatched(partyTops, c.req.RequestedColors, c.req.ForbiddenColors); len(matched) > 0 {
		partyTops = matched
	}
	if matched := colorMatched(partyBottoms, c.req.RequestedColors, c.req.ForbiddenColors); len(matched) > 0 {
		partyBottoms = matched
	}

	if c.profile.Gender == wardrobe.GenderFemale {
		if outfits, ok := c.partyOnePieces(p, partyTops, partyBottoms); ok {
			return outfits, true
		}
	}

	var outfits []Outfit
	if len(partyTops) > 0 && len(partyBottoms) > 0 {
		top := partyTops[0]
		usedBottoms := newStringSet()
		for _, b := range partyBottoms {
			if usedBottoms.has(b.Name) {
				continue
			}
			outfits = append(outfits, c.partyCombo(top, b, p.layers))
			usedBottoms.add(b.Name)
			if len(outfits) == 3 {
				break
			}
		}
		for len(outfits) < 3 {
			b := partyBottoms[c.rng.Intn(len(partyBottoms))]
			outfits = append(outfits, c.partyCombo(top, b, p.layers))
		}
	}

	if len(outfits) == 0 && c.styles.intersects(ethnicTags) {
		fallbackTops := itemsWithAnyTag(p.topsAll, ethnicTags)
		fallbackBottoms := itemsWithAnyTag(p.bottomsAll, ethnicTags)
		for i := 0; i < len(fallbackTops) && i < len(fallbackBottoms) && len(outfits) < 3; i++ {
			outfits = append(outfits, Outfit{
				Type:  OutfitMultiPiece,
				Items: []wardrobe.Item{fallbackTops[i], fallbackBottoms[i]},
			})
		}
	}

	if len(outfits) == 0 {
		// Degenerate case: nothing party-like, formal or ethnic exists.
		// The assembler replaces these when any combination is possible.
		outfits = []Outfit{{Type: OutfitNone}, {Type: OutfitNone}, {Type: OutfitNone}}
	}
	return outfits, true
}

// partyOnePieces prefers color-matched partywear one-pieces, filling any
// remaining slots with the selected top against cycled bottoms.
func (c *composer) partyOnePieces(p *pools, partyTops, partyBottoms []wardrobe.Item) ([]Outfit, bool) {
	partyPieces := itemsWithAnyTag(p.onePieces, partyPriorityTags)
	matched := colorMatched(partyPieces, c.req.RequestedColors, c.req.ForbiddenColors)
	if len(matched) == 0 {
		return nil, false
	}

	var outfits []Outfit
	for i := 0; i < len(matched) && i < 3; i++ {
		outfits = append(outfits, Outfit{Type: OutfitOnePiece, Items: []wardrobe.Item{matched[i]}})
	}
	if needed := 3 - len(outfits); needed > 0 && len(partyTops) > 0 && len(partyBottoms) > 0 {
		top := partyTops[0]
		for i := 0; i < needed; i++ {
			bottom := partyBottoms[i%len(partyBottoms)]
			outfits = append(outfits, Outfit{Type: OutfitMultiPiece, Items: []wardrobe.Item{top, bottom}})
		}
	}
	return outfits, true
}

func (c *composer) partyCombo(top, bottom wardrobe.Item, layers []wardrobe.Item) Outfit {
	items := []wardrobe.Item{top, bottom}
	if c.needsLayer && len(layers) > 0 {
		items = append(items, layers[c.rng.Intn(len(layers))])
	}
	return Outfit{Type: OutfitMultiPiece, Items: items}
}
