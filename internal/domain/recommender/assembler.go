package recommender

import (
	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// assemble post-processes the composer's provisional outfits into exactly
// three. Placeholder outfits are dropped and refilled; the fallback tiers
// only surrender to placeholders when no category holds a single item.
func (c *composer) assemble(provisional []Outfit, p pools) []Outfit {
	outfits := make([]Outfit, 0, 3)
	for _, o := range provisional {
		if o.Type == OutfitNone || len(o.Items) == 0 {
			continue
		}
		outfits = append(outfits, o)
		if len(outfits) == 3 {
			break
		}
	}
	if len(outfits) == 3 {
		return outfits
	}

	tops, bottoms := p.tops, p.bottoms
	if len(tops) == 0 {
		tops = c.withoutForbidden(p.topsAll)
	}
	if len(bottoms) == 0 {
		bottoms = c.withoutForbidden(p.bottomsAll)
	}
	// The swimwear strategy skips pool construction; rebuild from the
	// eligible catalog so the guarantee still holds.
	if len(tops) == 0 {
		tops = c.withoutForbidden(filterCategory(c.eligible, wardrobe.CategoryTopwear, c.profile.Gender))
	}
	if len(bottoms) == 0 {
		bottoms = c.withoutForbidden(filterCategory(c.eligible, wardrobe.CategoryBottomwear, c.profile.Gender))
	}

	// Tier 1: new (top, bottom) name pairs not yet emitted.
	usedPairs := newStringSet()
	for _, o := range outfits {
		var top, bottom string
		for _, it := range o.Items {
			switch it.Category {
			case wardrobe.CategoryTopwear:
				top = it.Name
			case wardrobe.CategoryBottomwear:
				bottom = it.Name
			}
		}
		if top != "" && bottom != "" {
			usedPairs.add(top + "\x00" + bottom)
		}
	}
	for _, t := range tops {
		if len(outfits) == 3 {
			break
		}
		for _, b := range bottoms {
			key := pairKey(t, b)
			if usedPairs.has(key) {
				continue
			}
			usedPairs.add(key)
			outfits = append(outfits, c.fallbackCombo(t, b, p.layers))
			if len(outfits) == 3 {
				break
			}
		}
	}

	// Tier 2: random pairing, duplicates allowed. Novelty is sacrificed to
	// keep the three-outfit guarantee.
	for len(outfits) < 3 && len(tops) > 0 && len(bottoms) > 0 {
		t := tops[c.rng.Intn(len(tops))]
		b := bottoms[c.rng.Intn(len(bottoms))]
		outfits = append(outfits, c.fallbackCombo(t, b, p.layers))
	}

	// Last resort before placeholders: single-item categories.
	if len(outfits) < 3 {
		if swim := c.withoutForbidden(filterCategory(c.eligible, wardrobe.CategorySwimwear, c.profile.Gender)); len(swim) > 0 {
			for i := 0; len(outfits) < 3; i++ {
				outfits = append(outfits, Outfit{Type: OutfitSwimwear, Items: []wardrobe.Item{swim[i%len(swim)]}})
			}
		} else {
			onePieces := p.onePieces
			if len(onePieces) == 0 && c.profile.Gender == wardrobe.GenderFemale {
				onePieces = c.withoutForbidden(filterCategory(c.eligible, wardrobe.CategoryOnePiece, wardrobe.GenderFemale))
			}
			for i := 0; len(outfits) < 3 && len(onePieces) > 0; i++ {
				outfits = append(outfits, Outfit{Type: OutfitOnePiece, Items: []wardrobe.Item{onePieces[i%len(onePieces)]}})
			}
		}
	}

	for len(outfits) < 3 {
		outfits = append(outfits, Outfit{Type: OutfitNone, Items: []wardrobe.Item{}})
	}
	return outfits
}

func (c *composer) fallbackCombo(top, bottom wardrobe.Item, layers []wardrobe.Item) Outfit {
	items := []wardrobe.Item{top, bottom}
	if c.needsLayer && len(layers) > 0 {
		items = append(items, layers[c.rng.Intn(len(layers))])
	}
	return Outfit{Type: OutfitMultiPiece, Items: items}
}
