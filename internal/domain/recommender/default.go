package recommender

import (
	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

var onePieceExcludedStyles = newStringSet(
	"ritual", "ceremony", "ethnic", "traditional",
	"casual", "comfortable", "picnic", "shopping",
)

// defaultState carries the color-preferred subsets the default strategy and
// its pair generator share.
type defaultState struct {
	p            pools
	topsColor    []wardrobe.Item
	bottomsColor []wardrobe.Item
	layersColor  []wardrobe.Item
}

// composeDefault handles every occasion no specialized strategy claimed.
func (c *composer) composeDefault(p pools) []Outfit {
	d := &defaultState{
		p:            p,
		topsColor:    colorMatched(p.tops, c.req.RequestedColors, c.req.ForbiddenColors),
		bottomsColor: colorMatched(p.bottoms, c.req.RequestedColors, c.req.ForbiddenColors),
		layersColor:  colorMatched(p.layers, c.req.RequestedColors, c.req.ForbiddenColors),
	}
	onePiecesColor := colorMatched(p.onePieces, c.req.RequestedColors, c.req.ForbiddenColors)

	var outfits []Outfit
	used := newStringSet()

	if c.wantsOnePiece(p) {
		choices := p.onePieces
		if len(onePiecesColor) > 0 {
			choices = onePiecesColor
		}
		op := choices[c.rng.Intn(len(choices))]
		items := []wardrobe.Item{op}
		used.add(op.Name)
		if c.needsLayer && len(p.layers) > 0 {
			if lyr, ok := c.pickLayer(d, used); ok {
				items = append(items, lyr)
				used.add(lyr.Name)
			}
		}
		outfits = append(outfits, Outfit{Type: OutfitOnePiece, Items: items})
	}

	outfits = c.addLayeredCombos(d, outfits)
	outfits = c.addOpportunisticSwimwear(outfits, used)

	if needed := 3 - len(outfits); needed > 0 {
		outfits = append(outfits, c.makeTopBottomOutfits(d, needed, true)...)
	}
	if needed := 3 - len(outfits); needed > 0 {
		outfits = append(outfits, c.makeTopBottomOutfits(d, needed, false)...)
	}
	return outfits
}

// wantsOnePiece gates the single one-piece outfit: females only, never for
// strictly formal occasions, and never when ethnic or casual styles apply.
func (c *composer) wantsOnePiece(p pools) bool {
	if c.profile.Gender != wardrobe.GenderFemale || len(p.onePieces) == 0 {
		return false
	}
	allFormal := true
	for _, occ := range c.req.Occasions {
		if !strictFormalOccasions.has(occ) {
			allFormal = false
			break
		}
	}
	if allFormal {
		return false
	}
	return !c.styles.intersects(onePieceExcludedStyles)
}

// addLayeredCombos emits up to two top+bottom+layer outfits from shuffled
// pairs when layering is requested, skipping duplicates of prior outfits.
func (c *composer) addLayeredCombos(d *defaultState, outfits []Outfit) []Outfit {
	if !c.needsLayer || len(d.p.tops) == 0 || len(d.p.bottoms) == 0 || len(d.p.layers) == 0 {
		return outfits
	}
	type pair struct{ top, bottom wardrobe.Item }
	var pairs []pair
	for _, t := range d.p.tops {
		for _, b := range d.p.bottoms {
			pairs = append(pairs, pair{t, b})
		}
	}
	c.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	added := 0
	for _, pr := range pairs {
		if added >= 2 {
			break
		}
		items := []wardrobe.Item{pr.top, pr.bottom}
		if lyr, ok := c.pickLayer(d, newStringSet(pr.top.Name, pr.bottom.Name)); ok {
			items = append(items, lyr)
		}
		if containsSameItems(outfits, items) {
			continue
		}
		outfits = append(outfits, Outfit{Type: OutfitMultiPiece, Items: items})
		added++
	}
	return outfits
}

// addOpportunisticSwimwear covers wardrobes where swimwear carries tags for
// non-swimming occasions too.
func (c *composer) addOpportunisticSwimwear(outfits []Outfit, used stringSet) []Outfit {
	styled := itemsWithAnyTag(c.eligible, c.styles)
	for _, sw := range filterCategory(styled, wardrobe.CategorySwimwear, "") {
		if len(outfits) >= 3 {
			break
		}
		if used.has(sw.Name) {
			continue
		}
		outfits = append(outfits, Outfit{Type: OutfitSwimwear, Items: []wardrobe.Item{sw}})
		used.add(sw.Name)
	}
	return outfits
}

// pickLayer chooses a layer item not already in the outfit, preferring
// color-matched layers and, among those, layers that fit the style tags.
func (c *composer) pickLayer(d *defaultState, exclude stringSet) (wardrobe.Item, bool) {
	choices := d.p.layers
	if len(d.layersColor) > 0 {
		choices = d.layersColor
	}
	var avail []wardrobe.Item
	for _, l := range choices {
		if !exclude.has(l.Name) {
			avail = append(avail, l)
		}
	}
	if len(avail) == 0 {
		return wardrobe.Item{}, false
	}
	styled := itemsWithAnyTag(avail, c.styles)
	if len(styled) > 0 {
		avail = styled
	}
	return avail[c.rng.Intn(len(avail))], true
}

// makeTopBottomOutfits is the tiered pair generator feeding the default
// strategy: color-preferred pairs, the single-color-top special case, the
// fresh-pair pass when no colors were requested, and finally the
// color-avoidance pass used as the non-preferred second tier.
func (c *composer) makeTopBottomOutfits(d *defaultState, n int, preferColor bool) []Outfit {
	var combos []Outfit
	usedBottoms := newStringSet()
	usedPairs := newStringSet()
	colors := c.req.RequestedColors

	addCombo := func(top, bottom wardrobe.Item) {
		items := []wardrobe.Item{top, bottom}
		if c.needsLayer {
			if lyr, ok := c.pickLayer(d, newStringSet(top.Name, bottom.Name)); ok {
				items = append(items, lyr)
			}
		}
		combos = append(combos, Outfit{Type: OutfitMultiPiece, Items: items})
	}

	if preferColor && (len(d.topsColor) > 0 || len(d.bottomsColor) > 0) {
		for _, t := range d.topsColor {
			for _, b := range d.p.bottoms {
				key := pairKey(t, b)
				if usedBottoms.has(b.Name) || usedPairs.has(key) {
					continue
				}
				if !colorMatches(t.Tags, colors, nil) && !colorMatches(b.Tags, colors, nil) {
					continue
				}
				usedBottoms.add(b.Name)
				usedPairs.add(key)
				addCombo(t, b)
				if len(combos) >= n {
					return combos
				}
			}
		}
		for _, b := range d.bottomsColor {
			if usedBottoms.has(b.Name) {
				continue
			}
			for _, t := range d.p.tops {
				key := pairKey(t, b)
				if usedPairs.has(key) {
					continue
				}
				if !colorMatches(t.Tags, colors, nil) && !colorMatches(b.Tags, colors, nil) {
					continue
				}
				usedBottoms.add(b.Name)
				usedPairs.add(key)
				addCombo(t, b)
				if len(combos) >= n {
					return combos
				}
			}
		}
	}

	if len(colors) > 0 && len(d.topsColor) == 1 {
		top := d.topsColor[0]
		bottomUsed := newStringSet()
		for _, b := range append(append([]wardrobe.Item{}, d.bottomsColor...), d.p.bottoms...) {
			if bottomUsed.has(b.Name) {
				continue
			}
			key := pairKey(top, b)
			if usedPairs.has(key) {
				continue
			}
			usedPairs.add(key)
			bottomUsed.add(b.Name)
			addCombo(top, b)
			if len(combos) >= n-1 {
				break
			}
		}
		// One non-color pair rounds out the set so results are not all
		// built around the single matching top.
		for _, t := range d.p.tops {
			for _, b := range d.p.bottoms {
				key := pairKey(t, b)
				if usedPairs.has(key) || t.Name == top.Name {
					continue
				}
				if colorMatches(t.Tags, colors, nil) {
					continue
				}
				addCombo(t, b)
				return capOutfits(combos, n)
			}
		}
		return capOutfits(combos, n)
	}

	if len(colors) == 0 {
		usedTops := newStringSet()
		freshBottoms := newStringSet()
		for _, t := range d.p.tops {
			for _, b := range d.p.bottoms {
				key := pairKey(t, b)
				if usedTops.has(t.Name) || freshBottoms.has(b.Name) || usedPairs.has(key) {
					continue
				}
				usedTops.add(t.Name)
				freshBottoms.add(b.Name)
				usedPairs.add(key)
				addCombo(t, b)
				if len(combos) >= n {
					return combos
				}
			}
		}
		for _, t := range d.p.tops {
			for _, b := range d.p.bottoms {
				key := pairKey(t, b)
				if usedPairs.has(key) {
					continue
				}
				usedPairs.add(key)
				addCombo(t, b)
				if len(combos) >= n {
					return combos
				}
			}
		}
		return combos
	}

	// Color-avoidance pass: exclude any pair touching a requested color.
	for _, t := range d.p.tops {
		for _, b := range d.p.bottoms {
			key := pairKey(t, b)
			if usedBottoms.has(b.Name) || usedPairs.has(key) {
				continue
			}
			if colorMatches(t.Tags, colors, nil) || colorMatches(b.Tags, colors, nil) {
				continue
			}
			usedBottoms.add(b.Name)
			usedPairs.add(key)
			addCombo(t, b)
			if len(combos) >= n {
				return combos
			}
		}
	}
	return combos
}

func pairKey(top, bottom wardrobe.Item) string {
	return top.Name + "\x00" + bottom.Name
}

func capOutfits(outfits []Outfit, n int) []Outfit {
	if len(outfits) > n {
		return outfits[:n]
	}
	return outfits
}

// containsSameItems reports whether any existing outfit uses exactly the
// same item-name set.
func containsSameItems(outfits []Outfit, items []wardrobe.Item) bool {
	names := newStringSet()
	for _, it := range items {
		names.add(it.Name)
	}
	for _, o := range outfits {
		if len(o.Items) != len(names) {
			continue
		}
		same := true
		for _, it := range o.Items {
			if !names.has(it.Name) {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
