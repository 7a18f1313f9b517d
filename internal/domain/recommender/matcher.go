package recommender

import (
	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
)

// eligibleForProfile keeps items whose audience covers the profile.
func eligibleForProfile(items []wardrobe.Item, profile Profile) []wardrobe.Item {
	out := make([]wardrobe.Item, 0, len(items))
	for _, item := range items {
		if item.AgeGroup != wardrobe.AgeGroupAll && item.AgeGroup != profile.AgeGroup {
			continue
		}
		if item.Gender != wardrobe.GenderUnisex && item.Gender != profile.Gender {
			continue
		}
		out = append(out, item)
	}
	return out
}

// filterCategory partitions items by category, optionally restricting to a
// gender (unisex always passes). An empty gender skips the gender check.
func filterCategory(items []wardrobe.Item, category, gender string) []wardrobe.Item {
	var out []wardrobe.Item
	for _, item := range items {
		if item.Category != category {
			continue
		}
		if gender != "" && item.Gender != gender && item.Gender != wardrobe.GenderUnisex {
			continue
		}
		out = append(out, item)
	}
	return out
}

// colorMatches is the accept/reject predicate over an item's color tags.
// Forbidden colors always win: an item near any forbidden color is rejected
// even when it would also satisfy a requested color.
func colorMatches(tags []string, requested, forbidden []string) bool {
	var colorTags []string
	for _, tag := range tags {
		if colorVocabulary.has(tag) {
			colorTags = append(colorTags, tag)
		}
	}
	for _, tag := range colorTags {
		for _, fc := range forbidden {
			if colorsClose(tag, fc) {
				return false
			}
		}
	}
	if len(requested) > 0 {
		for _, tag := range colorTags {
			for _, rc := range requested {
				if colorsClose(tag, rc) {
					return true
				}
			}
		}
		return false
	}
	return true
}

// colorMatched returns the color-preferred subset: items passing the
// predicate when colors were requested, nothing otherwise.
func colorMatched(items []wardrobe.Item, requested, forbidden []string) []wardrobe.Item {
	if len(requested) == 0 {
		return nil
	}
	var out []wardrobe.Item
	for _, item := range items {
		if colorMatches(item.Tags, requested, forbidden) {
			out = append(out, item)
		}
	}
	return out
}

// itemsWithAnyTag keeps items whose tag set intersects the given set.
func itemsWithAnyTag(items []wardrobe.Item, set stringSet) []wardrobe.Item {
	var out []wardrobe.Item
	for _, item := range items {
		if item.HasAnyTag(set) {
			out = append(out, item)
		}
	}
	return out
}
