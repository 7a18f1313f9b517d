package recommender

import (
	"regexp"
	"sort"
	"strings"
)

var (
	requestedColorPattern = regexp.MustCompile(`\b(?:in|with|wearing|colour|color|shade of)\s+(\w+)`)
	forbiddenColorPattern = regexp.MustCompile(`\b(?:avoid|not|no|don't want|skip)\s+(\w+)`)
	swimVariantPattern    = regexp.MustCompile(`\b(?:swiming|swim)\b`)
	occasionPattern       = buildOccasionPattern()
)

// nearWhite maps near-white synonyms onto the canonical forbidden color.
var nearWhite = map[string]string{
	"cream":    "white",
	"ivory":    "white",
	"beige":    "white",
	"offwhite": "white",
}

var officeEthnicPhrases = []string{
	"office ethnic", "office traditional", "office cultural",
	"office ethnic day", "office traditional day", "office cultural day",
}

var ethnicWords = []string{"ethnic", "traditional", "cultural"}

var outingWords = []string{"outing", "walk", "park", "shopping", "picnic"}

// buildOccasionPattern compiles a whole-word alternation over every
// occasion key, longest keys first so multi-word occasions win over their
// single-word prefixes.
func buildOccasionPattern() *regexp.Regexp {
	keys := make([]string, 0, len(occasionStyles))
	for k := range occasionStyles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
}

// InterpretPrompt turns free text into structured requirements. The
// returned occasion set is never empty; sets come back deduplicated and
// sorted so the result is stable for a given prompt.
func InterpretPrompt(prompt string) Requirements {
	prompt = strings.ToLower(prompt)

	colors := newStringSet()
	for _, m := range requestedColorPattern.FindAllStringSubmatch(prompt, -1) {
		colors.add(m[1])
	}

	avoid := newStringSet()
	for _, m := range forbiddenColorPattern.FindAllStringSubmatch(prompt, -1) {
		word := m[1]
		if canonical, ok := nearWhite[word]; ok {
			word = canonical
		}
		avoid.add(word)
	}

	prompt = swimVariantPattern.ReplaceAllString(prompt, "swimming")

	forceEthnic := containsAny(prompt, officeEthnicPhrases) || containsAny(prompt, ethnicWords)

	occasions := newStringSet()
	for _, m := range occasionPattern.FindAllString(prompt, -1) {
		occasions.add(m)
	}
	// Substring pass covers multi-word keys the word-boundary regex missed.
	for key := range occasionStyles {
		if strings.Contains(prompt, key) {
			occasions.add(key)
		}
	}

	expanded := make(stringSet, len(occasions))
	for occ := range occasions {
		expanded.add(occ)
	}
	for canonical, aliases := range occasionSynonyms {
		for _, alias := range aliases {
			if strings.Contains(prompt, alias) {
				expanded.add(canonical)
			}
		}
		for occ := range occasions {
			for _, alias := range aliases {
				if occ == alias {
					expanded.add(canonical)
				}
			}
		}
	}

	// Ethnic or traditional intent overrides everything else.
	if forceEthnic {
		expanded.add("ethnic day")
		expanded.add("ethnic")
		expanded.add("traditional")
	}

	if len(expanded) == 0 {
		if containsAny(prompt, outingWords) {
			expanded.add("casual")
		} else {
			expanded.add("general")
		}
	}

	return Requirements{
		RequestedColors: colors.sorted(),
		ForbiddenColors: avoid.sorted(),
		Occasions:       expanded.sorted(),
		NeedsLayer:      strings.Contains(prompt, "layer") || strings.Contains(prompt, "cold"),
	}
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
