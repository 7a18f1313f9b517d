package recommender

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
	apperrors "github.com/anvitha/outfit-advisor/pkg/errors"
)

type memoryCatalog struct {
	items []wardrobe.Item
}

func (c *memoryCatalog) List(_ context.Context) ([]wardrobe.Item, error) {
	out := make([]wardrobe.Item, len(c.items))
	copy(out, c.items)
	return out, nil
}

type failingCatalog struct{}

func (failingCatalog) List(_ context.Context) ([]wardrobe.Item, error) {
	return nil, errors.New("connection refused")
}

type memoryTrends struct {
	counts map[string]int64
}

func newMemoryTrends() *memoryTrends {
	return &memoryTrends{counts: make(map[string]int64)}
}

func (t *memoryTrends) RecordOccasion(_ context.Context, occasion string) error {
	t.counts[occasion]++
	return nil
}

func (t *memoryTrends) TopOccasions(_ context.Context, limit int) ([]TrendingOccasion, error) {
	out := make([]TrendingOccasion, 0, len(t.counts))
	for occ, n := range t.counts {
		out = append(out, TrendingOccasion{Occasion: occ, Count: n})
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func testCatalog() []wardrobe.Item {
	items := []wardrobe.Item{
		{Name: "white cotton shirt", Category: "topwear", Tags: []string{"formal", "office", "white"}},
		{Name: "blue oxford shirt", Category: "topwear", Tags: []string{"formal", "semi-formal", "blue"}},
		{Name: "black graphic tee", Category: "topwear", Tags: []string{"casual", "party", "black"}},
		{Name: "red blouse", Category: "topwear", Tags: []string{"party", "semi-formal", "red"}, Gender: "female"},
		{Name: "silk kurta", Category: "topwear", Tags: []string{"ethnic", "traditional", "festive"}},
		{Name: "running tee", Category: "topwear", Tags: []string{"sportswear", "gym", "breathable"}},
		{Name: "black formal trousers", Category: "bottomwear", Tags: []string{"formal", "office", "black"}},
		{Name: "navy chinos", Category: "bottomwear", Tags: []string{"semi-formal", "casual", "blue"}},
		{Name: "blue jeans", Category: "bottomwear", Tags: []string{"casual", "blue"}},
		{Name: "track pants", Category: "bottomwear", Tags: []string{"sportswear", "gym", "black"}},
		{Name: "cotton churidar", Category: "bottomwear", Tags: []string{"ethnic", "traditional", "white"}},
		{Name: "pleated skirt", Category: "bottomwear", Tags: []string{"casual", "party", "pink"}, Gender: "female"},
		{Name: "red cocktail dress", Category: "one-piece", Tags: []string{"party", "semi-formal", "red"}, Gender: "female"},
		{Name: "silk saree", Category: "one-piece", Tags: []string{"ethnic", "traditional", "red"}, Gender: "female"},
		{Name: "blue swim trunks", Category: "swimwear", Tags: []string{"swimming", "beach", "blue"}, Gender: "male"},
		{Name: "swim shorts", Category: "swimwear", Tags: []string{"swimming", "beach", "green"}},
		{Name: "denim jacket", Category: "layer", Tags: []string{"casual", "blue"}},
		{Name: "black blazer", Category: "layer", Tags: []string{"formal", "office", "black"}},
	}
	for i := range items {
		items[i].ApplyDefaults()
	}
	return items
}

// summerNoon keeps the derived context away from the winter layering rule.
var summerNoon = time.Date(2025, time.April, 10, 13, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, items []wardrobe.Item, at time.Time, seed int64) (*service, *memoryTrends) {
	t.Helper()
	trends := newMemoryTrends()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(Config{TrendingLimit: 10}, &memoryCatalog{items: items}, trends, logger).(*service)
	svc.now = func() time.Time { return at }
	svc.rng = rand.New(rand.NewSource(seed))
	return svc, trends
}

func TestRecommendAlwaysReturnsThreeOutfits(t *testing.T) {
	prompts := []string{
		"I have an interview tomorrow in blue, avoid black",
		"beach party in red",
		"office ethnic day",
		"gym session this evening",
		"going for a swim",
		"zzz nothing matches here",
		"picnic with the family, avoid cream",
	}
	for _, prompt := range prompts {
		for _, gender := range []string{"male", "female", "unisex"} {
			svc, _ := newTestService(t, testCatalog(), summerNoon, 7)
			result, err := svc.Recommend(context.Background(), Request{
				User:    "sam",
				Prompt:  prompt,
				Profile: Profile{AgeGroup: "adult", Gender: gender},
			})
			require.NoError(t, err, prompt)
			require.Len(t, result.Outfits, 3, "%s / %s", prompt, gender)
			for _, outfit := range result.Outfits {
				require.NotEqual(t, OutfitNone, outfit.Type, "%s / %s", prompt, gender)
				require.NotEmpty(t, outfit.Items, "%s / %s", prompt, gender)
				seen := map[string]bool{}
				for _, item := range outfit.Items {
					require.False(t, seen[item.Name], "duplicate item %q in one outfit (%s / %s)", item.Name, prompt, gender)
					seen[item.Name] = true
				}
			}
		}
	}
}

func TestRecommendForbiddenColorsExcluded(t *testing.T) {
	svc, _ := newTestService(t, testCatalog(), summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "interview in blue, avoid black",
		Profile: Profile{AgeGroup: "adult", Gender: "male"},
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)

	for _, outfit := range result.Outfits {
		for _, item := range outfit.Items {
			require.NotContains(t, item.Tags, "black", "forbidden color leaked via %q", item.Name)
		}
	}
}

func TestRecommendInterviewPairsRequestedColor(t *testing.T) {
	catalog := []wardrobe.Item{
		{Name: "blue formal shirt", Category: "topwear", Tags: []string{"formal", "blue"}},
		{Name: "blue formal trousers", Category: "bottomwear", Tags: []string{"formal", "blue"}},
		{Name: "black formal trousers", Category: "bottomwear", Tags: []string{"formal", "black"}},
	}
	for i := range catalog {
		catalog[i].ApplyDefaults()
	}

	svc, _ := newTestService(t, catalog, summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "formal interview in blue, avoid black",
		Profile: Profile{AgeGroup: "adult", Gender: "female"},
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)

	paired := false
	for _, outfit := range result.Outfits {
		require.NotEqual(t, OutfitNone, outfit.Type)
		var blueTop, blueBottom bool
		for _, item := range outfit.Items {
			require.NotContains(t, item.Tags, "black", "forbidden color leaked via %q", item.Name)
			if item.Category == wardrobe.CategoryTopwear && item.HasTag("blue") {
				blueTop = true
			}
			if item.Category == wardrobe.CategoryBottomwear && item.HasTag("blue") {
				blueBottom = true
			}
		}
		if blueTop && blueBottom {
			paired = true
		}
	}
	require.True(t, paired, "no outfit paired the requested color top and bottom")
}

func TestRecommendRequestedColorAppearsWhenAvailable(t *testing.T) {
	svc, _ := newTestService(t, testCatalog(), summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "party in red",
		Profile: Profile{AgeGroup: "adult", Gender: "female"},
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)

	red := false
	for _, outfit := range result.Outfits {
		for _, item := range outfit.Items {
			if item.HasTag("red") {
				red = true
			}
		}
	}
	require.True(t, red, "catalog holds red partywear but no outfit used it")
}

func TestRecommendSwimmingIsSwimwearOnly(t *testing.T) {
	svc, _ := newTestService(t, testCatalog(), summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "going swiming",
		Profile: Profile{AgeGroup: "adult", Gender: "male"},
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)

	for _, outfit := range result.Outfits {
		require.Equal(t, OutfitSwimwear, outfit.Type)
		require.Len(t, outfit.Items, 1)
		require.Equal(t, wardrobe.CategorySwimwear, outfit.Items[0].Category)
	}
}

func TestRecommendActiveOccasionPairsSportswear(t *testing.T) {
	svc, _ := newTestService(t, testCatalog(), summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "gym session",
		Profile: Profile{AgeGroup: "adult", Gender: "male"},
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)

	for _, outfit := range result.Outfits {
		require.Equal(t, OutfitMultiPiece, outfit.Type)
		for _, item := range outfit.Items {
			require.Contains(t, item.Tags, "sportswear")
		}
	}
}

func TestRecommendEthnicNarrowing(t *testing.T) {
	svc, _ := newTestService(t, testCatalog(), summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "ethnic day at college",
		Profile: Profile{AgeGroup: "adult", Gender: "male"},
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)

	for _, outfit := range result.Outfits {
		for _, item := range outfit.Items {
			hasEthnic := false
			for _, tag := range item.Tags {
				if tag == "ethnic" || tag == "traditional" {
					hasEthnic = true
					break
				}
			}
			require.True(t, hasEthnic, "non-ethnic item %q for ethnic day", item.Name)
		}
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	svc, _ := newTestService(t, nil, summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "party tonight",
		Profile: Profile{AgeGroup: "adult", Gender: "female"},
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)

	for _, outfit := range result.Outfits {
		require.Equal(t, OutfitNone, outfit.Type)
		require.Empty(t, outfit.Items)
	}
}

func TestRecommendDeterministicUnderSeed(t *testing.T) {
	run := func() Result {
		svc, _ := newTestService(t, testCatalog(), summerNoon, 42)
		result, err := svc.Recommend(context.Background(), Request{
			User:    "sam",
			Prompt:  "party tonight, feeling cold",
			Profile: Profile{AgeGroup: "adult", Gender: "female"},
		})
		require.NoError(t, err)
		return result
	}
	require.Equal(t, run(), run())
}

func TestRecommendWinterForcesLayer(t *testing.T) {
	januaryEvening := time.Date(2025, time.January, 10, 19, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, testCatalog(), januaryEvening, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "casual outing",
		Profile: Profile{AgeGroup: "adult", Gender: "male"},
	})
	require.NoError(t, err)
	require.Equal(t, "winter", result.Context.Season)
	require.Equal(t, "evening", result.Context.TimeOfDay)

	layered := false
	for _, outfit := range result.Outfits {
		for _, item := range outfit.Items {
			if item.Category == wardrobe.CategoryLayer {
				layered = true
			}
		}
	}
	require.True(t, layered, "winter recommendation carried no layer")
}

func TestRecommendContextDerivation(t *testing.T) {
	svc, _ := newTestService(t, testCatalog(), time.Date(2025, time.July, 2, 9, 0, 0, 0, time.UTC), 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "tuition",
		Profile: Profile{AgeGroup: "teen", Gender: "male"},
	})
	require.NoError(t, err)
	require.Equal(t, "morning", result.Context.TimeOfDay)
	require.Equal(t, "monsoon", result.Context.Season)
}

func TestRecommendRecordsTrends(t *testing.T) {
	svc, trends := newTestService(t, testCatalog(), summerNoon, 3)
	_, err := svc.Recommend(context.Background(), Request{
		User:    "sam",
		Prompt:  "party tonight",
		Profile: Profile{AgeGroup: "adult", Gender: "male"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), trends.counts["party"])

	top, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, top)
}

func TestRecommendCatalogError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(Config{}, failingCatalog{}, newMemoryTrends(), logger)
	_, err := svc.Recommend(context.Background(), Request{User: "sam", Prompt: "party"})
	require.True(t, apperrors.IsCode(err, "catalog_error"))

	_, err = svc.Wardrobe(context.Background())
	require.True(t, apperrors.IsCode(err, "catalog_error"))
}

func TestRecommendProfileDefaults(t *testing.T) {
	svc, _ := newTestService(t, testCatalog(), summerNoon, 3)
	result, err := svc.Recommend(context.Background(), Request{
		User:   "sam",
		Prompt: "office day",
	})
	require.NoError(t, err)
	require.Len(t, result.Outfits, 3)
}
