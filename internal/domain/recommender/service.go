package recommender

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
	apperrors "github.com/anvitha/outfit-advisor/pkg/errors"
)

// Service exposes the outfit recommendation engine.
type Service interface {
	Recommend(ctx context.Context, req Request) (Result, error)
	Wardrobe(ctx context.Context) ([]wardrobe.Item, error)
	Trending(ctx context.Context) ([]TrendingOccasion, error)
}

// TrendStore counts resolved occasions across calls. Implementations may
// lose data; recording is best effort.
type TrendStore interface {
	RecordOccasion(ctx context.Context, occasion string) error
	TopOccasions(ctx context.Context, limit int) ([]TrendingOccasion, error)
}

// Config drives engine behavior.
type Config struct {
	TrendingLimit int
}

type service struct {
	cfg     Config
	catalog wardrobe.Repository
	trends  TrendStore
	logger  *slog.Logger
	now     func() time.Time
	rng     *rand.Rand
}

// NewService wires up the recommendation engine.
func NewService(cfg Config, catalog wardrobe.Repository, trends TrendStore, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		catalog: catalog,
		trends:  trends,
		logger:  logger.With("component", "recommender.service"),
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Recommend interprets the prompt against the profile and produces exactly
// three outfits. It never fails for "no outfits found"; only catalog access
// errors surface.
func (s *service) Recommend(ctx context.Context, req Request) (Result, error) {
	profile := normalizeProfile(req.Profile)

	items, err := s.catalog.List(ctx)
	if err != nil {
		return Result{}, apperrors.Wrap("catalog_error", "failed to load wardrobe catalog", err)
	}

	interp := InterpretPrompt(req.Prompt)
	envCtx := s.contextNow()
	// Winter forces layering regardless of what the prompt said.
	needsLayer := interp.NeedsLayer || envCtx.Season == "winter"

	styles := resolveStyles(interp.Occasions)
	eligible := eligibleForProfile(items, profile)

	c := &composer{
		eligible:   eligible,
		profile:    profile,
		req:        interp,
		styles:     styles,
		needsLayer: needsLayer,
		rng:        s.rng,
		logger:     s.logger,
	}
	provisional, p := c.compose()
	outfits := c.assemble(provisional, p)

	s.logger.Info("outfits recommended",
		"user", req.User,
		"occasions", interp.Occasions,
		"style_tags", styles.sorted(),
		"requested_colors", interp.RequestedColors,
		"forbidden_colors", interp.ForbiddenColors,
		"needs_layer", needsLayer,
		"eligible_items", len(eligible),
		"provisional", len(provisional),
	)

	s.recordTrends(ctx, interp.Occasions)

	return Result{
		User:     req.User,
		Occasion: strings.Join(interp.Occasions, ", "),
		Context:  envCtx,
		Outfits:  outfits,
	}, nil
}

func (s *service) Wardrobe(ctx context.Context) ([]wardrobe.Item, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap("catalog_error", "failed to load wardrobe catalog", err)
	}
	return items, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingOccasion, error) {
	limit := s.cfg.TrendingLimit
	if limit <= 0 {
		limit = 10
	}
	top, err := s.trends.TopOccasions(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap("trend_error", "failed to load trending occasions", err)
	}
	return top, nil
}

func (s *service) recordTrends(ctx context.Context, occasions []string) {
	for _, occ := range occasions {
		if err := s.trends.RecordOccasion(ctx, occ); err != nil {
			s.logger.Warn("failed to record occasion trend", "occasion", occ, "error", err)
			return
		}
	}
}

// contextNow derives the advisory wall-clock context.
func (s *service) contextNow() EnvContext {
	now := s.now()
	timeOfDay := "evening"
	switch {
	case now.Hour() < 12:
		timeOfDay = "morning"
	case now.Hour() < 17:
		timeOfDay = "afternoon"
	}
	season := "monsoon"
	switch now.Month() {
	case time.December, time.January, time.February:
		season = "winter"
	case time.March, time.April, time.May:
		season = "summer"
	}
	return EnvContext{TimeOfDay: timeOfDay, Season: season}
}

func normalizeProfile(p Profile) Profile {
	p.AgeGroup = strings.ToLower(strings.TrimSpace(p.AgeGroup))
	p.Gender = strings.ToLower(strings.TrimSpace(p.Gender))
	if p.AgeGroup == "" {
		p.AgeGroup = "adult"
	}
	if p.Gender == "" {
		p.Gender = wardrobe.GenderUnisex
	}
	return p
}
