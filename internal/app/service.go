// Package service runs champion selections for callers such as the CLI,
// adding run ids, logging and metrics around the pure selector.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okian/champions/internal/adapters/roster"
	"github.com/okian/champions/internal/domain/champion"
	"github.com/okian/champions/internal/domain/model"
	"github.com/okian/champions/internal/domain/types"
	"github.com/okian/champions/pkg/logger"
	"github.com/okian/champions/pkg/metrics"
)

// Report is the outcome of one selection run.
type Report struct {
	RunID     string
	Title     string
	Champions []types.Champion
	Stats     champion.Stats
}

// Service wraps the selector with observability.
type Service struct {
	logger  logger.Logger
	metrics *metrics.Manager
	newID   func() string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records to m instead of the global metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithIDGenerator replaces the run id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs a Service. Without WithLogger the global logger is used,
// which must have been initialised.
func New(opts ...Option) *Service {
	s := &Service{
		metrics: metrics.Default(),
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("selector")
	}
	return s
}

// Select runs the champion selection over entrants.
func (s *Service) Select(ctx context.Context, entrants []model.Entrant) Report {
	runID := s.newID()
	log := s.logger.With(logger.String("run_id", runID))

	start := time.Now()
	res := champion.Run(entrants)
	elapsed := time.Since(start)

	for _, e := range res.Eliminations {
		log.Debug(ctx, "candidate eliminated",
			logger.String("name", e.Candidate.Name),
			logger.Uint("rank", e.Candidate.Rank),
			logger.Uint("category", e.Candidate.Category),
			logger.String("by", e.By.Name),
			logger.Uint("by_rank", e.By.Rank),
			logger.Uint("by_category", e.By.Category),
		)
	}

	s.metrics.RecordSelection(metrics.Selection{
		Entrants:   res.Stats.Entrants,
		Categories: res.Stats.Categories,
		Draws:      res.Stats.Draws,
		Candidates: res.Stats.Candidates,
		Eliminated: res.Stats.Eliminated,
		Champions:  res.Stats.Champions,
		Duration:   elapsed,
	})

	log.Info(ctx, "selection finished",
		logger.Int("entrants", res.Stats.Entrants),
		logger.Int("categories", res.Stats.Categories),
		logger.Int("draws", res.Stats.Draws),
		logger.Int("eliminated", res.Stats.Eliminated),
		logger.Int("champions", res.Stats.Champions),
		logger.Any("elapsed", elapsed),
	)

	return Report{
		RunID:     runID,
		Champions: types.FromEntrants(res.Champions),
		Stats:     res.Stats,
	}
}

// SelectRoster loads the roster at path ("-" for stdin) and selects its
// champions.
func (s *Service) SelectRoster(ctx context.Context, path string) (Report, error) {
	r, err := roster.Load(ctx, path)
	if err != nil {
		s.metrics.RecordRosterLoadError(loadErrorReason(err))
		s.logger.Error(ctx, "failed to load roster", logger.String("path", path), logger.Error(err))
		return Report{}, fmt.Errorf("load roster %s: %w", path, err)
	}
	s.logger.Debug(ctx, "roster loaded",
		logger.String("path", path),
		logger.String("title", r.Title),
		logger.Int("entrants", len(r.Entrants)),
	)

	rep := s.Select(ctx, r.Entrants)
	rep.Title = r.Title
	return rep, nil
}

// Render writes rep to w in format.
func (s *Service) Render(ctx context.Context, w io.Writer, format string, rep Report) error {
	n, err := roster.Encode(w, format, roster.Report{
		RunID:     rep.RunID,
		Title:     rep.Title,
		Champions: rep.Champions,
	})
	s.metrics.RecordOutputBytes(n)
	if err != nil {
		s.logger.Error(ctx, "failed to render champions", logger.String("format", format), logger.Error(err))
		return err
	}
	return nil
}

func loadErrorReason(err error) string {
	switch {
	case errors.Is(err, roster.ErrOpen):
		return "open"
	case errors.Is(err, roster.ErrDecode):
		return "decode"
	case errors.Is(err, roster.ErrInvalidRoster):
		return "validate"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}
