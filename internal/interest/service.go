package interest

import (
	"context"
	"log/slog"

	"github.com/deaduz/eduadmin/internal/cache"
	"github.com/deaduz/eduadmin/internal/domain"
)

// Service orchestrates interest repository + cache operations. The
// catalog lives under two keys: the full admin list and the
// server-filtered active projection. Any mutation can move an interest
// between the two views, so every command stales both.
type Service struct {
	repo   domain.InterestRepository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService creates a new interest service.
func NewService(repo domain.InterestRepository, c *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: c, logger: logger}
}

// Interests returns the full catalog, active or not.
func (s *Service) Interests(ctx context.Context) ([]domain.Interest, error) {
	return cache.Load(ctx, s.cache, cache.InterestsKey(), func(ctx context.Context) ([]domain.Interest, error) {
		return s.repo.ListInterests(ctx)
	})
}

// ActiveInterests returns the user-visible active subset.
func (s *Service) ActiveInterests(ctx context.Context) ([]domain.Interest, error) {
	return cache.Load(ctx, s.cache, cache.ActiveInterestsKey(), func(ctx context.Context) ([]domain.Interest, error) {
		return s.repo.ListActiveInterests(ctx)
	})
}

// Interest returns a single interest by id.
func (s *Service) Interest(ctx context.Context, id string) (*domain.Interest, error) {
	return s.repo.GetInterest(ctx, id)
}

// CreateInterest creates an interest.
func (s *Service) CreateInterest(ctx context.Context, payload domain.CreateInterest) (*domain.Interest, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	in, err := s.repo.CreateInterest(ctx, payload)
	if err != nil {
		s.logger.Error("create interest failed", "name", payload.Name, "error", err)
		return nil, err
	}
	s.invalidate()
	s.logger.Debug("interest created", "id", in.ID, "name", in.Name)
	return in, nil
}

// UpdateInterest applies a partial update to an interest. Toggling
// IsActive is the common case.
func (s *Service) UpdateInterest(ctx context.Context, id string, payload domain.UpdateInterest) (*domain.Interest, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	in, err := s.repo.UpdateInterest(ctx, id, payload)
	if err != nil {
		s.logger.Error("update interest failed", "id", id, "error", err)
		return nil, err
	}
	s.invalidate()
	return in, nil
}

// DeleteInterest deletes an interest.
func (s *Service) DeleteInterest(ctx context.Context, id string) error {
	if err := s.repo.DeleteInterest(ctx, id); err != nil {
		s.logger.Error("delete interest failed", "id", id, "error", err)
		return err
	}
	s.invalidate()
	s.logger.Debug("interest deleted", "id", id)
	return nil
}

func (s *Service) invalidate() {
	s.cache.Invalidate(cache.KindInterests, cache.Scope{})
	s.cache.Invalidate(cache.KindActiveInterests, cache.Scope{})
}
