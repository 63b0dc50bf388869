package content

import (
	"log/slog"

	"github.com/deaduz/eduadmin/internal/cache"
	"github.com/deaduz/eduadmin/internal/domain"
)

// DashboardSource provides the admin landing-page summary alongside
// the content hierarchy.
type DashboardSource interface {
	domain.ContentRepository
	domain.DashboardRepository
}

// Service orchestrates content repository + cache operations over the
// Course → Unit → Section → Lesson → QuizQuestion hierarchy. Reads go
// through the cache; mutations validate, call the backend, and then
// invalidate exactly the collections the mutation could have changed.
type Service struct {
	repo   DashboardSource
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService creates a new content service.
func NewService(repo DashboardSource, c *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: c, logger: logger}
}
