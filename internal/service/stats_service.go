package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
	"go.uber.org/zap"
)

// StatsService records link visits delivered by the stats consumer.
type StatsService struct {
	repo   StatsRepository
	logger *zap.Logger
}

// NewStatsService creates a StatsService.
func NewStatsService(repo StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

// Record stores one visit. A visit already stored under the same message
// key counts as success.
func (s *StatsService) Record(ctx context.Context, msg model.StatsMessage) error {
	if err := s.repo.InsertAccessLog(ctx, msg.AccessLog()); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			s.logger.Debug("access log already stored", zap.String("keys", msg.Keys))
			return nil
		}
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}
