package services

import (
	"context"

	"github.com/akarpov87/social-feed/internal/logger"
)

// CountRepairer repairs denormalized aggregates from their edge tables.
type CountRepairer interface {
	RecountAllPosts(ctx context.Context) error
	RecountAllLikes(ctx context.Context) error
}

// MaintenanceService runs sampled background housekeeping. Failures are
// logged, never surfaced to the request that triggered them.
type MaintenanceService struct {
	repo CountRepairer
}

func NewMaintenanceService(repo CountRepairer) *MaintenanceService {
	return &MaintenanceService{repo: repo}
}

// RepairCounts recomputes every denormalized post and like count.
func (svc *MaintenanceService) RepairCounts(ctx context.Context) error {
	if err := svc.repo.RecountAllPosts(ctx); err != nil {
		logger.Log.Errorw("failed to repair post counts", "err", err)
		return err
	}
	if err := svc.repo.RecountAllLikes(ctx); err != nil {
		logger.Log.Errorw("failed to repair like counts", "err", err)
		return err
	}
	return nil
}
