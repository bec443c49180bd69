package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/alexanderramin/shiftpace/internal/repository"
)

type historyService struct {
	snapshots repository.SnapshotRepo
}

func NewHistoryService(snapshots repository.SnapshotRepo) HistoryService {
	return &historyService{snapshots: snapshots}
}

func (s *historyService) History(ctx context.Context, since time.Time) ([]*domain.PaceSnapshot, error) {
	snaps, err := s.snapshots.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("loading pace history: %w", err)
	}
	return snaps, nil
}
