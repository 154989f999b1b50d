package repository

import (
	"context"
	"strconv"

	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository/dao"
)

//go:generate mockgen -source=./activity.go -package=repomocks -destination=mocks/activity.mock.go ActivityRepository
type ActivityRepository interface {
	// Archive 归档处理完的事件，只追加
	Archive(ctx context.Context, evt domain.ActivityEvent) error
}

type activityRepository struct {
	dao dao.ActivityDAO
}

func NewActivityRepository(d dao.ActivityDAO) ActivityRepository {
	return &activityRepository{
		dao: d,
	}
}

func (repo *activityRepository) Archive(ctx context.Context, evt domain.ActivityEvent) error {
	direction := ""
	if evt.Direction != nil {
		direction = strconv.FormatInt(*evt.Direction, 10)
	}
	return repo.dao.Insert(ctx, dao.ActivityRecord{
		OccurredAt: evt.OccurredAt,
		Type:       int(evt.Type),
		UserID:     evt.ActorID,
		ObjectID:   evt.TargetID,
		Direction:  direction,
	})
}
