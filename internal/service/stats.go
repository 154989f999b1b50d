package service

import (
	"context"
	"errors"
	"time"

	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository"
	"github.com/eweware/HeardActivityProcessor/pkg/logger"
)

//go:generate mockgen -source=./stats.go -package=svcmocks -destination=mocks/stats.mock.go StatsService
type StatsService interface {
	// ApplyActivity 把一个事件摊到各个统计维度上。
	// digest 传 DigestNone 表示这类行为不通知内容归属方。
	ApplyActivity(ctx context.Context, evt domain.ActivityEvent, c domain.Counter, digest domain.DigestCounter) error
	RecordLogin(ctx context.Context, evt domain.ActivityEvent) error
	ResetWhatsNew(ctx context.Context, userID string) error
}

type statsService struct {
	repo         repository.StatsRepository
	whatsNewRepo repository.WhatsNewRepository
	contentRepo  repository.ContentRepository
	l            logger.LoggerV1
}

func NewStatsService(repo repository.StatsRepository,
	whatsNewRepo repository.WhatsNewRepository,
	contentRepo repository.ContentRepository,
	l logger.LoggerV1) StatsService {
	return &statsService{
		repo:         repo,
		whatsNewRepo: whatsNewRepo,
		contentRepo:  contentRepo,
		l:            l,
	}
}

// ApplyActivity 五到八次独立的单文档 upsert，没有跨文档事务。
// 每一步都只加不减，失败重投最多把已经成功的步骤多加一次，
// 不会把数据改坏，所以错误直接往上抛，让消息留在队列里重投。
func (s *statsService) ApplyActivity(ctx context.Context, evt domain.ActivityEvent,
	c domain.Counter, digest domain.DigestCounter) error {
	b := domain.BucketOf(evt.OccurredAt)
	err := s.repo.IncrContentStat(ctx, evt.TargetID, b, c)
	if err != nil {
		return err
	}
	err = s.repo.IncrUserStat(ctx, evt.ActorID, b, c)
	if err != nil {
		return err
	}
	err = s.repo.IncrUserContentStat(ctx, evt.TargetID, evt.ActorID, b, c)
	if err != nil {
		return err
	}

	own, err := s.contentRepo.ResolveOwnership(ctx, evt.TargetID)
	switch {
	case err == nil:
		err = s.repo.IncrOwnedStat(ctx, own.OwnerID, b, c)
		if err != nil {
			return err
		}
		if digest != domain.DigestNone {
			err = s.whatsNewRepo.Bump(ctx, own.OwnerID, digest, time.Now())
			if err != nil {
				return err
			}
		}
		err = s.repo.IncrGroupStat(ctx, own.GroupID, b, c)
		if err != nil {
			return err
		}
	case errors.Is(err, repository.ErrContentNotFound):
		// 内容可能已经删了，归属方相关的三步跳过，
		// 剩下的维度照常记，不能因为一个失效引用把全局统计也丢了
		s.l.Warn("内容归属解析不到，跳过归属方统计",
			logger.String("contentId", evt.TargetID))
	default:
		return err
	}

	return s.repo.IncrSystemStat(ctx, b, c)
}

func (s *statsService) RecordLogin(ctx context.Context, evt domain.ActivityEvent) error {
	if evt.Anonymous() {
		return nil
	}
	err := s.contentRepo.SetLastLogin(ctx, evt.ActorID, evt.OccurredAt)
	if err != nil {
		return err
	}
	return s.repo.IncrSystemLogin(ctx, domain.BucketOf(evt.OccurredAt))
}

func (s *statsService) ResetWhatsNew(ctx context.Context, userID string) error {
	if userID == "" || userID == domain.AnonymousUserID {
		// 匿名用户没有摘要可言
		return nil
	}
	return s.whatsNewRepo.Reset(ctx, userID, time.Now())
}
