package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository/dao"
)

//go:generate mockgen -source=./whatsnew.go -package=repomocks -destination=mocks/whatsnew.mock.go WhatsNewRepository
type WhatsNewRepository interface {
	// Bump 给归属方的摘要加一个计数，没有摘要就建一条
	Bump(ctx context.Context, userID string, c domain.DigestCounter, now time.Time) error
	// Reset 清零，用户还没有摘要就给他建一条全零的
	Reset(ctx context.Context, userID string, now time.Time) error
}

var digestFields = map[domain.DigestCounter]string{
	domain.DigestComments:         dao.FieldNewComments,
	domain.DigestOpens:            dao.FieldNewOpens,
	domain.DigestUpVotes:          dao.FieldNewUpVotes,
	domain.DigestDownVotes:        dao.FieldNewDownVotes,
	domain.DigestCommentUpVotes:   dao.FieldNewCommentUpVotes,
	domain.DigestCommentDownVotes: dao.FieldNewCommentDownVotes,
	domain.DigestViews:            dao.FieldNewViews,
}

type whatsNewRepository struct {
	dao dao.WhatsNewDAO
}

func NewWhatsNewRepository(d dao.WhatsNewDAO) WhatsNewRepository {
	return &whatsNewRepository{
		dao: d,
	}
}

func (repo *whatsNewRepository) Bump(ctx context.Context, userID string, c domain.DigestCounter, now time.Time) error {
	field, ok := digestFields[c]
	if !ok {
		return fmt.Errorf("未知的摘要计数器 %s", c)
	}
	return repo.dao.Bump(ctx, userID, field, now)
}

func (repo *whatsNewRepository) Reset(ctx context.Context, userID string, now time.Time) error {
	info, err := repo.dao.FindByUser(ctx, userID)
	switch {
	case err == nil:
		// 保留 _id 整篇替换，计数全部归零，文案重写
		return repo.dao.Save(ctx, dao.WhatsNewInfo{
			ID:         info.ID,
			UserID:     userID,
			LastUpdate: now,
			Message:    dao.DefaultMessage(now),
		})
	case errors.Is(err, dao.ErrRecordNotFound):
		return repo.dao.Insert(ctx, dao.WhatsNewInfo{
			UserID:     userID,
			LastUpdate: now,
			Message:    dao.DefaultMessage(now),
		})
	default:
		return err
	}
}
