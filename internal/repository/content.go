package repository

import (
	"context"
	"errors"
	"time"

	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository/dao"
)

// ErrContentNotFound 内容已经不在登记表里了，调用方自己决定跳过什么
var ErrContentNotFound = errors.New("内容不存在")

//go:generate mockgen -source=./content.go -package=repomocks -destination=mocks/content.mock.go ContentRepository
type ContentRepository interface {
	ResolveOwnership(ctx context.Context, contentID string) (domain.Ownership, error)
	SetLastLogin(ctx context.Context, userID string, t time.Time) error
}

type contentRepository struct {
	dao dao.ContentDAO
}

func NewContentRepository(d dao.ContentDAO) ContentRepository {
	return &contentRepository{
		dao: d,
	}
}

func (repo *contentRepository) ResolveOwnership(ctx context.Context, contentID string) (domain.Ownership, error) {
	res, err := repo.dao.FindOwnership(ctx, contentID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Ownership{}, ErrContentNotFound
	}
	if err != nil {
		return domain.Ownership{}, err
	}
	return domain.Ownership{
		OwnerID: res.OwnerID,
		GroupID: res.GroupID,
	}, nil
}

func (repo *contentRepository) SetLastLogin(ctx context.Context, userID string, t time.Time) error {
	return repo.dao.UpdateLastLogin(ctx, userID, t)
}
