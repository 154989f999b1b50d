package repository

import (
	"context"
	"fmt"

	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository/dao"
)

//go:generate mockgen -source=./stats.go -package=repomocks -destination=mocks/stats.mock.go StatsRepository
type StatsRepository interface {
	IncrContentStat(ctx context.Context, contentID string, b domain.DateBucket, c domain.Counter) error
	IncrUserStat(ctx context.Context, userID string, b domain.DateBucket, c domain.Counter) error
	IncrOwnedStat(ctx context.Context, ownerID string, b domain.DateBucket, c domain.Counter) error
	IncrUserContentStat(ctx context.Context, contentID string, userID string, b domain.DateBucket, c domain.Counter) error
	IncrGroupStat(ctx context.Context, groupID string, b domain.DateBucket, c domain.Counter) error
	IncrSystemStat(ctx context.Context, b domain.DateBucket, c domain.Counter) error
	// IncrSystemLogin 登录数只有全局维度有
	IncrSystemLogin(ctx context.Context, b domain.DateBucket) error
}

var counterFields = map[domain.Counter]string{
	domain.CounterOpen:            dao.FieldOpenCount,
	domain.CounterComment:         dao.FieldCommentCount,
	domain.CounterView:            dao.FieldViewCount,
	domain.CounterUpVote:          dao.FieldUpVoteCount,
	domain.CounterDownVote:        dao.FieldDownVoteCount,
	domain.CounterCommentUpVote:   dao.FieldCommentUpVoteCount,
	domain.CounterCommentDownVote: dao.FieldCommentDownVoteCount,
	domain.CounterPost:            dao.FieldPostCount,
}

type statsRepository struct {
	dao dao.StatsDAO
}

func NewStatsRepository(d dao.StatsDAO) StatsRepository {
	return &statsRepository{
		dao: d,
	}
}

func (repo *statsRepository) IncrContentStat(ctx context.Context, contentID string, b domain.DateBucket, c domain.Counter) error {
	field, err := repo.field(c)
	if err != nil {
		return err
	}
	return repo.dao.IncrContentStat(ctx, contentID, repo.toKey(b), field)
}

func (repo *statsRepository) IncrUserStat(ctx context.Context, userID string, b domain.DateBucket, c domain.Counter) error {
	field, err := repo.field(c)
	if err != nil {
		return err
	}
	return repo.dao.IncrUserStat(ctx, userID, repo.toKey(b), field)
}

func (repo *statsRepository) IncrOwnedStat(ctx context.Context, ownerID string, b domain.DateBucket, c domain.Counter) error {
	field, err := repo.field(c)
	if err != nil {
		return err
	}
	return repo.dao.IncrOwnedStat(ctx, ownerID, repo.toKey(b), field)
}

func (repo *statsRepository) IncrUserContentStat(ctx context.Context, contentID string, userID string, b domain.DateBucket, c domain.Counter) error {
	field, err := repo.field(c)
	if err != nil {
		return err
	}
	return repo.dao.IncrUserContentStat(ctx, contentID, userID, repo.toKey(b), field)
}

func (repo *statsRepository) IncrGroupStat(ctx context.Context, groupID string, b domain.DateBucket, c domain.Counter) error {
	field, err := repo.field(c)
	if err != nil {
		return err
	}
	return repo.dao.IncrGroupStat(ctx, groupID, repo.toKey(b), field)
}

func (repo *statsRepository) IncrSystemStat(ctx context.Context, b domain.DateBucket, c domain.Counter) error {
	field, err := repo.field(c)
	if err != nil {
		return err
	}
	return repo.dao.IncrSystemStat(ctx, repo.toKey(b), field)
}

func (repo *statsRepository) IncrSystemLogin(ctx context.Context, b domain.DateBucket) error {
	return repo.dao.IncrSystemStat(ctx, repo.toKey(b), dao.FieldLoginCount)
}

func (repo *statsRepository) field(c domain.Counter) (string, error) {
	field, ok := counterFields[c]
	if !ok {
		return "", fmt.Errorf("未知的计数器 %s", c)
	}
	return field, nil
}

func (repo *statsRepository) toKey(b domain.DateBucket) dao.DateKey {
	return dao.DateKey{
		Year:  b.Year,
		Month: b.Month,
		Day:   b.Day,
		Date:  b.Date,
	}
}
