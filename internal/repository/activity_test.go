package repository

import (
	"context"
	"testing"
	"time"

	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository/dao"
	daomocks "github.com/eweware/HeardActivityProcessor/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestActivityRepository_Archive(t *testing.T) {
	occurredAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	down := int64(-1)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) dao.ActivityDAO

		evt domain.ActivityEvent
	}{
		{
			name: "带方向的投票，方向转成字符串",
			mock: func(ctrl *gomock.Controller) dao.ActivityDAO {
				d := daomocks.NewMockActivityDAO(ctrl)
				d.EXPECT().Insert(gomock.Any(), dao.ActivityRecord{
					OccurredAt: occurredAt,
					Type:       int(domain.ActivityVotePost),
					UserID:     "user-7",
					ObjectID:   "content-42",
					Direction:  "-1",
				}).Return(nil)
				return d
			},
			evt: domain.ActivityEvent{
				OccurredAt: occurredAt,
				Type:       domain.ActivityVotePost,
				ActorID:    "user-7",
				TargetID:   "content-42",
				Direction:  &down,
			},
		},
		{
			name: "没带方向就存空串",
			mock: func(ctrl *gomock.Controller) dao.ActivityDAO {
				d := daomocks.NewMockActivityDAO(ctrl)
				d.EXPECT().Insert(gomock.Any(), dao.ActivityRecord{
					OccurredAt: occurredAt,
					Type:       int(domain.ActivityViewPost),
					UserID:     "user-7",
					ObjectID:   "content-42",
					Direction:  "",
				}).Return(nil)
				return d
			},
			evt: domain.ActivityEvent{
				OccurredAt: occurredAt,
				Type:       domain.ActivityViewPost,
				ActorID:    "user-7",
				TargetID:   "content-42",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewActivityRepository(tc.mock(ctrl))
			assert.NoError(t, repo.Archive(context.Background(), tc.evt))
		})
	}
}
