package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository"
	repomocks "github.com/eweware/HeardActivityProcessor/internal/repository/mocks"
	"github.com/eweware/HeardActivityProcessor/internal/service"
	svcmocks "github.com/eweware/HeardActivityProcessor/internal/service/mocks"
	"github.com/eweware/HeardActivityProcessor/pkg/logger"
	"github.com/eweware/HeardActivityProcessor/pkg/queuex"
	queuemocks "github.com/eweware/HeardActivityProcessor/pkg/queuex/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestConsumer(q queuex.Queue,
	svc service.StatsService,
	repo repository.ActivityRepository) *ActivityEventConsumer {
	return NewActivityEventConsumer(q, svc, repo, logger.NewNopLogger())
}

func TestActivityEventConsumer_Consume(t *testing.T) {
	occurredAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	viewEvt := domain.ActivityEvent{
		OccurredAt: occurredAt,
		Type:       domain.ActivityViewPost,
		ActorID:    "user-7",
		TargetID:   "content-42",
	}
	viewBody := []byte(`{"c":"2024-01-01T10:00:00Z","t":3,"o":"content-42","u":"user-7"}`)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (queuex.Queue,
			service.StatsService, repository.ActivityRepository)

		msg queuex.Message
	}{
		{
			name: "处理成功，归档后删除",
			mock: func(ctrl *gomock.Controller) (queuex.Queue,
				service.StatsService, repository.ActivityRepository) {
				q := queuemocks.NewMockQueue(ctrl)
				svc := svcmocks.NewMockStatsService(ctrl)
				repo := repomocks.NewMockActivityRepository(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), viewEvt,
					domain.CounterView, domain.DigestViews).Return(nil)
				repo.EXPECT().Archive(gomock.Any(), viewEvt).Return(nil)
				q.EXPECT().Delete(gomock.Any(), queuex.Message{ID: "m1", Body: viewBody}).
					Return(nil)
				return q, svc, repo
			},
			msg: queuex.Message{ID: "m1", Body: viewBody},
		},
		{
			name: "解析失败，不归档不删除",
			mock: func(ctrl *gomock.Controller) (queuex.Queue,
				service.StatsService, repository.ActivityRepository) {
				return queuemocks.NewMockQueue(ctrl),
					svcmocks.NewMockStatsService(ctrl),
					repomocks.NewMockActivityRepository(ctrl)
			},
			msg: queuex.Message{ID: "m1", Body: []byte(`这不是 json`)},
		},
		{
			name: "处理失败，留在队列里等重投",
			mock: func(ctrl *gomock.Controller) (queuex.Queue,
				service.StatsService, repository.ActivityRepository) {
				q := queuemocks.NewMockQueue(ctrl)
				svc := svcmocks.NewMockStatsService(ctrl)
				repo := repomocks.NewMockActivityRepository(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), viewEvt,
					domain.CounterView, domain.DigestViews).
					Return(errors.New("mock db错误"))
				return q, svc, repo
			},
			msg: queuex.Message{ID: "m1", Body: viewBody},
		},
		{
			name: "归档失败，不删除",
			mock: func(ctrl *gomock.Controller) (queuex.Queue,
				service.StatsService, repository.ActivityRepository) {
				q := queuemocks.NewMockQueue(ctrl)
				svc := svcmocks.NewMockStatsService(ctrl)
				repo := repomocks.NewMockActivityRepository(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), viewEvt,
					domain.CounterView, domain.DigestViews).Return(nil)
				repo.EXPECT().Archive(gomock.Any(), viewEvt).
					Return(errors.New("mock db错误"))
				return q, svc, repo
			},
			msg: queuex.Message{ID: "m1", Body: viewBody},
		},
		{
			name: "删除失败只记日志，统计已经生效",
			mock: func(ctrl *gomock.Controller) (queuex.Queue,
				service.StatsService, repository.ActivityRepository) {
				q := queuemocks.NewMockQueue(ctrl)
				svc := svcmocks.NewMockStatsService(ctrl)
				repo := repomocks.NewMockActivityRepository(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), viewEvt,
					domain.CounterView, domain.DigestViews).Return(nil)
				repo.EXPECT().Archive(gomock.Any(), viewEvt).Return(nil)
				q.EXPECT().Delete(gomock.Any(), queuex.Message{ID: "m1", Body: viewBody}).
					Return(errors.New("mock redis错误"))
				return q, svc, repo
			},
			msg: queuex.Message{ID: "m1", Body: viewBody},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			q, svc, repo := tc.mock(ctrl)
			c := newTestConsumer(q, svc, repo)
			c.consume(context.Background(), tc.msg)
		})
	}
}

func TestActivityEventConsumer_ConsumeBatch(t *testing.T) {
	// 第一条处理失败，第二条照常处理完
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	occurredAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	badBody := []byte(`{"c":"2024-01-01T10:00:00Z","t":3,"o":"content-1","u":"user-7"}`)
	goodBody := []byte(`{"c":"2024-01-01T10:00:00Z","t":4,"o":"content-2","u":"user-7"}`)
	goodEvt := domain.ActivityEvent{
		OccurredAt: occurredAt,
		Type:       domain.ActivityOpenPost,
		ActorID:    "user-7",
		TargetID:   "content-2",
	}

	q := queuemocks.NewMockQueue(ctrl)
	svc := svcmocks.NewMockStatsService(ctrl)
	repo := repomocks.NewMockActivityRepository(ctrl)
	svc.EXPECT().ApplyActivity(gomock.Any(), gomock.Any(),
		domain.CounterView, domain.DigestViews).
		Return(errors.New("mock db错误"))
	svc.EXPECT().ApplyActivity(gomock.Any(), goodEvt,
		domain.CounterOpen, domain.DigestOpens).Return(nil)
	repo.EXPECT().Archive(gomock.Any(), goodEvt).Return(nil)
	q.EXPECT().Delete(gomock.Any(), queuex.Message{ID: "m2", Body: goodBody}).
		Return(nil)

	c := newTestConsumer(q, svc, repo)
	c.consumeBatch(context.Background(), []queuex.Message{
		{ID: "m1", Body: badBody},
		{ID: "m2", Body: goodBody},
	})
}

func TestActivityEventConsumer_Classify(t *testing.T) {
	testCases := []struct {
		name string
		body []byte

		wantEvt domain.ActivityEvent
		wantErr bool
	}{
		{
			name: "完整消息",
			body: []byte(`{"c":"2024-01-01T10:00:00Z","t":3,"o":"content-42","u":"user-7"}`),
			wantEvt: domain.ActivityEvent{
				OccurredAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Type:       domain.ActivityViewPost,
				ActorID:    "user-7",
				TargetID:   "content-42",
			},
		},
		{
			name: "没带用户，按匿名算",
			body: []byte(`{"c":"2024-01-01T10:00:00Z","t":3,"o":"content-42"}`),
			wantEvt: domain.ActivityEvent{
				OccurredAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Type:       domain.ActivityViewPost,
				ActorID:    domain.AnonymousUserID,
				TargetID:   "content-42",
			},
		},
		{
			name: "带时区的时间戳统一转成 UTC",
			body: []byte(`{"c":"2024-01-01T18:00:00+08:00","t":3,"o":"content-42","u":"user-7"}`),
			wantEvt: domain.ActivityEvent{
				OccurredAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Type:       domain.ActivityViewPost,
				ActorID:    "user-7",
				TargetID:   "content-42",
			},
		},
		{
			name: "不认识的类型码解析成未识别",
			body: []byte(`{"c":"2024-01-01T10:00:00Z","t":99,"u":"user-7"}`),
			wantEvt: domain.ActivityEvent{
				OccurredAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Type:       domain.ActivityUnrecognized,
				ActorID:    "user-7",
			},
		},
		{
			name:    "不是 json",
			body:    []byte(`乱七八糟`),
			wantErr: true,
		},
		{
			name:    "缺少时间戳",
			body:    []byte(`{"t":3,"o":"content-42","u":"user-7"}`),
			wantErr: true,
		},
		{
			name:    "缺少类型码",
			body:    []byte(`{"c":"2024-01-01T10:00:00Z","o":"content-42","u":"user-7"}`),
			wantErr: true,
		},
		{
			name:    "时间戳格式不对",
			body:    []byte(`{"c":"01/01/2024 10:00","t":3,"u":"user-7"}`),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := newTestConsumer(queuemocks.NewMockQueue(ctrl),
				svcmocks.NewMockStatsService(ctrl),
				repomocks.NewMockActivityRepository(ctrl))
			evt, err := c.classify(tc.body)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantEvt, evt)
		})
	}
}

func TestActivityEventConsumer_Dispatch(t *testing.T) {
	occurredAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	newEvt := func(typ domain.ActivityType, direction *int64) domain.ActivityEvent {
		return domain.ActivityEvent{
			OccurredAt: occurredAt,
			Type:       typ,
			ActorID:    "user-7",
			TargetID:   "content-42",
			Direction:  direction,
		}
	}
	up := int64(1)
	down := int64(-1)
	zero := int64(0)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService

		evt domain.ActivityEvent

		wantErr bool
	}{
		{
			name: "登录",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().RecordLogin(gomock.Any(), evt).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityLogin, nil),
		},
		{
			name: "登出只归档不统计",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				return svcmocks.NewMockStatsService(ctrl)
			},
			evt: newEvt(domain.ActivityLogout, nil),
		},
		{
			name: "浏览帖子",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterView, domain.DigestViews).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityViewPost, nil),
		},
		{
			name: "打开帖子",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterOpen, domain.DigestOpens).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityOpenPost, nil),
		},
		{
			name: "给帖子点赞",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterUpVote, domain.DigestUpVotes).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityVotePost, &up),
		},
		{
			name: "给帖子点踩",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterDownVote, domain.DigestDownVotes).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityVotePost, &down),
		},
		{
			name: "方向是 0 也算踩",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterDownVote, domain.DigestDownVotes).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityVotePost, &zero),
		},
		{
			name: "投票没带方向，按坏记录吞掉",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				return svcmocks.NewMockStatsService(ctrl)
			},
			evt: newEvt(domain.ActivityVotePost, nil),
		},
		{
			name: "给评论点赞",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterCommentUpVote, domain.DigestCommentUpVotes).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityVoteComment, &up),
		},
		{
			name: "给评论点踩",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterCommentDownVote, domain.DigestCommentDownVotes).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityVoteComment, &down),
		},
		{
			name: "发帖不打摘要",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterPost, domain.DigestNone).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivitySubmitPost, nil),
		},
		{
			name: "发评论",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ApplyActivity(gomock.Any(), evt,
					domain.CounterComment, domain.DigestComments).Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivitySubmitComment, nil),
		},
		{
			name: "拉取 whats-new 触发重置",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				svc := svcmocks.NewMockStatsService(ctrl)
				svc.EXPECT().ResetWhatsNew(gomock.Any(), "user-7").Return(nil)
				return svc
			},
			evt: newEvt(domain.ActivityFetchedWhatsNew, nil),
		},
		{
			name: "计数类消息没带对象，报错留在队列里",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				return svcmocks.NewMockStatsService(ctrl)
			},
			evt: domain.ActivityEvent{
				OccurredAt: occurredAt,
				Type:       domain.ActivityViewPost,
				ActorID:    "user-7",
			},
			wantErr: true,
		},
		{
			name: "投票消息没带对象，同样不能入账",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				return svcmocks.NewMockStatsService(ctrl)
			},
			evt: domain.ActivityEvent{
				OccurredAt: occurredAt,
				Type:       domain.ActivityVotePost,
				ActorID:    "user-7",
				Direction:  &up,
			},
			wantErr: true,
		},
		{
			name: "未识别的类型报错",
			mock: func(ctrl *gomock.Controller, evt domain.ActivityEvent) service.StatsService {
				return svcmocks.NewMockStatsService(ctrl)
			},
			evt:     newEvt(domain.ActivityUnrecognized, nil),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := newTestConsumer(queuemocks.NewMockQueue(ctrl),
				tc.mock(ctrl, tc.evt),
				repomocks.NewMockActivityRepository(ctrl))
			err := c.dispatch(context.Background(), tc.evt)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestActivityEventConsumer_LeasedBacklogIdles(t *testing.T) {
	// 队列里只剩租出去还没删掉的消息：深度不是零，但是租不到新的一批。
	// 这种时候循环要歇一拍，不能贴着 redis 空转
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var depthCalls, leaseCalls atomic.Int64
	q := queuemocks.NewMockQueue(ctrl)
	q.EXPECT().ApproximateDepth(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int64, error) {
			depthCalls.Add(1)
			return 1, nil
		}).AnyTimes()
	q.EXPECT().LeaseBatch(gomock.Any(), batchSize, leaseDuration).
		DoAndReturn(func(ctx context.Context, max int, lease time.Duration) ([]queuex.Message, error) {
			leaseCalls.Add(1)
			return nil, nil
		}).AnyTimes()

	c := newTestConsumer(q,
		svcmocks.NewMockStatsService(ctrl),
		repomocks.NewMockActivityRepository(ctrl))
	assert.NoError(t, c.Start())
	time.Sleep(300 * time.Millisecond)
	assert.NoError(t, c.Stop())
	// 空转的话 300ms 能打出几百万次调用，歇着的话最多跑完一轮再起一轮
	assert.LessOrEqual(t, depthCalls.Load(), int64(2))
	assert.LessOrEqual(t, leaseCalls.Load(), int64(2))
}

func TestActivityEventConsumer_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := queuemocks.NewMockQueue(ctrl)
	// 循环在跑，深度查询可能发生任意次
	q.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(0), nil).AnyTimes()

	c := newTestConsumer(q,
		svcmocks.NewMockStatsService(ctrl),
		repomocks.NewMockActivityRepository(ctrl))
	assert.NoError(t, c.Start())
	// 重复启动要报错
	assert.Error(t, c.Start())
	assert.NoError(t, c.Stop())
}
