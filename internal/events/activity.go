package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/syncx/atomicx"
	"github.com/eweware/HeardActivityProcessor/internal/domain"
	"github.com/eweware/HeardActivityProcessor/internal/repository"
	"github.com/eweware/HeardActivityProcessor/internal/service"
	"github.com/eweware/HeardActivityProcessor/pkg/logger"
	"github.com/eweware/HeardActivityProcessor/pkg/queuex"
)

const (
	// 一批最多 20 条，租约 5 分钟，足够整批处理完
	batchSize     = 20
	leaseDuration = 5 * time.Minute
	// 队列空了歇一秒再去看
	idleDelay = time.Second
)

// Activity 队列消息体，字段名是上游定好的短名
type Activity struct {
	Created  string `json:"c"`
	Type     int    `json:"t"`
	ObjectID string `json:"o"`
	UserID   string `json:"u"`
	// Direction 用指针区分"没带"和"带了 0"
	Direction *int64 `json:"d"`
}

// ActivityEventConsumer 从活动队列租一批消息，逐条分发给统计服务。
// 处理成功的消息先归档再删除；失败的不删，等租约到期自动重投。
// 一批之内严格串行，保证同一个聚合键上的更新按到达顺序落库。
type ActivityEventConsumer struct {
	q       queuex.Queue
	svc     service.StatsService
	repo    repository.ActivityRepository
	l       logger.LoggerV1
	started *atomicx.Value[bool]
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewActivityEventConsumer(q queuex.Queue,
	svc service.StatsService,
	repo repository.ActivityRepository,
	l logger.LoggerV1) *ActivityEventConsumer {
	return &ActivityEventConsumer{
		q:       q,
		svc:     svc,
		repo:    repo,
		l:       l,
		started: atomicx.NewValueOf(false),
		done:    make(chan struct{}),
	}
}

func (c *ActivityEventConsumer) Start() error {
	if !c.started.CompareAndSwap(false, true) {
		return errors.New("activity consumer 已经启动过了")
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go func() {
		defer close(c.done)
		c.loop(ctx)
	}()
	return nil
}

// Stop 只在两批之间退出，正在处理的一批会跑完
func (c *ActivityEventConsumer) Stop() error {
	if !c.started.Load() {
		return nil
	}
	c.cancel()
	<-c.done
	return nil
}

func (c *ActivityEventConsumer) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		depth, err := c.q.ApproximateDepth(ctx)
		if err != nil {
			c.l.Error("获取队列深度失败", logger.Error(err))
			c.idle(ctx)
			continue
		}
		if depth == 0 {
			c.idle(ctx)
			continue
		}
		msgs, err := c.q.LeaseBatch(ctx, batchSize, leaseDuration)
		if err != nil {
			c.l.Error("租取消息批次失败", logger.Error(err))
			c.idle(ctx)
			continue
		}
		if len(msgs) == 0 {
			// 深度把租出去还没删的也算在内，全被租走的时候这里租不到东西，
			// 一样要歇一拍，不能贴着 redis 空转
			c.idle(ctx)
			continue
		}
		c.consumeBatch(ctx, msgs)
	}
}

func (c *ActivityEventConsumer) idle(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(idleDelay):
	}
}

// consumeBatch 一条失败不影响后面的，各管各的
func (c *ActivityEventConsumer) consumeBatch(ctx context.Context, msgs []queuex.Message) {
	for _, msg := range msgs {
		c.consume(ctx, msg)
	}
}

func (c *ActivityEventConsumer) consume(ctx context.Context, msg queuex.Message) {
	evt, err := c.classify(msg.Body)
	if err != nil {
		// 不归档也不删，租约到期后重投，毒消息靠队列自己的策略兜底
		c.l.Error("消息解析失败，等待重投",
			logger.String("id", msg.ID),
			logger.Error(err))
		return
	}
	err = c.dispatch(ctx, evt)
	if err != nil {
		c.l.Error("处理消息失败，等待重投",
			logger.String("id", msg.ID),
			logger.Int("type", int(evt.Type)),
			logger.Error(err))
		return
	}
	// 先归档再删，归档失败的话消息重投，归档会重复，统计不会丢
	err = c.repo.Archive(ctx, evt)
	if err != nil {
		c.l.Error("归档消息失败，等待重投",
			logger.String("id", msg.ID),
			logger.Error(err))
		return
	}
	err = c.q.Delete(ctx, msg)
	if err != nil {
		c.l.Error("删除消息失败", logger.String("id", msg.ID), logger.Error(err))
	}
}

func (c *ActivityEventConsumer) classify(body []byte) (domain.ActivityEvent, error) {
	var payload Activity
	err := json.Unmarshal(body, &payload)
	if err != nil {
		return domain.ActivityEvent{}, err
	}
	if payload.Created == "" {
		return domain.ActivityEvent{}, errors.New("消息缺少时间戳 c")
	}
	if payload.Type == 0 {
		return domain.ActivityEvent{}, errors.New("消息缺少类型码 t")
	}
	occurredAt, err := time.Parse(time.RFC3339, payload.Created)
	if err != nil {
		return domain.ActivityEvent{}, fmt.Errorf("时间戳解析失败: %w", err)
	}
	actor := payload.UserID
	if actor == "" {
		actor = domain.AnonymousUserID
	}
	return domain.ActivityEvent{
		OccurredAt: occurredAt.UTC(),
		Type:       domain.ActivityTypeOf(payload.Type),
		ActorID:    actor,
		TargetID:   payload.ObjectID,
		Direction:  payload.Direction,
	}, nil
}

func (c *ActivityEventConsumer) dispatch(ctx context.Context, evt domain.ActivityEvent) error {
	switch evt.Type {
	case domain.ActivityLogin:
		return c.svc.RecordLogin(ctx, evt)
	case domain.ActivityLogout,
		domain.ActivityVotePoll,
		domain.ActivityVotePrediction,
		domain.ActivityVoteExpiredPrediction:
		// 预留的类型，现在只归档不统计
		return nil
	case domain.ActivityViewPost:
		return c.apply(ctx, evt, domain.CounterView, domain.DigestViews)
	case domain.ActivityOpenPost:
		return c.apply(ctx, evt, domain.CounterOpen, domain.DigestOpens)
	case domain.ActivityVotePost:
		return c.dispatchVote(ctx, evt,
			domain.CounterUpVote, domain.DigestUpVotes,
			domain.CounterDownVote, domain.DigestDownVotes)
	case domain.ActivityVoteComment:
		return c.dispatchVote(ctx, evt,
			domain.CounterCommentUpVote, domain.DigestCommentUpVotes,
			domain.CounterCommentDownVote, domain.DigestCommentDownVotes)
	case domain.ActivitySubmitPost:
		// 发帖不打归属方的摘要，自己发的东西没什么好通知的
		return c.apply(ctx, evt, domain.CounterPost, domain.DigestNone)
	case domain.ActivitySubmitComment:
		return c.apply(ctx, evt, domain.CounterComment, domain.DigestComments)
	case domain.ActivityFetchedWhatsNew:
		return c.svc.ResetWhatsNew(ctx, evt.ActorID)
	default:
		return fmt.Errorf("未识别的活动类型 %d", evt.Type)
	}
}

// dispatchVote 方向大于 0 算顶，其余算踩。
// 消息里根本没带方向的算坏记录：照常归档和删除，但是一个数都不加。
// 疑似上游的 bug，这票就这么丢了，但是不能让坏数据堵住队列。
func (c *ActivityEventConsumer) dispatchVote(ctx context.Context, evt domain.ActivityEvent,
	up domain.Counter, upDigest domain.DigestCounter,
	down domain.Counter, downDigest domain.DigestCounter) error {
	if evt.Direction == nil {
		c.l.Warn("投票消息缺少方向，按坏记录处理",
			logger.Int("type", int(evt.Type)),
			logger.String("contentId", evt.TargetID))
		return nil
	}
	if *evt.Direction > 0 {
		return c.apply(ctx, evt, up, upDigest)
	}
	return c.apply(ctx, evt, down, downDigest)
}

// apply 计数类消息必须带对象，不然统计全挂在空 id 底下
func (c *ActivityEventConsumer) apply(ctx context.Context, evt domain.ActivityEvent,
	cnt domain.Counter, digest domain.DigestCounter) error {
	if evt.TargetID == "" {
		return errors.New("消息缺少对象 o")
	}
	return c.svc.ApplyActivity(ctx, evt, cnt, digest)
}
