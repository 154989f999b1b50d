package queuex

import (
	"context"
	_ "embed"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:embed lua/queue_lease.lua
var luaLease string

// RedisQueue 用三个键实现租约队列：
// ready 列表放排队中的消息 id，
// leased zset 放租出去的 id，score 是租约到期时间，
// body hash 放 id 到消息体的映射。
// 到期回收和租出一批在一个 lua 脚本里完成，保证不会租重。
type RedisQueue struct {
	client redis.Cmdable
	name   string
}

func NewRedisQueue(client redis.Cmdable, name string) *RedisQueue {
	return &RedisQueue{
		client: client,
		name:   name,
	}
}

func (q *RedisQueue) Enqueue(ctx context.Context, body []byte) error {
	id := uuid.New().String()
	pip := q.client.TxPipeline()
	pip.HSet(ctx, q.bodyKey(), id, body)
	pip.LPush(ctx, q.readyKey(), id)
	_, err := pip.Exec(ctx)
	return err
}

func (q *RedisQueue) ApproximateDepth(ctx context.Context) (int64, error) {
	pip := q.client.Pipeline()
	ready := pip.LLen(ctx, q.readyKey())
	leased := pip.ZCard(ctx, q.leasedKey())
	_, err := pip.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return ready.Val() + leased.Val(), nil
}

func (q *RedisQueue) LeaseBatch(ctx context.Context, max int, lease time.Duration) ([]Message, error) {
	now := time.Now()
	ids, err := q.client.Eval(ctx, luaLease,
		[]string{q.readyKey(), q.leasedKey()},
		now.UnixMilli(), now.Add(lease).UnixMilli(), max).StringSlice()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	bodies, err := q.client.HMGet(ctx, q.bodyKey(), ids...).Result()
	if err != nil {
		return nil, err
	}
	res := make([]Message, 0, len(ids))
	for i, id := range ids {
		body, ok := bodies[i].(string)
		if !ok {
			// 消息体已经没了，属于删过一半的残留，直接清掉租约
			q.client.ZRem(ctx, q.leasedKey(), id)
			continue
		}
		res = append(res, Message{
			ID:   id,
			Body: []byte(body),
		})
	}
	return res, nil
}

func (q *RedisQueue) Delete(ctx context.Context, msg Message) error {
	pip := q.client.TxPipeline()
	pip.ZRem(ctx, q.leasedKey(), msg.ID)
	pip.HDel(ctx, q.bodyKey(), msg.ID)
	_, err := pip.Exec(ctx)
	return err
}

func (q *RedisQueue) readyKey() string {
	return q.name + ":ready"
}

func (q *RedisQueue) leasedKey() string {
	return q.name + ":leased"
}

func (q *RedisQueue) bodyKey() string {
	return q.name + ":body"
}
