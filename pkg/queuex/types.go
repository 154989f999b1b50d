package queuex

import (
	"context"
	"time"
)

// Message 队列里面的一条消息，ID 是租约和删除的凭证
type Message struct {
	ID   string
	Body []byte
}

// Queue 租约语义的队列：
// 租出去的消息在租约内对别人不可见，租约到期没删掉就会被重新投递。
// 至少一次投递，消费方自己兜住重复。
//
//go:generate mockgen -source=./types.go -package=queuemocks -destination=mocks/types.mock.go Queue
type Queue interface {
	Enqueue(ctx context.Context, body []byte) error
	// ApproximateDepth 近似值，拿来判断要不要去租一批，不要拿来做精确判断
	ApproximateDepth(ctx context.Context) (int64, error)
	LeaseBatch(ctx context.Context, max int, lease time.Duration) ([]Message, error)
	Delete(ctx context.Context, msg Message) error
}

type Consumer interface {
	Start() error
	Stop() error
}
