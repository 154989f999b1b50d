package ioc

import (
	"github.com/eweware/HeardActivityProcessor/internal/events"
	"github.com/eweware/HeardActivityProcessor/pkg/queuex"
)

// NewConsumers 以后有新的消费者都在这里注册一下
func NewConsumers(c1 *events.ActivityEventConsumer) []queuex.Consumer {
	return []queuex.Consumer{c1}
}
