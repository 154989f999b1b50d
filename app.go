package main

import "github.com/eweware/HeardActivityProcessor/pkg/queuex"

// App 这个服务只有消费者，没有对外的 web/grpc 面
type App struct {
	Consumers []queuex.Consumer
}
