package domain

import "time"

// AnonymousUserID 消息里面没带 u 的时候就是匿名用户
const AnonymousUserID = "0"

type ActivityType int

const (
	// ActivityUnrecognized 不认识的类型码都落到这里，不要 panic
	ActivityUnrecognized ActivityType = iota
	ActivityLogin
	ActivityLogout
	ActivityViewPost
	ActivityOpenPost
	ActivityVotePost
	ActivityVotePoll
	ActivityVotePrediction
	ActivityVoteExpiredPrediction
	ActivityVoteComment
	ActivitySubmitPost
	ActivitySubmitComment
	ActivityFetchedWhatsNew
)

// ActivityTypeOf 类型码是 1-12，别的都算未识别
func ActivityTypeOf(code int) ActivityType {
	if code < int(ActivityLogin) || code > int(ActivityFetchedWhatsNew) {
		return ActivityUnrecognized
	}
	return ActivityType(code)
}

// ActivityEvent 从队列消息解析出来的一次用户行为，解析完就不再改
type ActivityEvent struct {
	OccurredAt time.Time
	Type       ActivityType
	// ActorID 发起行为的用户，匿名是 "0"
	ActorID string
	// TargetID 被操作的内容，可能为空
	TargetID string
	// Direction 投票方向，正数是顶，别的是踩，nil 表示消息里面根本没带
	Direction *int64
}

func (e ActivityEvent) Anonymous() bool {
	return e.ActorID == "" || e.ActorID == AnonymousUserID
}
