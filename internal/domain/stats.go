package domain

import "time"

// Counter 各个维度共用的计数器名字
type Counter string

const (
	CounterOpen            Counter = "open"
	CounterComment         Counter = "comment"
	CounterView            Counter = "view"
	CounterUpVote          Counter = "upVote"
	CounterDownVote        Counter = "downVote"
	CounterCommentUpVote   Counter = "commentUpVote"
	CounterCommentDownVote Counter = "commentDownVote"
	CounterPost            Counter = "post"
)

// DigestCounter 内容归属方 whats-new 摘要上的计数器
type DigestCounter string

const (
	// DigestNone 这次行为不通知归属方
	DigestNone             DigestCounter = ""
	DigestComments         DigestCounter = "comments"
	DigestOpens            DigestCounter = "opens"
	DigestUpVotes          DigestCounter = "upVotes"
	DigestDownVotes        DigestCounter = "downVotes"
	DigestCommentUpVotes   DigestCounter = "commentUpVotes"
	DigestCommentDownVotes DigestCounter = "commentDownVotes"
	DigestViews            DigestCounter = "views"
)

// DateBucket 按天聚合的桶，Date 是当天零点，冗余出来方便按时间查
type DateBucket struct {
	Year  int
	Month int
	Day   int
	Date  time.Time
}

// BucketOf 统一用 UTC 切天，避免跨时区的消息落错桶
func BucketOf(t time.Time) DateBucket {
	t = t.UTC()
	return DateBucket{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
		Date:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Ownership 内容的归属，内容服务维护，这边只读
type Ownership struct {
	OwnerID string
	GroupID string
}
