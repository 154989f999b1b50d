package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrRecordNotFound = mongo.ErrNoDocuments

const (
	ColContentStats     = "content-stats"
	ColUserStats        = "user-stats"
	ColUserContentStats = "user-content-stats"
	ColGroupStats       = "group-stats"
	ColSystemStats      = "system-stats"
	ColRawActivity      = "raw-activity-archive"
	ColContentRegistry  = "content-registry"
	ColUsers            = "users"
	ColWhatsNew         = "notification-digests"
)

// 各维度共用的计数字段
const (
	FieldOpenCount            = "openCount"
	FieldCommentCount         = "commentCount"
	FieldViewCount            = "viewCount"
	FieldUpVoteCount          = "upVoteCount"
	FieldDownVoteCount        = "downVoteCount"
	FieldCommentUpVoteCount   = "commentUpVoteCount"
	FieldCommentDownVoteCount = "commentDownVoteCount"
	FieldPostCount            = "postCount"
	// FieldLoginCount 只有 system-stats 有
	FieldLoginCount = "loginCount"
)

// whats-new 摘要上的计数字段
const (
	FieldNewComments         = "newComments"
	FieldNewOpens            = "newOpens"
	FieldNewUpVotes          = "newUpVotes"
	FieldNewDownVotes        = "newDownVotes"
	FieldNewCommentUpVotes   = "newCommentUpVotes"
	FieldNewCommentDownVotes = "newCommentDownVotes"
	FieldNewViews            = "newViews"
)

// DateKey 聚合文档的日期键，Date 是冗余的当天零点
type DateKey struct {
	Year  int
	Month int
	Day   int
	Date  time.Time
}

// StatsDAO 五个统计集合的 upsert 自增。
// 同一个 (维度键, 年月日) 只会有一份文档，不存在就靠 upsert 建出来。
//
//go:generate mockgen -source=./types.go -package=daomocks -destination=mocks/types.mock.go
type StatsDAO interface {
	IncrContentStat(ctx context.Context, contentID string, key DateKey, field string) error
	IncrUserStat(ctx context.Context, userID string, key DateKey, field string) error
	// IncrOwnedStat 自增的是归属方 user-stats 文档里嵌套的 ownedStats
	IncrOwnedStat(ctx context.Context, ownerID string, key DateKey, field string) error
	IncrUserContentStat(ctx context.Context, contentID string, userID string, key DateKey, field string) error
	IncrGroupStat(ctx context.Context, groupID string, key DateKey, field string) error
	IncrSystemStat(ctx context.Context, key DateKey, field string) error
}

type WhatsNewDAO interface {
	// Bump 没有摘要就带默认 message 建一条，有就只加计数和刷新 lastUpdate
	Bump(ctx context.Context, userID string, field string, now time.Time) error
	FindByUser(ctx context.Context, userID string) (WhatsNewInfo, error)
	// Save 按 userId 整篇替换
	Save(ctx context.Context, info WhatsNewInfo) error
	Insert(ctx context.Context, info WhatsNewInfo) error
}

type ActivityDAO interface {
	Insert(ctx context.Context, record ActivityRecord) error
}

type ContentDAO interface {
	FindOwnership(ctx context.Context, contentID string) (ContentOwnership, error)
	UpdateLastLogin(ctx context.Context, userID string, t time.Time) error
}

// BaseStat 所有统计维度共用的计数器形状
type BaseStat struct {
	OpenCount            int64 `bson:"openCount"`
	CommentCount         int64 `bson:"commentCount"`
	ViewCount            int64 `bson:"viewCount"`
	UpVoteCount          int64 `bson:"upVoteCount"`
	DownVoteCount        int64 `bson:"downVoteCount"`
	CommentUpVoteCount   int64 `bson:"commentUpVoteCount"`
	CommentDownVoteCount int64 `bson:"commentDownVoteCount"`
	PostCount            int64 `bson:"postCount"`
}

type ContentStat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ContentID string             `bson:"contentId"`
	Year      int                `bson:"year"`
	Month     int                `bson:"month"`
	Day       int                `bson:"day"`
	Date      time.Time          `bson:"date"`
	BaseStat  `bson:",inline"`
}

type UserStat struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"userId"`
	Year   int                `bson:"year"`
	Month  int                `bson:"month"`
	Day    int                `bson:"day"`
	Date   time.Time          `bson:"date"`
	// OwnedStats 别人在这个用户名下内容上的活动
	OwnedStats BaseStat `bson:"ownedStats"`
	BaseStat   `bson:",inline"`
}

type UserContentStat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ContentID string             `bson:"contentId"`
	UserID    string             `bson:"userId"`
	Year      int                `bson:"year"`
	Month     int                `bson:"month"`
	Day       int                `bson:"day"`
	Date      time.Time          `bson:"date"`
	BaseStat  `bson:",inline"`
}

type GroupStat struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	GroupID  string             `bson:"groupId"`
	Year     int                `bson:"year"`
	Month    int                `bson:"month"`
	Day      int                `bson:"day"`
	Date     time.Time          `bson:"date"`
	BaseStat `bson:",inline"`
}

type SystemStat struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Year       int                `bson:"year"`
	Month      int                `bson:"month"`
	Day        int                `bson:"day"`
	Date       time.Time          `bson:"date"`
	LoginCount int64              `bson:"loginCount"`
	BaseStat   `bson:",inline"`
}

type WhatsNewInfo struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	UserID              string             `bson:"userId"`
	NewComments         int64              `bson:"newComments"`
	NewOpens            int64              `bson:"newOpens"`
	NewUpVotes          int64              `bson:"newUpVotes"`
	NewDownVotes        int64              `bson:"newDownVotes"`
	NewCommentUpVotes   int64              `bson:"newCommentUpVotes"`
	NewCommentDownVotes int64              `bson:"newCommentDownVotes"`
	NewViews            int64              `bson:"newViews"`
	LastUpdate          time.Time          `bson:"lastUpdate"`
	Message             string             `bson:"message"`
}

// ActivityRecord 原始消息的归档，只追加，字段名沿用消息体里的短名
type ActivityRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	OccurredAt time.Time          `bson:"c"`
	Type       int                `bson:"t"`
	UserID     string             `bson:"u"`
	ObjectID   string             `bson:"o"`
	Direction  string             `bson:"d"`
}

// ContentOwnership 内容服务维护的登记信息，这边只读
type ContentOwnership struct {
	ID      string `bson:"_id"`
	OwnerID string `bson:"ownerId"`
	GroupID string `bson:"groupId"`
}

// DefaultMessage 新建摘要时的默认文案
func DefaultMessage(now time.Time) string {
	return "New activity since " + now.Format("2006-01-02")
}
