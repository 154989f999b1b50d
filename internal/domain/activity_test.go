package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivityTypeOf(t *testing.T) {
	testCases := []struct {
		name string
		code int
		want ActivityType
	}{
		{name: "登录", code: 1, want: ActivityLogin},
		{name: "拉取 whats-new", code: 12, want: ActivityFetchedWhatsNew},
		{name: "零不是合法类型码", code: 0, want: ActivityUnrecognized},
		{name: "负数", code: -1, want: ActivityUnrecognized},
		{name: "超出范围", code: 13, want: ActivityUnrecognized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ActivityTypeOf(tc.code))
		})
	}
}

func TestBucketOf(t *testing.T) {
	testCases := []struct {
		name string
		t    time.Time
		want DateBucket
	}{
		{
			name: "UTC 时间取当天",
			t:    time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC),
			want: DateBucket{
				Year:  2024,
				Month: 3,
				Day:   5,
				Date:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "东八区凌晨落到 UTC 的前一天",
			t:    time.Date(2024, 1, 1, 1, 30, 0, 0, time.FixedZone("CST", 8*3600)),
			want: DateBucket{
				Year:  2023,
				Month: 12,
				Day:   31,
				Date:  time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BucketOf(tc.t))
		})
	}
}

func TestActivityEvent_Anonymous(t *testing.T) {
	assert.True(t, ActivityEvent{ActorID: ""}.Anonymous())
	assert.True(t, ActivityEvent{ActorID: AnonymousUserID}.Anonymous())
	assert.False(t, ActivityEvent{ActorID: "user-7"}.Anonymous())
}
