package newsletter

import (
	"time"

	"github.com/google/uuid"
)

type SubscriberStatus string

const (
	StatusActive       SubscriberStatus = "ACTIVE"
	StatusUnsubscribed SubscriberStatus = "UNSUBSCRIBED"
)

type Subscriber struct {
	ID           uuid.UUID        `json:"id"`
	Email        string           `json:"email"`
	Status       SubscriberStatus `json:"status"`
	SubscribedAt time.Time        `json:"subscribedAt"`
}

// BroadcastResult tổng kết một đợt gửi newsletter. Success=true ngay cả
// khi có recipients fail, miễn là đợt gửi chạy xong. Per-recipient
// failures nằm trong Errors.
type BroadcastResult struct {
	Success    bool     `json:"success"`
	SentCount  int      `json:"sentCount"`
	TotalCount int      `json:"totalCount"`
	Errors     []string `json:"errors,omitempty"`
}
