package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task types
const (
	TaskNewsletterBroadcast = "newsletter:broadcast"
)

// NewsletterBroadcastPayload là payload cho broadcast task
type NewsletterBroadcastPayload struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Client enqueue background tasks lên Redis
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// EnqueueNewsletterBroadcast đẩy một newsletter broadcast sang worker.
// Broadcast chạy tuần tự với delay nên không được giữ trong request cycle.
func (c *Client) EnqueueNewsletterBroadcast(ctx context.Context, payload NewsletterBroadcastPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal broadcast payload: %w", err)
	}

	task := asynq.NewTask(TaskNewsletterBroadcast, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue("default")); err != nil {
		return fmt.Errorf("enqueue broadcast task: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
