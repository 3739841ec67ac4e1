package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/newsletter"
	"github.com/phongnguyen123/treow-physio-sub000/internal/infrastructure/queue"
	"github.com/phongnguyen123/treow-physio-sub000/pkg/container"
)

// Worker process chạy các background task (hiện tại chỉ có newsletter
// broadcast). Yêu cầu Redis, không có Redis thì broadcast chạy inline
// trong API process và worker này không cần thiết.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("❌ Failed to initialize container: %v", err)
	}
	defer c.Cleanup()

	if !c.Config.Redis.Enabled() {
		log.Fatal("❌ Worker requires REDIS_HOST to be set")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Concurrency: 1, // broadcast tuần tự, không cần nhiều worker
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskNewsletterBroadcast, broadcastHandler(c.NewsletterService))

	go func() {
		log.Println("🚀 Worker started, waiting for tasks...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("❌ Worker failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down worker...")
	srv.Shutdown()
	log.Println("✅ Worker exited gracefully")
}

func broadcastHandler(svc newsletter.Service) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload queue.NewsletterBroadcastPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}

		result, err := svc.Broadcast(ctx, &newsletter.BroadcastRequest{
			Subject: payload.Subject,
			HTML:    payload.HTML,
		})
		if err != nil {
			return err
		}

		log.Printf("📨 Broadcast done: %d/%d sent, %d failed",
			result.SentCount, result.TotalCount, len(result.Errors))
		return nil
	}
}
