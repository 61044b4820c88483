package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/unclebandit/sparkles-site/internal/config"
	"github.com/unclebandit/sparkles-site/internal/db"
	"github.com/unclebandit/sparkles-site/internal/queue"
	"github.com/unclebandit/sparkles-site/internal/repository"
	"github.com/unclebandit/sparkles-site/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}
	if cfg.Queue.AMQPURL == "" {
		log.Fatal("AMQP_URL must be set to run the worker")
	}

	// Connect to DB
	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer conn.Close()

	// Connect to RabbitMQ
	q, err := queue.DialAMQP(cfg.Queue.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer q.Close()

	if err := startWorker(ctx, q, &repository.InquiryRepository{DB: conn}, service.LogNotifier{}); err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	log.Println("Worker running, waiting for messages...")
	<-ctx.Done()
	log.Println("Worker stopping")
}

// startWorker forwards every contact message queued on q.
func startWorker(ctx context.Context, q queue.Queue, repo service.ContactMessageRepository, notifier service.Notifier) error {
	return queue.StartContactSubscriber(ctx, q, service.NewWorker(repo, notifier))
}
