package service

import (
	"context"
	"log"

	"github.com/unclebandit/sparkles-site/internal/model"
)

// ContactMessageRepository defines the methods the worker needs
type ContactMessageRepository interface {
	GetMessage(ctx context.Context, id string) (*model.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id, status, lastError string) error
}

// Notifier hands a visitor's message to whoever answers it.
type Notifier interface {
	Notify(ctx context.Context, msg *model.ContactMessage) error
}

// LogNotifier writes the message to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, msg *model.ContactMessage) error {
	log.Printf("📨 Contact message from %s <%s>: %s", msg.Name, msg.Email, msg.Message)
	return nil
}

// Worker forwards queued contact messages
type Worker struct {
	Repo     ContactMessageRepository
	Notifier Notifier
}

// Constructor
func NewWorker(repo ContactMessageRepository, notifier Notifier) *Worker {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Worker{
		Repo:     repo,
		Notifier: notifier,
	}
}

// Process forwards one message. A returned error means the job may be retried.
func (w *Worker) Process(ctx context.Context, id string) error {
	msg, err := w.Repo.GetMessage(ctx, id)
	if err != nil {
		log.Println("⚠️ Failed to fetch contact message:", err)
		return err
	}
	if msg == nil {
		log.Println("⚠️ Contact message not found for ID:", id)
		return nil // no retry
	}
	if msg.Status == model.MessageForwarded {
		return nil
	}

	if err := w.Notifier.Notify(ctx, msg); err != nil {
		log.Println("⚠️ Failed to forward contact message:", err)
		_ = w.Repo.UpdateMessageStatus(ctx, id, model.MessageFailed, err.Error())
		return err
	}

	if err := w.Repo.UpdateMessageStatus(ctx, id, model.MessageForwarded, ""); err != nil {
		log.Println("⚠️ Failed to update contact message status:", err)
		return err
	}
	log.Println("✅ Contact message forwarded:", id)
	return nil
}
