package service

import (
	"context"
	"log"
	"strings"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/queue"
	"github.com/unclebandit/sparkles-site/internal/repository"
)

type InquiryService struct {
	Repo  repository.InquiryRepositoryInterface
	Queue queue.Queue
}

// SubmitContact stores the message as pending and queues it for forwarding.
// A failed publish leaves the message pending; it is not reported to the visitor.
func (s *InquiryService) SubmitContact(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(name),
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Message: strings.TrimSpace(message),
		Status:  model.MessagePending,
	}
	if err := msg.Validate(); err != nil {
		return nil, appErrors.NewValidation("", err)
	}
	if err := s.Repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	if s.Queue != nil {
		if err := s.Queue.Publish(queue.TopicContactMessages, msg.ID); err != nil {
			log.Println("⚠️ failed to enqueue contact message", msg.ID, ":", err)
		}
	}
	return msg, nil
}

func (s *InquiryService) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	sub := &model.Subscriber{Email: strings.ToLower(strings.TrimSpace(email))}
	if err := sub.Validate(); err != nil {
		return nil, appErrors.NewValidation("", err)
	}
	if err := s.Repo.Subscribe(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *InquiryService) Messages(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	return s.Repo.ListMessages(ctx, limit)
}

func (s *InquiryService) Subscribers(ctx context.Context) ([]*model.Subscriber, error) {
	return s.Repo.ListSubscribers(ctx)
}
