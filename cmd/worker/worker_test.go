package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/unclebandit/sparkles-site/internal/model"
	"github.com/unclebandit/sparkles-site/internal/queue"
)

// MockMessageRepo stores messages in memory and reports each status change
type MockMessageRepo struct {
	msgs    map[string]*model.ContactMessage
	updated chan string
	mu      sync.Mutex
}

func (m *MockMessageRepo) GetMessage(ctx context.Context, id string) (*model.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.msgs[id]
	if !ok {
		return nil, nil
	}
	cp := *msg
	return &cp, nil
}

func (m *MockMessageRepo) UpdateMessageStatus(ctx context.Context, id, status, lastError string) error {
	m.mu.Lock()
	m.msgs[id].Status = status
	m.msgs[id].LastError = lastError
	m.mu.Unlock()
	m.updated <- status
	return nil
}

type MockNotifier struct {
	err error
}

func (n MockNotifier) Notify(ctx context.Context, msg *model.ContactMessage) error {
	return n.err
}

func newRepo() *MockMessageRepo {
	return &MockMessageRepo{
		msgs: map[string]*model.ContactMessage{
			"m1": {ID: "m1", Name: "Asha", Email: "asha@example.com", Message: "hi", Status: model.MessagePending},
		},
		updated: make(chan string, 8),
	}
}

func waitStatus(t *testing.T, repo *MockMessageRepo) string {
	t.Helper()
	select {
	case s := <-repo.updated:
		return s
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the worker")
	}
	return ""
}

func TestWorker(t *testing.T) {
	repo := newRepo()
	q := queue.NewInMemoryQueue()
	if err := startWorker(context.Background(), q, repo, MockNotifier{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// enqueue job
	if err := q.Publish(queue.TopicContactMessages, "m1"); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}

	if got := waitStatus(t, repo); got != model.MessageForwarded {
		t.Errorf("expected forwarded, got %s", got)
	}
}

func TestWorkerMarksFailure(t *testing.T) {
	repo := newRepo()
	q := queue.NewInMemoryQueue()
	if err := startWorker(context.Background(), q, repo, MockNotifier{err: errors.New("mailbox full")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Publish(queue.TopicContactMessages, "m1"); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}

	if got := waitStatus(t, repo); got != model.MessageFailed {
		t.Errorf("expected failed, got %s", got)
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.msgs["m1"].LastError != "mailbox full" {
		t.Errorf("expected last error to be recorded, got %q", repo.msgs["m1"].LastError)
	}
}
