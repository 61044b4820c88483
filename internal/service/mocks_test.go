package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
)

var errStoreDown = errors.New("store unavailable")

// ====================== Content ======================

type MockContentRepo struct {
	Sections map[string]*model.ContentSection
	Err      error
	Inserts  int
	Updates  int
}

func NewMockContentRepo() *MockContentRepo {
	return &MockContentRepo{Sections: map[string]*model.ContentSection{}}
}

func (m *MockContentRepo) GetBySection(ctx context.Context, name string) (*model.ContentSection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Sections[name], nil
}

func (m *MockContentRepo) Insert(ctx context.Context, s *model.ContentSection) error {
	m.Inserts++
	s.ID = uuid.NewString()
	m.Sections[s.SectionName] = s
	return nil
}

func (m *MockContentRepo) Update(ctx context.Context, s *model.ContentSection) error {
	m.Updates++
	m.Sections[s.SectionName] = s
	return nil
}

func (m *MockContentRepo) List(ctx context.Context) ([]*model.ContentSection, error) {
	out := []*model.ContentSection{}
	for _, s := range m.Sections {
		out = append(out, s)
	}
	return out, nil
}

// ====================== Testimonials ======================

type MockTestimonialRepo struct {
	Items   []*model.Testimonial
	Err     error
	Inserts int
	Updates int
}

func (m *MockTestimonialRepo) ListActive(ctx context.Context) ([]*model.Testimonial, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []*model.Testimonial{}
	for _, t := range m.Items {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MockTestimonialRepo) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	return m.Items, m.Err
}

func (m *MockTestimonialRepo) Insert(ctx context.Context, t *model.Testimonial) error {
	m.Inserts++
	t.ID = uuid.NewString()
	m.Items = append(m.Items, t)
	return nil
}

func (m *MockTestimonialRepo) Update(ctx context.Context, t *model.Testimonial) error {
	for i, existing := range m.Items {
		if existing.ID == t.ID {
			m.Updates++
			m.Items[i] = t
			return nil
		}
	}
	return appErrors.NewNotFound("testimonial", t.ID)
}

func (m *MockTestimonialRepo) Delete(ctx context.Context, id string) error {
	for i, t := range m.Items {
		if t.ID == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return appErrors.NewNotFound("testimonial", id)
}

// ====================== FAQs ======================

type MockFAQRepo struct {
	Items []*model.FAQ
	Err   error
}

func (m *MockFAQRepo) ListActive(ctx context.Context) ([]*model.FAQ, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []*model.FAQ{}
	for _, f := range m.Items {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *MockFAQRepo) ListAll(ctx context.Context) ([]*model.FAQ, error) {
	return m.Items, m.Err
}

func (m *MockFAQRepo) Insert(ctx context.Context, f *model.FAQ) error {
	f.ID = uuid.NewString()
	m.Items = append(m.Items, f)
	return nil
}

func (m *MockFAQRepo) Update(ctx context.Context, f *model.FAQ) error {
	for i, existing := range m.Items {
		if existing.ID == f.ID {
			m.Items[i] = f
			return nil
		}
	}
	return appErrors.NewNotFound("faq", f.ID)
}

func (m *MockFAQRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *MockFAQRepo) Reorder(ctx context.Context, ids []string) error {
	for i, id := range ids {
		found := false
		for _, f := range m.Items {
			if f.ID == id {
				f.OrderIndex = i + 1
				found = true
			}
		}
		if !found {
			return appErrors.NewNotFound("faq", id)
		}
	}
	return nil
}

// ====================== Locations ======================

type MockLocationRepo struct {
	Items   map[string]*model.StoreLocation
	Err     error
	Updates int
}

func (m *MockLocationRepo) ListActive(ctx context.Context) ([]*model.StoreLocation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []*model.StoreLocation{}
	for _, l := range m.Items {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockLocationRepo) ListAll(ctx context.Context) ([]*model.StoreLocation, error) {
	out := []*model.StoreLocation{}
	for _, l := range m.Items {
		out = append(out, l)
	}
	return out, m.Err
}

func (m *MockLocationRepo) GetByID(ctx context.Context, id string) (*model.StoreLocation, error) {
	l, ok := m.Items[id]
	if !ok {
		return nil, appErrors.NewNotFound("store location", id)
	}
	cp := *l
	return &cp, nil
}

func (m *MockLocationRepo) Insert(ctx context.Context, l *model.StoreLocation) error {
	l.ID = uuid.NewString()
	m.Items[l.ID] = l
	return nil
}

func (m *MockLocationRepo) Update(ctx context.Context, l *model.StoreLocation) error {
	if _, ok := m.Items[l.ID]; !ok {
		return appErrors.NewNotFound("store location", l.ID)
	}
	m.Updates++
	m.Items[l.ID] = l
	return nil
}

func (m *MockLocationRepo) Delete(ctx context.Context, id string) error {
	delete(m.Items, id)
	return nil
}

// ====================== Settings ======================

type MockContactRepo struct {
	Row     *model.ContactSettings
	Err     error
	Inserts int
	Updates int
}

func (m *MockContactRepo) Get(ctx context.Context) (*model.ContactSettings, error) {
	return m.Row, m.Err
}

func (m *MockContactRepo) Insert(ctx context.Context, c *model.ContactSettings) error {
	m.Inserts++
	c.ID = uuid.NewString()
	m.Row = c
	return nil
}

func (m *MockContactRepo) Update(ctx context.Context, c *model.ContactSettings) error {
	m.Updates++
	m.Row = c
	return nil
}

type MockSiteSettingRepo struct {
	Values  map[string]*model.SiteSetting
	Err     error
	Inserts int
	Updates int
}

func NewMockSiteSettingRepo() *MockSiteSettingRepo {
	return &MockSiteSettingRepo{Values: map[string]*model.SiteSetting{}}
}

func (m *MockSiteSettingRepo) Get(ctx context.Context, key string) (*model.SiteSetting, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Values[key], nil
}

func (m *MockSiteSettingRepo) Insert(ctx context.Context, s *model.SiteSetting) error {
	m.Inserts++
	m.Values[s.Key] = s
	return nil
}

func (m *MockSiteSettingRepo) Update(ctx context.Context, s *model.SiteSetting) error {
	m.Updates++
	m.Values[s.Key] = s
	return nil
}

// ====================== Inquiries ======================

type MockInquiryRepo struct {
	mu          sync.Mutex
	Messages    map[string]*model.ContactMessage
	Subscribers map[string]*model.Subscriber
}

func NewMockInquiryRepo() *MockInquiryRepo {
	return &MockInquiryRepo{
		Messages:    map[string]*model.ContactMessage{},
		Subscribers: map[string]*model.Subscriber{},
	}
}

func (m *MockInquiryRepo) CreateMessage(ctx context.Context, msg *model.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = uuid.NewString()
	m.Messages[msg.ID] = msg
	return nil
}

func (m *MockInquiryRepo) GetMessage(ctx context.Context, id string) (*model.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.Messages[id]
	if !ok {
		return nil, nil
	}
	cp := *msg
	return &cp, nil
}

func (m *MockInquiryRepo) UpdateMessageStatus(ctx context.Context, id, status, lastError string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg, ok := m.Messages[id]; ok {
		msg.Status = status
		msg.LastError = lastError
	}
	return nil
}

func (m *MockInquiryRepo) ListMessages(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.ContactMessage{}
	for _, msg := range m.Messages {
		out = append(out, msg)
	}
	return out, nil
}

func (m *MockInquiryRepo) Subscribe(ctx context.Context, s *model.Subscriber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.Subscribers[s.Email]; ok {
		s.ID = existing.ID
		return nil
	}
	s.ID = uuid.NewString()
	m.Subscribers[s.Email] = s
	return nil
}

func (m *MockInquiryRepo) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	return nil, nil
}

func (m *MockInquiryRepo) Status(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Messages[id].Status
}

type MockQueue struct {
	Published []any
	Err       error
}

func (q *MockQueue) Publish(topic string, payload any) error {
	if q.Err != nil {
		return q.Err
	}
	q.Published = append(q.Published, payload)
	return nil
}

func (q *MockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}
