package mocks

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// MockTransactionRepository is a map-backed mock of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Transaction

	InsertFunc      func(ctx context.Context, tx *domain.Transaction) error
	ExistsFunc      func(ctx context.Context, id string) (bool, error)
	ListFunc        func(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListByMonthFunc func(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		records: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Insert(ctx context.Context, tx *domain.Transaction) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[tx.ID]; ok {
		return nil // idempotent no-op on collision
	}
	m.records[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.records[id]
	return ok, nil
}

func (m *MockTransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	all := m.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *MockTransactionRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Transaction, error) {
	if m.ListByMonthFunc != nil {
		return m.ListByMonthFunc(ctx, year, month)
	}
	var out []*domain.Transaction
	for _, tx := range m.sorted() {
		if tx.OccurredAt.Year() == year && tx.OccurredAt.Month() == month {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Len reports the number of stored records.
func (m *MockTransactionRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Get returns a stored record by identity, or nil.
func (m *MockTransactionRepository) Get(id string) *domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records[id]
}

func (m *MockTransactionRepository) sorted() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Transaction, 0, len(m.records))
	for _, tx := range m.records {
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].OccurredAt.After(out[j].OccurredAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MockStagingRepository is a map-backed mock of StagingRepository.
type MockStagingRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Transaction

	EnqueueFunc func(ctx context.Context, tx *domain.Transaction) error
	GetFunc     func(ctx context.Context, id string) (*domain.Transaction, error)
	ListFunc    func(ctx context.Context) ([]*domain.Transaction, error)
	RemoveFunc  func(ctx context.Context, id string) error
}

func NewMockStagingRepository() *MockStagingRepository {
	return &MockStagingRepository{
		records: make(map[string]*domain.Transaction),
	}
}

func (m *MockStagingRepository) Enqueue(ctx context.Context, tx *domain.Transaction) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[tx.ID] = tx
	return nil
}

func (m *MockStagingRepository) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.records[id]; ok {
		return tx, nil
	}
	return nil, domain.ErrNotStaged
}

func (m *MockStagingRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Transaction, 0, len(m.records))
	for _, tx := range m.records {
		out = append(out, tx)
	}
	return out, nil
}

func (m *MockStagingRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

// Len reports the number of staged records.
func (m *MockStagingRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// MockSettingsStore is an in-memory mock of SettingsStore.
type MockSettingsStore struct {
	mu          sync.RWMutex
	autoConfirm bool
	set         bool

	AutoConfirmFunc    func(ctx context.Context) (bool, error)
	SetAutoConfirmFunc func(ctx context.Context, enabled bool) error
}

func NewMockSettingsStore() *MockSettingsStore {
	return &MockSettingsStore{}
}

func (m *MockSettingsStore) AutoConfirm(ctx context.Context) (bool, error) {
	if m.AutoConfirmFunc != nil {
		return m.AutoConfirmFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return true, nil // default when never set
	}
	return m.autoConfirm, nil
}

func (m *MockSettingsStore) SetAutoConfirm(ctx context.Context, enabled bool) error {
	if m.SetAutoConfirmFunc != nil {
		return m.SetAutoConfirmFunc(ctx, enabled)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoConfirm = enabled
	m.set = true
	return nil
}

// MockExtractor is a mock of MessageExtractor.
type MockExtractor struct {
	ExtractFunc func(sender, body string) (*domain.Transaction, bool)
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

func (m *MockExtractor) Extract(sender, body string) (*domain.Transaction, bool) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(sender, body)
	}
	return nil, false
}

// MockPublisher records published transactions.
type MockPublisher struct {
	mu        sync.Mutex
	published []*domain.Transaction
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(tx *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, tx)
}

// Count reports the number of published transactions.
func (m *MockPublisher) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.published)
}

// MockInboxSource serves a fixed message list.
type MockInboxSource struct {
	mu       sync.RWMutex
	messages []usecase.InboxMessage

	FetchLatestFunc func(ctx context.Context, limit int) ([]usecase.InboxMessage, error)
	PingFunc        func(ctx context.Context) error
}

func NewMockInboxSource() *MockInboxSource {
	return &MockInboxSource{}
}

// Add appends messages to the mock inbox.
func (m *MockInboxSource) Add(messages ...usecase.InboxMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, messages...)
}

// FetchLatest returns up to limit messages, most recent first.
func (m *MockInboxSource) FetchLatest(ctx context.Context, limit int) ([]usecase.InboxMessage, error) {
	if m.FetchLatestFunc != nil {
		return m.FetchLatestFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sorted := make([]usecase.InboxMessage, len(m.messages))
	copy(sorted, m.messages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ReceivedAt.After(sorted[j].ReceivedAt)
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *MockInboxSource) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockIDGenerator returns sequential IDs unless overridden.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "mock-id-" + strconv.Itoa(m.next)
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}
