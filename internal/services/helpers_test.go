package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "neighbortask.com/neighbortask/internal/configs"
	"neighbortask.com/neighbortask/internal/fixtures"
	model "neighbortask.com/neighbortask/internal/models"
	"neighbortask.com/neighbortask/internal/queue"
	"neighbortask.com/neighbortask/internal/session"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database per test keeps fixture mutations from
	// leaking between tests sharing the process cache.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := fixtures.Seed(db); err != nil {
		t.Fatalf("failed to seed fixtures: %v", err)
	}

	return db
}

// memorySnapshotStore is an in-memory session.SnapshotStore for tests.
type memorySnapshotStore struct {
	mu   sync.Mutex
	user *model.User
}

func (m *memorySnapshotStore) Save(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *user
	m.user = &copied
	return nil
}

func (m *memorySnapshotStore) Load(_ context.Context) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil, session.ErrNoSnapshot
	}
	copied := *m.user
	return &copied, nil
}

func (m *memorySnapshotStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	return nil
}

// mockTokenManager is a simple in-memory token manager for testing.
type mockTokenManager struct {
	mu     sync.Mutex
	tokens int
}

func newMockTokenManager(capacity int) *mockTokenManager {
	return &mockTokenManager{tokens: capacity}
}

func (m *mockTokenManager) AcquireToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens <= 0 {
		return queue.ErrNoTokenAvailable
	}
	m.tokens--
	return nil
}

func (m *mockTokenManager) ReleaseToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens++
	return nil
}

func (m *mockTokenManager) InitializeTokens(ctx context.Context, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = count
	return nil
}

// noopNotifier satisfies Notifier for tests that don't care about delivery.
type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, string, string, string) error { return nil }
