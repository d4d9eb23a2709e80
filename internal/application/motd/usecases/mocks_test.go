package usecases

import (
	"context"
	"sync"

	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/shared/logger"
)

type mockMOTDRepository struct {
	ListFunc   func(ctx context.Context, lang string) ([]*motd.MOTD, error)
	AddFunc    func(ctx context.Context, lang string, m *motd.MOTD) error
	RemoveFunc func(ctx context.Context, lang string, m *motd.MOTD) error

	mu    sync.Mutex
	calls []string
}

func (m *mockMOTDRepository) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockMOTDRepository) List(ctx context.Context, lang string) ([]*motd.MOTD, error) {
	m.record("list")
	if m.ListFunc != nil {
		return m.ListFunc(ctx, lang)
	}
	return nil, nil
}

func (m *mockMOTDRepository) Add(ctx context.Context, lang string, item *motd.MOTD) error {
	m.record("add:" + item.String())
	if m.AddFunc != nil {
		return m.AddFunc(ctx, lang, item)
	}
	return nil
}

func (m *mockMOTDRepository) Remove(ctx context.Context, lang string, item *motd.MOTD) error {
	m.record("remove:" + item.String())
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, lang, item)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func strPtr(s string) *string { return &s }

func testLanguages() *LanguagePolicy {
	return NewLanguagePolicy([]string{"de", "en", "fr"})
}
