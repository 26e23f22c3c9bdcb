// Package testutil builds throwaway SQLite databases, miniredis servers and
// recording collaborators for package tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"hospital-admin-api/internal/infrastructure/database"
	"hospital-admin-api/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// Errors are left untranslated, as on the PostgreSQL connection.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// NewRedis starts a miniredis server and a client pointed at it
func NewRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

// NewLogger returns a logger that writes nowhere
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// RecordingPublisher keeps every published event in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	events []service.AppointmentEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, event service.AppointmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

func (p *RecordingPublisher) Close() error { return nil }

// Events returns a copy of what was published so far
func (p *RecordingPublisher) Events() []service.AppointmentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]service.AppointmentEvent, len(p.events))
	copy(out, p.events)
	return out
}

// Types lists the event types in publish order
func (p *RecordingPublisher) Types() []string {
	events := p.Events()
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}
