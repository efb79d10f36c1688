package databases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kurup-associates/legal-office-api/databases"
	"github.com/kurup-associates/legal-office-api/databases/mocks"
)

func TestSchedulerLockDatabase_TryAcquireLock(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{UpsertedCount: 1}, nil)
	db.On("Collection", "scheduler_locks").Return(conn)

	lockDB := databases.NewSchedulerLockDatabase(db)

	acquired, err := lockDB.TryAcquireLock(context.Background(), "hearing_digest_job", "web.1", 10*time.Minute)
	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestSchedulerLockDatabase_TryAcquireLockHeldElsewhere(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	// Losing the upsert race hits the unique jobName index; that is "held", not
	// an error
	dupErr := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, dupErr)
	db.On("Collection", "scheduler_locks").Return(conn)

	lockDB := databases.NewSchedulerLockDatabase(db)

	acquired, err := lockDB.TryAcquireLock(context.Background(), "hearing_digest_job", "web.1", 10*time.Minute)
	assert.NoError(t, err)
	assert.False(t, acquired)
}

func TestSchedulerLockDatabase_TryAcquireLockDBError(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("mocked-error"))
	db.On("Collection", "scheduler_locks").Return(conn)

	lockDB := databases.NewSchedulerLockDatabase(db)

	acquired, err := lockDB.TryAcquireLock(context.Background(), "hearing_digest_job", "web.1", 10*time.Minute)
	assert.EqualError(t, err, "mocked-error")
	assert.False(t, acquired)
}
