package databases

// go generate: mockery --name SchedulerLockDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const schedulerLockName = "scheduler_locks"

// SchedulerLockDatabase coordinates singleton cron jobs across instances. The
// scheduler_locks collection carries a unique index on jobName so racing upserts
// collide instead of double-inserting.
type SchedulerLockDatabase interface {
	TryAcquireLock(ctx context.Context, jobName, instanceID string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, jobName, instanceID string) error
}

type schedulerLockDatabase struct {
	db DatabaseHelper
}

// NewSchedulerLockDatabase initializes a new instance of scheduler lock database with the provided db connection
func NewSchedulerLockDatabase(db DatabaseHelper) SchedulerLockDatabase {
	return &schedulerLockDatabase{
		db: db,
	}
}

// TryAcquireLock upserts the lock document for jobName if it is free or expired.
// A zero MatchedCount with no upsert means another live instance holds it.
func (s *schedulerLockDatabase) TryAcquireLock(ctx context.Context, jobName, instanceID string, ttl time.Duration) (bool, error) {
	now := time.Now()
	filter := bson.M{
		"jobName": jobName,
		"$or": []bson.M{
			{"expiresAt": bson.M{"$lt": primitive.NewDateTimeFromTime(now)}},
			{"instanceId": instanceID},
		},
	}
	update := bson.M{"$set": models.SchedulerLock{
		JobName:    jobName,
		InstanceID: instanceID,
		AcquiredAt: primitive.NewDateTimeFromTime(now),
		ExpiresAt:  primitive.NewDateTimeFromTime(now.Add(ttl)),
	}}
	upsert := true
	res, err := s.db.Collection(schedulerLockName).UpdateOne(ctx, filter, update, &options.UpdateOptions{Upsert: &upsert})
	if err != nil {
		// Losing the upsert race trips the unique index on jobName; anything
		// else is a real failure the caller needs to see
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return res.MatchedCount > 0 || res.UpsertedCount > 0, nil
}

func (s *schedulerLockDatabase) ReleaseLock(ctx context.Context, jobName, instanceID string) error {
	return s.db.Collection(schedulerLockName).DeleteOne(ctx, bson.M{"jobName": jobName, "instanceId": instanceID})
}
