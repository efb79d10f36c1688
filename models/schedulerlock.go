package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SchedulerLock is the singleton lock document that keeps cron jobs from running on
// more than one instance at a time
type SchedulerLock struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobName    string             `bson:"jobName" json:"jobName"`
	InstanceID string             `bson:"instanceId" json:"instanceId"`
	ExpiresAt  interface{}        `bson:"expiresAt" json:"expiresAt"`
	AcquiredAt interface{}        `bson:"acquiredAt" json:"acquiredAt"`
}
