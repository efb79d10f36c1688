package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Support ticket statuses. Transitions are unrestricted; the console may move a
// ticket from Closed back to Open.
const (
	SupportStatusOpen       = "Open"
	SupportStatusInProgress = "In Progress"
	SupportStatusResolved   = "Resolved"
	SupportStatusClosed     = "Closed"
)

// Support ticket priorities
const (
	SupportPriorityLow      = "Low"
	SupportPriorityMedium   = "Medium"
	SupportPriorityHigh     = "High"
	SupportPriorityCritical = "Critical"
)

// SupportRequest holds the structure for the support_requests collection
type SupportRequest struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserEmail     string             `json:"user_email" bson:"user_email"`
	Type          string             `json:"type" bson:"type"`
	Subject       string             `json:"subject" bson:"subject"`
	Message       string             `json:"message" bson:"message"`
	Priority      string             `json:"priority" bson:"priority"`
	Status        string             `json:"status" bson:"status"`
	AdminResponse string             `json:"admin_response,omitempty" bson:"admin_response,omitempty"`
	CreatedAt     interface{}        `json:"created_at" bson:"created_at"`
}
