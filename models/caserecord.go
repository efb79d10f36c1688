package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Terminal case statuses. Anything else counts as an active case.
const (
	CaseStatusClosed   = "Closed"
	CaseStatusArchived = "Archived"
)

// CaseRecord holds the structure for the cases collection
type CaseRecord struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CaseName   string             `json:"case_name" bson:"case_name"`
	CaseNo     int                `json:"case_no" bson:"case_no"`
	CaseYear   int                `json:"case_year" bson:"case_year"`
	Name       string             `json:"name" bson:"name"`
	Society    string             `json:"society" bson:"society"`
	Lawyer     string             `json:"lawyer" bson:"lawyer"`
	Represents string             `json:"represents" bson:"represents"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  interface{}        `json:"created_at" bson:"created_at"`
	UpdatedAt  interface{}        `json:"updated_at" bson:"updated_at"`
}
