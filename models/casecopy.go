package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CaseCopy holds the structure for the case_copies collection. Case number and year
// are stored as strings here, matching the copy intake forms.
type CaseCopy struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CaseName  string             `json:"case_name" bson:"case_name"`
	CaseNo    string             `json:"case_no" bson:"case_no"`
	CaseYear  string             `json:"case_year" bson:"case_year"`
	DocType   string             `json:"doctype" bson:"doctype"`
	Date      string             `json:"date" bson:"date"`
	CreatedAt interface{}        `json:"created_at" bson:"created_at"`
}
