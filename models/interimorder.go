package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InterimOrder holds the structure for the interim_orders collection. Orders are
// append-mostly: the register exposes no edit or delete.
type InterimOrder struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CaseName    string             `json:"case_name" bson:"case_name"`
	CaseNo      int                `json:"case_no" bson:"case_no"`
	CaseYear    int                `json:"case_year" bson:"case_year"`
	UndatedText string             `json:"undated_text,omitempty" bson:"undated_text,omitempty"`
	NextDate    string             `json:"next_date,omitempty" bson:"next_date,omitempty"`
	OrderDate   string             `json:"order_date,omitempty" bson:"order_date,omitempty"`
	CreatedAt   interface{}        `json:"created_at" bson:"created_at"`
}
