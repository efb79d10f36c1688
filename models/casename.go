package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CaseName holds the structure for the case_names collection, the source table for
// the case type dropdowns
type CaseName struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt interface{}        `json:"created_at" bson:"created_at"`
}
