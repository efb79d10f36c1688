package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Release holds the structure for the releases collection, the in-app release notes
// shown on the dashboard
type Release struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Version    string             `json:"version" bson:"version"`
	Title      string             `json:"title" bson:"title"`
	Notes      string             `json:"notes" bson:"notes"`
	ReleasedAt string             `json:"released_at" bson:"released_at"`
	CreatedAt  interface{}        `json:"created_at" bson:"created_at"`
}
