package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Judgment holds the structure for the judgments collection
type Judgment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CaseName     string             `json:"case_name" bson:"case_name"`
	CaseNo       string             `json:"case_no" bson:"case_no"`
	CaseYear     string             `json:"case_year" bson:"case_year"`
	JudgeName    string             `json:"judge_name,omitempty" bson:"judge_name,omitempty"`
	JudgmentDate string             `json:"judgment_date,omitempty" bson:"judgment_date,omitempty"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	FileURL      string             `json:"file_url,omitempty" bson:"file_url,omitempty"`
	CreatedAt    interface{}        `json:"created_at" bson:"created_at"`
}
