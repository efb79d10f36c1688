package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Transaction types for the office ledger
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction holds the structure for the transactions collection
type Transaction struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type            string             `json:"type" bson:"type"`
	Category        string             `json:"category" bson:"category"`
	Amount          float64            `json:"amount" bson:"amount"`
	Date            string             `json:"date" bson:"date"`
	Description     string             `json:"description" bson:"description"`
	ReferenceNumber string             `json:"reference_number,omitempty" bson:"reference_number,omitempty"`
	PaymentMethod   string             `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	CreatedAt       interface{}        `json:"created_at" bson:"created_at"`
}
