package databases

// go generate: mockery --name TransactionDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const transactionName = "transactions"

// TransactionDatabase contains the methods to use with the transaction database
type TransactionDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Transaction, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
}

type transactionDatabase struct {
	db DatabaseHelper
}

// NewTransactionDatabase initializes a new instance of transaction database with the provided db connection
func NewTransactionDatabase(db DatabaseHelper) TransactionDatabase {
	return &transactionDatabase{
		db: db,
	}
}

func (c *transactionDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Transaction, error) {
	var transactions []models.Transaction
	cur := c.db.Collection(transactionName).Find(ctx, filter, opts...)
	err := cur.Decode(&transactions)
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *transactionDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(transactionName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *transactionDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(transactionName).DeleteOne(ctx, filter, opts...)
}
