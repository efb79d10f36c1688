package databases

// go generate: mockery --name CaseCopyDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const caseCopyName = "case_copies"

// CaseCopyDatabase contains the methods to use with the case copy database
type CaseCopyDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.CaseCopy, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
}

type caseCopyDatabase struct {
	db DatabaseHelper
}

// NewCaseCopyDatabase initializes a new instance of case copy database with the provided db connection
func NewCaseCopyDatabase(db DatabaseHelper) CaseCopyDatabase {
	return &caseCopyDatabase{
		db: db,
	}
}

func (c *caseCopyDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.CaseCopy, error) {
	var copies []models.CaseCopy
	cur := c.db.Collection(caseCopyName).Find(ctx, filter, opts...)
	err := cur.Decode(&copies)
	if err != nil {
		return nil, err
	}
	return copies, nil
}

func (c *caseCopyDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(caseCopyName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *caseCopyDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(caseCopyName).DeleteOne(ctx, filter, opts...)
}
