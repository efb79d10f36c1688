package databases

// go generate: mockery --name CaseNameDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const caseNameName = "case_names"

// CaseNameDatabase contains the methods to use with the case name database
type CaseNameDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.CaseName, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type caseNameDatabase struct {
	db DatabaseHelper
}

// NewCaseNameDatabase initializes a new instance of case name database with the provided db connection
func NewCaseNameDatabase(db DatabaseHelper) CaseNameDatabase {
	return &caseNameDatabase{
		db: db,
	}
}

func (c *caseNameDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.CaseName, error) {
	var caseNames []models.CaseName
	cur := c.db.Collection(caseNameName).Find(ctx, filter, opts...)
	err := cur.Decode(&caseNames)
	if err != nil {
		return nil, err
	}
	return caseNames, nil
}

func (c *caseNameDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(caseNameName).InsertOne(ctx, document, opts...)
	return res, nil
}
