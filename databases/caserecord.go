package databases

// go generate: mockery --name CaseRecordDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const caseName = "cases"

// CaseRecordDatabase contains the methods to use with the case record database
type CaseRecordDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.CaseRecord, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.CaseRecord, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type caseRecordDatabase struct {
	db DatabaseHelper
}

// NewCaseRecordDatabase initializes a new instance of case record database with the provided db connection
func NewCaseRecordDatabase(db DatabaseHelper) CaseRecordDatabase {
	return &caseRecordDatabase{
		db: db,
	}
}

func (c *caseRecordDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.CaseRecord, error) {
	caseRecord := &models.CaseRecord{}
	err := c.db.Collection(caseName).FindOne(ctx, filter, opts...).Decode(&caseRecord)
	if err != nil {
		return nil, err
	}
	return caseRecord, nil
}

func (c *caseRecordDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.CaseRecord, error) {
	var caseRecords []models.CaseRecord
	cur := c.db.Collection(caseName).Find(ctx, filter, opts...)
	err := cur.Decode(&caseRecords)
	if err != nil {
		return nil, err
	}
	return caseRecords, nil
}

func (c *caseRecordDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(caseName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *caseRecordDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(caseName).UpdateOne(ctx, filter, update, opts...)
}

func (c *caseRecordDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(caseName).DeleteOne(ctx, filter, opts...)
}

func (c *caseRecordDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(caseName).CountDocuments(ctx, filter, opts...)
}
