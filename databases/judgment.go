package databases

// go generate: mockery --name JudgmentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const judgmentName = "judgments"

// JudgmentDatabase contains the methods to use with the judgment database
type JudgmentDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Judgment, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Judgment, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type judgmentDatabase struct {
	db DatabaseHelper
}

// NewJudgmentDatabase initializes a new instance of judgment database with the provided db connection
func NewJudgmentDatabase(db DatabaseHelper) JudgmentDatabase {
	return &judgmentDatabase{
		db: db,
	}
}

func (c *judgmentDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Judgment, error) {
	judgment := &models.Judgment{}
	err := c.db.Collection(judgmentName).FindOne(ctx, filter, opts...).Decode(&judgment)
	if err != nil {
		return nil, err
	}
	return judgment, nil
}

func (c *judgmentDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Judgment, error) {
	var judgments []models.Judgment
	cur := c.db.Collection(judgmentName).Find(ctx, filter, opts...)
	err := cur.Decode(&judgments)
	if err != nil {
		return nil, err
	}
	return judgments, nil
}

func (c *judgmentDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(judgmentName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *judgmentDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(judgmentName).DeleteOne(ctx, filter, opts...)
}

func (c *judgmentDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(judgmentName).CountDocuments(ctx, filter, opts...)
}
