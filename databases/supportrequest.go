package databases

// go generate: mockery --name SupportRequestDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const supportRequestName = "support_requests"

// SupportRequestDatabase contains the methods to use with the support request database
type SupportRequestDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.SupportRequest, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.SupportRequest, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type supportRequestDatabase struct {
	db DatabaseHelper
}

// NewSupportRequestDatabase initializes a new instance of support request database with the provided db connection
func NewSupportRequestDatabase(db DatabaseHelper) SupportRequestDatabase {
	return &supportRequestDatabase{
		db: db,
	}
}

func (c *supportRequestDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.SupportRequest, error) {
	request := &models.SupportRequest{}
	err := c.db.Collection(supportRequestName).FindOne(ctx, filter, opts...).Decode(&request)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (c *supportRequestDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.SupportRequest, error) {
	var requests []models.SupportRequest
	cur := c.db.Collection(supportRequestName).Find(ctx, filter, opts...)
	err := cur.Decode(&requests)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *supportRequestDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(supportRequestName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *supportRequestDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(supportRequestName).UpdateOne(ctx, filter, update, opts...)
}
