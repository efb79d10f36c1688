package databases

// go generate: mockery --name ClerkUserDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const clerkUserName = "clerk_users"

// ClerkUserDatabase contains the methods to use with the clerk user database
type ClerkUserDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.ClerkUser, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.ClerkUser, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type clerkUserDatabase struct {
	db DatabaseHelper
}

// NewClerkUserDatabase initializes a new instance of clerk user database with the provided db connection
func NewClerkUserDatabase(db DatabaseHelper) ClerkUserDatabase {
	return &clerkUserDatabase{
		db: db,
	}
}

func (c *clerkUserDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.ClerkUser, error) {
	clerk := &models.ClerkUser{}
	err := c.db.Collection(clerkUserName).FindOne(ctx, filter, opts...).Decode(&clerk)
	if err != nil {
		return nil, err
	}
	return clerk, nil
}

func (c *clerkUserDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ClerkUser, error) {
	var clerks []models.ClerkUser
	cur := c.db.Collection(clerkUserName).Find(ctx, filter, opts...)
	err := cur.Decode(&clerks)
	if err != nil {
		return nil, err
	}
	return clerks, nil
}

func (c *clerkUserDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(clerkUserName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *clerkUserDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(clerkUserName).UpdateOne(ctx, filter, update, opts...)
}

func (c *clerkUserDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(clerkUserName).CountDocuments(ctx, filter, opts...)
}
