package databases

// go generate: mockery --name ReleaseDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const releaseName = "releases"

// ReleaseDatabase contains the methods to use with the release database
type ReleaseDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Release, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type releaseDatabase struct {
	db DatabaseHelper
}

// NewReleaseDatabase initializes a new instance of release database with the provided db connection
func NewReleaseDatabase(db DatabaseHelper) ReleaseDatabase {
	return &releaseDatabase{
		db: db,
	}
}

func (c *releaseDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Release, error) {
	var releases []models.Release
	cur := c.db.Collection(releaseName).Find(ctx, filter, opts...)
	err := cur.Decode(&releases)
	if err != nil {
		return nil, err
	}
	return releases, nil
}

func (c *releaseDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(releaseName).InsertOne(ctx, document, opts...)
	return res, nil
}
