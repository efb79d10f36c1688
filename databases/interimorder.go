package databases

// go generate: mockery --name InterimOrderDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const interimOrderName = "interim_orders"

// NextDateWindow matches interim orders whose next hearing date falls within days
// of from. next_date is stored as an ISO date string, so a lexicographic range works.
func NextDateWindow(from time.Time, days int) bson.M {
	return bson.M{"next_date": bson.M{
		"$gte": from.Format("2006-01-02"),
		"$lte": from.AddDate(0, 0, days).Format("2006-01-02"),
	}}
}

// InterimOrderDatabase contains the methods to use with the interim order database.
// The register is append-mostly so no update or delete is exposed.
type InterimOrderDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.InterimOrder, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type interimOrderDatabase struct {
	db DatabaseHelper
}

// NewInterimOrderDatabase initializes a new instance of interim order database with the provided db connection
func NewInterimOrderDatabase(db DatabaseHelper) InterimOrderDatabase {
	return &interimOrderDatabase{
		db: db,
	}
}

func (c *interimOrderDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.InterimOrder, error) {
	var orders []models.InterimOrder
	cur := c.db.Collection(interimOrderName).Find(ctx, filter, opts...)
	err := cur.Decode(&orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *interimOrderDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := c.db.Collection(interimOrderName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (c *interimOrderDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(interimOrderName).CountDocuments(ctx, filter, opts...)
}
