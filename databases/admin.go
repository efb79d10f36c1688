package databases

// go generate: mockery --name AdminDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kurup-associates/legal-office-api/models"
)

const adminName = "admins"
const adminResetName = "admin_resets"

// AdminDatabase contains the methods to use with the admin database
type AdminDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.AdminUser, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type adminDatabase struct {
	db DatabaseHelper
}

// NewAdminDatabase initializes a new instance of admin database with the provided db connection
func NewAdminDatabase(db DatabaseHelper) AdminDatabase {
	return &adminDatabase{
		db: db,
	}
}

func (a *adminDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.AdminUser, error) {
	admin := &models.AdminUser{}
	err := a.db.Collection(adminName).FindOne(ctx, filter, opts...).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (a *adminDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return a.db.Collection(adminName).UpdateOne(ctx, filter, update, opts...)
}

// AdminResetDatabase contains the methods to use with the admin password reset database
type AdminResetDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.AdminPasswordReset, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type adminResetDatabase struct {
	db DatabaseHelper
}

// NewAdminResetDatabase initializes a new instance of admin reset database with the provided db connection
func NewAdminResetDatabase(db DatabaseHelper) AdminResetDatabase {
	return &adminResetDatabase{
		db: db,
	}
}

func (r *adminResetDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.AdminPasswordReset, error) {
	reset := &models.AdminPasswordReset{}
	err := r.db.Collection(adminResetName).FindOne(ctx, filter, opts...).Decode(&reset)
	if err != nil {
		return nil, err
	}
	return reset, nil
}

func (r *adminResetDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res := r.db.Collection(adminResetName).InsertOne(ctx, document, opts...)
	return res, nil
}

func (r *adminResetDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return r.db.Collection(adminResetName).UpdateOne(ctx, filter, update, opts...)
}
