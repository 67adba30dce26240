package databases

// go generate: mockery --name AttorneyFirmDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/advocatehq/advocate-practice-api/models"
)

// AttorneyFirmDatabase contains the methods to use with the attorneys database
type AttorneyFirmDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.AttorneyFirm, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.AttorneyFirm, error)
	InsertOne(ctx context.Context, firm models.AttorneyFirm, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type attorneyFirmDatabase struct {
	db DatabaseHelper
}

// NewAttorneyFirmDatabase initializes a new instance of attorney firm database with the provided db connection
func NewAttorneyFirmDatabase(db DatabaseHelper) AttorneyFirmDatabase {
	return &attorneyFirmDatabase{
		db: db,
	}
}

func (a *attorneyFirmDatabase) FindOne(ctx context.Context, filter interface{}) (*models.AttorneyFirm, error) {
	firm := &models.AttorneyFirm{}
	err := a.db.Collection(AttorneyCollection).FindOne(ctx, filter).Decode(&firm)
	if err != nil {
		return nil, err
	}
	return firm, nil
}

func (a *attorneyFirmDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.AttorneyFirm, error) {
	var firms []models.AttorneyFirm
	err := a.db.Collection(AttorneyCollection).Find(ctx, filter, opts...).Decode(&firms)
	if err != nil {
		return nil, err
	}
	return firms, nil
}

func (a *attorneyFirmDatabase) InsertOne(ctx context.Context, firm models.AttorneyFirm, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return a.db.Collection(AttorneyCollection).InsertOne(ctx, firm, opts...)
}

func (a *attorneyFirmDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := a.db.Collection(AttorneyCollection).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (a *attorneyFirmDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return a.db.Collection(AttorneyCollection).DeleteOne(ctx, filter, opts...)
}

func (a *attorneyFirmDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return a.db.Collection(AttorneyCollection).CountDocuments(ctx, filter, opts...)
}
