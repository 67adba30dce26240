package databases

// go generate: mockery --name BriefDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/advocatehq/advocate-practice-api/models"
)

// BriefDatabase contains the methods to use with the briefs database
type BriefDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Brief, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Brief, error)
	InsertOne(ctx context.Context, brief models.Brief, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type briefDatabase struct {
	db DatabaseHelper
}

// NewBriefDatabase initializes a new instance of brief database with the provided db connection
func NewBriefDatabase(db DatabaseHelper) BriefDatabase {
	return &briefDatabase{
		db: db,
	}
}

func (b *briefDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Brief, error) {
	brief := &models.Brief{}
	err := b.db.Collection(BriefCollection).FindOne(ctx, filter).Decode(&brief)
	if err != nil {
		return nil, err
	}
	return brief, nil
}

func (b *briefDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Brief, error) {
	var briefs []models.Brief
	err := b.db.Collection(BriefCollection).Find(ctx, filter, opts...).Decode(&briefs)
	if err != nil {
		return nil, err
	}
	return briefs, nil
}

func (b *briefDatabase) InsertOne(ctx context.Context, brief models.Brief, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return b.db.Collection(BriefCollection).InsertOne(ctx, brief, opts...)
}

func (b *briefDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := b.db.Collection(BriefCollection).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (b *briefDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return b.db.Collection(BriefCollection).DeleteOne(ctx, filter, opts...)
}

func (b *briefDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return b.db.Collection(BriefCollection).CountDocuments(ctx, filter, opts...)
}
