package databases

// go generate: mockery --name MatterDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/advocatehq/advocate-practice-api/models"
)

// MatterDatabase contains the methods to use with the matter database
type MatterDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Matter, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Matter, error)
	InsertOne(ctx context.Context, matter models.Matter, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type matterDatabase struct {
	db DatabaseHelper
}

// NewMatterDatabase initializes a new instance of matter database with the provided db connection
func NewMatterDatabase(db DatabaseHelper) MatterDatabase {
	return &matterDatabase{
		db: db,
	}
}

func (m *matterDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Matter, error) {
	matter := &models.Matter{}
	err := m.db.Collection(MatterCollection).FindOne(ctx, filter).Decode(&matter)
	if err != nil {
		return nil, err
	}
	return matter, nil
}

func (m *matterDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Matter, error) {
	var matters []models.Matter
	err := m.db.Collection(MatterCollection).Find(ctx, filter, opts...).Decode(&matters)
	if err != nil {
		return nil, err
	}
	return matters, nil
}

func (m *matterDatabase) InsertOne(ctx context.Context, matter models.Matter, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return m.db.Collection(MatterCollection).InsertOne(ctx, matter, opts...)
}

func (m *matterDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := m.db.Collection(MatterCollection).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (m *matterDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return m.db.Collection(MatterCollection).DeleteOne(ctx, filter, opts...)
}

func (m *matterDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return m.db.Collection(MatterCollection).CountDocuments(ctx, filter, opts...)
}
