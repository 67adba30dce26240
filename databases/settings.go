package databases

// go generate: mockery --name SettingsDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/advocatehq/advocate-practice-api/models"
)

// SettingsDatabase contains the methods to use with the per-user settings
// singleton
type SettingsDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Settings, error)
	InsertOne(ctx context.Context, settings models.Settings, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
}

type settingsDatabase struct {
	db DatabaseHelper
}

// NewSettingsDatabase initializes a new instance of settings database with the provided db connection
func NewSettingsDatabase(db DatabaseHelper) SettingsDatabase {
	return &settingsDatabase{
		db: db,
	}
}

func (s *settingsDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Settings, error) {
	settings := &models.Settings{}
	err := s.db.Collection(SettingsCollection).FindOne(ctx, filter).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsDatabase) InsertOne(ctx context.Context, settings models.Settings, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return s.db.Collection(SettingsCollection).InsertOne(ctx, settings, opts...)
}

func (s *settingsDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := s.db.Collection(SettingsCollection).UpdateOne(ctx, filter, update, opts...)
	return err
}
