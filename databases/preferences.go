package databases

// go generate: mockery --name PreferencesDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/advocatehq/advocate-practice-api/models"
)

// PreferencesDatabase contains the methods to use with the per-user
// preferences collection
type PreferencesDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.DraftingPreferences, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
}

type preferencesDatabase struct {
	db DatabaseHelper
}

// NewPreferencesDatabase initializes a new instance of preferences database with the provided db connection
func NewPreferencesDatabase(db DatabaseHelper) PreferencesDatabase {
	return &preferencesDatabase{
		db: db,
	}
}

func (p *preferencesDatabase) FindOne(ctx context.Context, filter interface{}) (*models.DraftingPreferences, error) {
	prefs := &models.DraftingPreferences{}
	err := p.db.Collection(PreferencesCollection).FindOne(ctx, filter).Decode(&prefs)
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (p *preferencesDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := p.db.Collection(PreferencesCollection).UpdateOne(ctx, filter, update, opts...)
	return err
}
