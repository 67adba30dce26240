package databases

// go generate: mockery --name WorkRecordDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/advocatehq/advocate-practice-api/models"
)

// WorkRecordDatabase contains the methods to use with the workRecords database
type WorkRecordDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.WorkRecord, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.WorkRecord, error)
	InsertOne(ctx context.Context, record models.WorkRecord, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type workRecordDatabase struct {
	db DatabaseHelper
}

// NewWorkRecordDatabase initializes a new instance of work record database with the provided db connection
func NewWorkRecordDatabase(db DatabaseHelper) WorkRecordDatabase {
	return &workRecordDatabase{
		db: db,
	}
}

func (w *workRecordDatabase) FindOne(ctx context.Context, filter interface{}) (*models.WorkRecord, error) {
	record := &models.WorkRecord{}
	err := w.db.Collection(WorkRecordCollection).FindOne(ctx, filter).Decode(&record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (w *workRecordDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.WorkRecord, error) {
	var records []models.WorkRecord
	err := w.db.Collection(WorkRecordCollection).Find(ctx, filter, opts...).Decode(&records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (w *workRecordDatabase) InsertOne(ctx context.Context, record models.WorkRecord, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return w.db.Collection(WorkRecordCollection).InsertOne(ctx, record, opts...)
}

func (w *workRecordDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := w.db.Collection(WorkRecordCollection).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (w *workRecordDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return w.db.Collection(WorkRecordCollection).DeleteOne(ctx, filter, opts...)
}

func (w *workRecordDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return w.db.Collection(WorkRecordCollection).CountDocuments(ctx, filter, opts...)
}
