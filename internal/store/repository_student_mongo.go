// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewConnectMongo connects to the MongoDB deployment at cfg.URL and pings it.
func NewConnectMongo(ctx context.Context, cfg config.Storage, log *logger.Logger) (*mongo.Client, error) {
	connectCtx, cancel := withTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.RequestTimeout > 0 {
		opts.SetTimeout(cfg.RequestTimeout)
	}

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("mongodb connection failed")
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("mongodb ping failed")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to mongodb successfully")

	return client, nil
}

// BSON dates hold milliseconds.
const bsonTimePrecision = time.Millisecond

// mongoStudentRepository is the [StudentRepository] for a MongoDB
// collection. Documents use the generated record ID as _id.
type mongoStudentRepository struct {
	collection *mongo.Collection
	newID      func() string
	logger     *logger.Logger
}

// NewMongoStudentRepository returns a [StudentRepository] over collection
// after making sure the unique index on the national ID exists.
func NewMongoStudentRepository(ctx context.Context, collection *mongo.Collection, logger *logger.Logger) (StudentRepository, error) {
	logger.Debug().Str("collection", collection.Name()).Msg("creating mongo student repository")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: columnNationalID, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("dni_unique"),
	})
	if err != nil {
		logger.Err(err).Str("func", "NewMongoStudentRepository").Msg("failed to ensure national id index")
		return nil, fmt.Errorf("failed to ensure national id index: %w", err)
	}

	return &mongoStudentRepository{
		collection: collection,
		newID:      utils.NewID,
		logger:     logger,
	}, nil
}

func (r *mongoStudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	exists, err := r.NationalIDExists(ctx, student.NationalID(), "")
	if err != nil {
		return models.Student{}, err
	}
	if exists {
		return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
	}

	row := newStudentRow(student).withID(r.newID()).truncated(bsonTimePrecision)
	stored, err := row.toModel()
	if err != nil {
		return models.Student{}, models.NewStoreError(opCreate, err)
	}

	if _, err = r.collection.InsertOne(ctx, row); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
		}
		logger.FromContext(ctx).Err(err).Str("func", "mongoStudentRepository.Create").Msg("insert failed")
		return models.Student{}, models.NewStoreError(opCreate, err)
	}

	return stored, nil
}

func (r *mongoStudentRepository) GetByID(ctx context.Context, id string) (models.Student, bool, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoStudentRepository) GetByNationalID(ctx context.Context, nationalID string) (models.Student, bool, error) {
	return r.findOne(ctx, bson.D{{Key: columnNationalID, Value: models.NormalizeNationalID(nationalID)}})
}

func (r *mongoStudentRepository) findOne(ctx context.Context, filter bson.D) (models.Student, bool, error) {
	var row studentRow
	err := r.collection.FindOne(ctx, filter).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Student{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoStudentRepository.findOne").Msg("find failed")
		return models.Student{}, false, models.NewStoreError(opRead, fmt.Errorf("%w: %w", ErrReadingDocument, err))
	}

	s, err := row.toModel()
	if err != nil {
		return models.Student{}, false, models.NewStoreError(opRead, err)
	}
	return s, true, nil
}

func (r *mongoStudentRepository) List(ctx context.Context) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: columnFamilyName, Value: 1},
		{Key: columnGivenName, Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoStudentRepository.List").Msg("find failed")
		return nil, models.NewStoreError(opList, err)
	}

	var rows []studentRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, models.NewStoreError(opList, fmt.Errorf("%w: %w", ErrReadingDocument, err))
	}

	students, err := rowsToModels(rows)
	if err != nil {
		return nil, models.NewStoreError(opList, err)
	}
	return students, nil
}

func (r *mongoStudentRepository) Update(ctx context.Context, student models.Student) (models.Student, error) {
	_, found, err := r.GetByID(ctx, student.ID())
	if err != nil {
		return models.Student{}, err
	}
	if !found {
		return models.Student{}, models.NewNotFoundError(student.ID())
	}

	exists, err := r.NationalIDExists(ctx, student.NationalID(), student.ID())
	if err != nil {
		return models.Student{}, err
	}
	if exists {
		return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
	}

	row := newStudentRow(student).truncated(bsonTimePrecision)
	stored, err := row.toModel()
	if err != nil {
		return models.Student{}, models.NewStoreError(opUpdate, err)
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: columnGivenName, Value: row.GivenName},
		{Key: columnFamilyName, Value: row.FamilyName},
		{Key: columnNationalID, Value: row.NationalID},
		{Key: columnUpdatedAt, Value: row.UpdatedAt},
	}}}

	result, err := r.collection.UpdateByID(ctx, student.ID(), update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Student{}, models.NewDuplicateIdentifierError(student.NationalID())
		}
		logger.FromContext(ctx).Err(err).Str("func", "mongoStudentRepository.Update").Msg("update failed")
		return models.Student{}, models.NewStoreError(opUpdate, err)
	}
	if result.MatchedCount == 0 {
		return models.Student{}, models.NewNotFoundError(student.ID())
	}

	return stored, nil
}

func (r *mongoStudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mongoStudentRepository.Delete").Msg("delete failed")
		return false, models.NewStoreError(opDelete, err)
	}
	return result.DeletedCount > 0, nil
}

func (r *mongoStudentRepository) NationalIDExists(ctx context.Context, nationalID, excludeID string) (bool, error) {
	filter := bson.D{{Key: columnNationalID, Value: models.NormalizeNationalID(nationalID)}}
	if excludeID != "" {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID}}})
	}

	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Err()
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "mongoStudentRepository.NationalIDExists").Msg("find failed")
		return false, models.NewStoreError(opRead, err)
	}
	return true, nil
}
