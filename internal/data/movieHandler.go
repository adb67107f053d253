package data

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxMovieResults caps every movie list query.
const MaxMovieResults = 200

// MovieModel wraps the movies collection. Mongo is nil when the process was
// started without a movies connection string, in which case every method
// returns ErrMovieStoreUnavailable.
type MovieModel struct {
	Mongo *mongo.Collection
}

func (m MovieModel) Available() bool {
	return m.Mongo != nil
}

// Insert stores doc with a fresh ObjectID and writes that id back into the
// document under _id.
func (m MovieModel) Insert(doc bson.M) (primitive.ObjectID, error) {
	if !m.Available() {
		return primitive.NilObjectID, ErrMovieStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	id := primitive.NewObjectID()
	doc["_id"] = id

	if _, err := m.Mongo.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, err
	}

	return id, nil
}

func (m MovieModel) Find(filter bson.M, limit int64) ([]bson.M, error) {
	if !m.Available() {
		return nil, ErrMovieStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	findOptions := options.Find().SetLimit(limit)

	cursor, err := m.Mongo.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	movies := []bson.M{}

	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		movies = append(movies, doc)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (m MovieModel) FindOne(filter bson.M) (bson.M, error) {
	if !m.Available() {
		return nil, ErrMovieStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var doc bson.M

	err := m.Mongo.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return doc, nil
}

// UpdateOne applies set to the first document matching filter. A flexible
// movie_id filter can match several documents; only the first one in the
// collection's natural order changes.
func (m MovieModel) UpdateOne(filter bson.M, set bson.M) error {
	if !m.Available() {
		return ErrMovieStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.Mongo.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// DeleteOne removes the first document matching filter, with the same
// first-match semantics as UpdateOne.
func (m MovieModel) DeleteOne(filter bson.M) error {
	if !m.Available() {
		return ErrMovieStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.Mongo.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
