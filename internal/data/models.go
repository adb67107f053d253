package data

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrRecordNotFound = errors.New("record not found")

	// ErrMovieStoreUnavailable is returned by every movie operation when no
	// movies connection string was configured for the process.
	ErrMovieStoreUnavailable = errors.New("movie store not configured")
)

// EmployeeStore is the persistence contract for the employees collection.
type EmployeeStore interface {
	Insert(employee *Employee) error
	Get(id primitive.ObjectID) (*Employee, error)
	GetAll() ([]*Employee, error)
	Update(employee *Employee) error
	Delete(id primitive.ObjectID) error
}

// MovieStore is the persistence contract for the movies collection. Movie
// documents are schemaless, so the contract works in raw bson documents and
// caller-built filters. Implementations report ErrMovieStoreUnavailable from
// every method while Available is false.
type MovieStore interface {
	Available() bool
	Insert(doc bson.M) (primitive.ObjectID, error)
	Find(filter bson.M, limit int64) ([]bson.M, error)
	FindOne(filter bson.M) (bson.M, error)
	UpdateOne(filter bson.M, set bson.M) error
	DeleteOne(filter bson.M) error
}

type Models struct {
	Employees EmployeeStore
	Movies    MovieStore
}

// NewModels wires the Mongo-backed models. moviesColl may be nil when the
// movies store is not configured; every movie operation then reports
// ErrMovieStoreUnavailable without touching the network.
func NewModels(employeesColl, moviesColl *mongo.Collection) Models {
	return Models{
		Employees: EmployeeModel{Mongo: employeesColl},
		Movies:    MovieModel{Mongo: moviesColl},
	}
}

var (
	_ EmployeeStore = EmployeeModel{}
	_ MovieStore    = MovieModel{}
)
