package data

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EmployeeModel wraps the employees collection.
type EmployeeModel struct {
	Mongo *mongo.Collection
}

func (m EmployeeModel) Insert(employee *Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := m.Mongo.InsertOne(ctx, employee)
	return err
}

func (m EmployeeModel) Get(id primitive.ObjectID) (*Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var employee Employee

	err := m.Mongo.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &employee, nil
}

func (m EmployeeModel) GetAll() ([]*Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cursor, err := m.Mongo.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := []*Employee{}

	for cursor.Next(ctx) {
		var employee Employee
		if err := cursor.Decode(&employee); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (m EmployeeModel) Update(employee *Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":   employee.Name,
			"salary": employee.Salary,
			"age":    employee.Age,
		},
	}

	result, err := m.Mongo.UpdateOne(ctx, bson.M{"_id": employee.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (m EmployeeModel) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.Mongo.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
