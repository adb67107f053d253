package data

import (
	"github.com/NikitaSawant21/Web-Asn4/internal/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a record in the employees collection. Unlike movies, the
// employee schema is fixed and fully owned by this service.
type Employee struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Name   string             `json:"name" bson:"name"`
	Salary float64            `json:"salary" bson:"salary"`
	Age    int                `json:"age" bson:"age"`
}

func ValidateEmployee(v *validator.Validator, employee *Employee) {
	v.Check(employee.Name != "", "name", "must be provided")
	v.Check(len(employee.Name) <= 500, "name", "must not be more than 500 bytes long")

	v.Check(employee.Salary != 0, "salary", "must be provided")
	v.Check(employee.Salary > 0, "salary", "must be a positive number")

	v.Check(employee.Age != 0, "age", "must be provided")
	v.Check(employee.Age > 0, "age", "must be a positive integer")
	v.Check(employee.Age < 150, "age", "must be less than 150")
}
