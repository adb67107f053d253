package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/NikitaSawant21/Web-Asn4/internal/data"
	"github.com/NikitaSawant21/Web-Asn4/internal/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (app *application) listEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	employees, err := app.models.Employees.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"employees": employees}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) showEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	employee, err := app.models.Employees.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"employee": employee}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name   string  `json:"name"`
		Salary float64 `json:"salary"`
		Age    int     `json:"age"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	employee := &data.Employee{
		ID:     primitive.NewObjectID(),
		Name:   input.Name,
		Salary: input.Salary,
		Age:    input.Age,
	}

	v := validator.New()
	if data.ValidateEmployee(v, employee); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Employees.Insert(employee); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/employees/%s", employee.ID.Hex()))

	if err := app.writeJSON(w, http.StatusCreated, envelope{"employee": employee}, headers); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	employee, err := app.models.Employees.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var input struct {
		Name   *string  `json:"name"`
		Salary *float64 `json:"salary"`
		Age    *int     `json:"age"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Salary != nil {
		employee.Salary = *input.Salary
	}
	if input.Age != nil {
		employee.Age = *input.Age
	}

	v := validator.New()
	if data.ValidateEmployee(v, employee); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Employees.Update(employee); err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"employee": employee}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if err := app.models.Employees.Delete(id); err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "employee successfully deleted"}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
