package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sort"
)

// fieldError is one entry of the details list attached to validation
// failures.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorBody is the JSON shape shared by every API error response. Stack is
// only filled outside production.
type errorBody struct {
	Error   bool         `json:"error"`
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Details []fieldError `json:"details,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}

func (app *application) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("method", r.Method),
		slog.String("uri", r.URL.RequestURI()),
	)
}

func (app *application) writeError(w http.ResponseWriter, r *http.Request, body errorBody) {
	if err := app.writeJSON(w, body.Status, body, nil); err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeError(w, r, errorBody{
		Error:   true,
		Status:  status,
		Message: message,
	})
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	body := errorBody{
		Error:   true,
		Status:  http.StatusInternalServerError,
		Message: "the server encountered a problem and could not process your request",
	}
	if app.config.Env != "production" {
		body.Message = err.Error()
		body.Stack = string(debug.Stack())
	}

	app.writeError(w, r, body)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (app *application) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "route not found")
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	details := make([]fieldError, 0, len(errors))
	for field, message := range errors {
		details = append(details, fieldError{Field: field, Message: message})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Field < details[j].Field })

	app.writeError(w, r, errorBody{
		Error:   true,
		Status:  http.StatusBadRequest,
		Message: "one or more fields failed validation",
		Details: details,
	})
}

func (app *application) storeUnavailableResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusServiceUnavailable, "the movies store is not configured")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
