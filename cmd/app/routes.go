package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthz", app.healthcheckHandler)

	router.HandlerFunc(http.MethodGet, "/api/employees", app.listEmployeesHandler)
	router.HandlerFunc(http.MethodPost, "/api/employees", app.createEmployeeHandler)
	router.HandlerFunc(http.MethodGet, "/api/employees/:id", app.showEmployeeHandler)
	router.HandlerFunc(http.MethodPut, "/api/employees/:id", app.updateEmployeeHandler)
	router.HandlerFunc(http.MethodDelete, "/api/employees/:id", app.deleteEmployeeHandler)

	router.HandlerFunc(http.MethodGet, "/api/movies", app.listMoviesHandler)
	router.HandlerFunc(http.MethodGet, "/api/movies/find", app.findMovieHandler)
	router.HandlerFunc(http.MethodPost, "/api/movies", app.createMovieHandler)
	router.HandlerFunc(http.MethodPut, "/api/movies", app.updateMovieHandler)
	router.HandlerFunc(http.MethodDelete, "/api/movies", app.deleteMovieHandler)

	router.HandlerFunc(http.MethodGet, "/", app.homeHandler)
	router.HandlerFunc(http.MethodGet, "/ui/movie/show", app.uiShowMovieHandler)
	router.HandlerFunc(http.MethodGet, "/ui/movie/new", app.uiNewMovieFormHandler)
	router.HandlerFunc(http.MethodPost, "/ui/movie/new", app.uiNewMovieHandler)
	router.HandlerFunc(http.MethodGet, "/ui/movie/update", app.uiUpdateMovieFormHandler)
	router.HandlerFunc(http.MethodPost, "/ui/movie/update", app.uiUpdateMovieHandler)
	router.HandlerFunc(http.MethodGet, "/ui/movie/delete", app.uiDeleteMovieFormHandler)
	router.HandlerFunc(http.MethodPost, "/ui/movie/delete", app.uiDeleteMovieHandler)

	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())

	return app.metrics(app.recoverPanic(app.enableCORS(app.rateLimit(app.logRequest(router)))))
}
