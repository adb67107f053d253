package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/NikitaSawant21/Web-Asn4/internal/data"
	"github.com/NikitaSawant21/Web-Asn4/internal/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// movieStoreError maps movie store failures onto the response taxonomy.
func (app *application) movieStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, data.ErrMovieStoreUnavailable):
		app.storeUnavailableResponse(w, r)
	case errors.Is(err, data.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// movieIDString renders a decoded JSON movie_id as the raw string the
// flexible filter wants. JSON numbers arrive as float64.
func movieIDString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.storeUnavailableResponse(w, r)
		return
	}

	docs, err := app.models.Movies.Find(bson.M{}, data.MaxMovieResults)
	if err != nil {
		app.movieStoreError(w, r, err)
		return
	}

	movies := make([]data.MovieView, 0, len(docs))
	for _, doc := range docs {
		movies = append(movies, data.NormalizeMovie(doc))
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"movies": movies}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) findMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.storeUnavailableResponse(w, r)
		return
	}

	qs := r.URL.Query()
	id := app.readString(qs, "id", "")
	movieID := app.readString(qs, "movie_id", "")
	title := app.readString(qs, "title", "")

	var filter bson.M

	switch {
	case id != "":
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			v := validator.New()
			v.AddError("id", "must be a valid ObjectID hex string")
			app.failedValidationResponse(w, r, v.Errors)
			return
		}
		filter = bson.M{"_id": objectID}
	case movieID != "":
		filter = data.MovieIDFilter(movieID)
	case title != "":
		filter = bson.M{"movie_title": title}
	default:
		app.badRequestResponse(w, r, errors.New("one of the id, movie_id or title parameters must be provided"))
		return
	}

	doc, err := app.models.Movies.FindOne(filter)
	if err != nil {
		app.movieStoreError(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"movie": data.NormalizeMovie(doc)}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.storeUnavailableResponse(w, r)
		return
	}

	var input struct {
		Title    string      `json:"movie_title"`
		MovieID  interface{} `json:"movie_id"`
		Released string      `json:"Released"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if data.ValidateMovieInput(v, input.Title, input.MovieID, input.Released); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	doc := bson.M{"movie_title": input.Title}
	if input.MovieID != nil {
		doc["movie_id"] = input.MovieID
	}
	if input.Released != "" {
		doc["Released"] = input.Released
	}

	id, err := app.models.Movies.Insert(doc)
	if err != nil {
		app.movieStoreError(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/movies/find?id=%s", id.Hex()))

	if err := app.writeJSON(w, http.StatusCreated, envelope{"movie": data.NormalizeMovie(doc)}, headers); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.storeUnavailableResponse(w, r)
		return
	}

	var input struct {
		ID       string      `json:"id"`
		MovieID  interface{} `json:"movie_id"`
		Title    *string     `json:"movie_title"`
		Released *string     `json:"Released"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()

	var filter bson.M

	switch {
	case input.ID != "":
		objectID, err := primitive.ObjectIDFromHex(input.ID)
		if err != nil {
			v.AddError("id", "must be a valid ObjectID hex string")
			app.failedValidationResponse(w, r, v.Errors)
			return
		}
		filter = bson.M{"_id": objectID}
	case input.MovieID != nil:
		raw, ok := movieIDString(input.MovieID)
		if !ok {
			v.AddError("movie_id", "must be a number or a string")
			app.failedValidationResponse(w, r, v.Errors)
			return
		}
		filter = data.MovieIDFilter(raw)
	default:
		app.badRequestResponse(w, r, errors.New("either id or movie_id must be provided"))
		return
	}

	set := bson.M{}

	if input.Title != nil {
		v.Check(*input.Title != "", "movie_title", "must not be empty")
		v.Check(len(*input.Title) <= 500, "movie_title", "must not be more than 500 bytes long")
		set["movie_title"] = *input.Title
	}
	if input.Released != nil {
		v.Check(len(*input.Released) <= 100, "Released", "must not be more than 100 bytes long")
		set["Released"] = *input.Released
	}

	if len(set) == 0 {
		app.badRequestResponse(w, r, errors.New("at least one of movie_title or Released must be provided"))
		return
	}

	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Movies.UpdateOne(filter, set); err != nil {
		app.movieStoreError(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "movie successfully updated"}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.storeUnavailableResponse(w, r)
		return
	}

	qs := r.URL.Query()
	id := app.readString(qs, "id", "")
	movieID := app.readString(qs, "movie_id", "")

	var filter bson.M

	switch {
	case id != "":
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			v := validator.New()
			v.AddError("id", "must be a valid ObjectID hex string")
			app.failedValidationResponse(w, r, v.Errors)
			return
		}
		filter = bson.M{"_id": objectID}
	case movieID != "":
		filter = data.MovieIDFilter(movieID)
	default:
		app.badRequestResponse(w, r, errors.New("either the id or movie_id parameter must be provided"))
		return
	}

	if err := app.models.Movies.DeleteOne(filter); err != nil {
		app.movieStoreError(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "movie successfully deleted"}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
