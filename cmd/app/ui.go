package main

import (
	"errors"
	"net/http"

	"github.com/NikitaSawant21/Web-Asn4/internal/data"
	"github.com/NikitaSawant21/Web-Asn4/internal/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// uiStoreError is the HTML counterpart of movieStoreError.
func (app *application) uiStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, data.ErrMovieStoreUnavailable):
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
	case errors.Is(err, data.ErrRecordNotFound):
		app.renderError(w, r, http.StatusNotFound, "No movie matches that identifier.")
	default:
		app.logError(r, err)
		app.renderError(w, r, http.StatusInternalServerError, "Something went wrong while talking to the movies store.")
	}
}

// uiMovieFilter builds a movie filter from submitted id / movie_id values.
// It mirrors the API rules: a database id wins over a movie id, and at least
// one of the two must be present.
func uiMovieFilter(id, movieID string) (bson.M, map[string]string) {
	switch {
	case id != "":
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, map[string]string{"id": "must be a valid ObjectID hex string"}
		}
		return bson.M{"_id": objectID}, nil
	case movieID != "":
		return data.MovieIDFilter(movieID), nil
	default:
		return nil, map[string]string{"id": "provide a database id or a movie id"}
	}
}

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	td := templateData{MoviesEnabled: app.models.Movies.Available()}

	if td.MoviesEnabled {
		docs, err := app.models.Movies.Find(bson.M{}, data.MaxMovieResults)
		if err != nil {
			app.uiStoreError(w, r, err)
			return
		}

		movies := make([]data.MovieView, 0, len(docs))
		for _, doc := range docs {
			movies = append(movies, data.NormalizeMovie(doc))
		}
		td.Movies = movies
	}

	app.render(w, r, http.StatusOK, "home.tmpl", td)
}

func (app *application) uiShowMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
		return
	}

	qs := r.URL.Query()

	filter, fieldErrors := uiMovieFilter(app.readString(qs, "id", ""), app.readString(qs, "movie_id", ""))
	if fieldErrors != nil {
		app.renderError(w, r, http.StatusBadRequest, "Provide a valid id or movie_id query parameter.")
		return
	}

	doc, err := app.models.Movies.FindOne(filter)
	if err != nil {
		app.uiStoreError(w, r, err)
		return
	}

	view := data.NormalizeMovie(doc)
	app.render(w, r, http.StatusOK, "movie_view.tmpl", templateData{Movie: &view})
}

func (app *application) uiNewMovieFormHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
		return
	}

	app.render(w, r, http.StatusOK, "movie_new.tmpl", templateData{})
}

func (app *application) uiNewMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
		return
	}

	if err := r.ParseForm(); err != nil {
		app.renderError(w, r, http.StatusBadRequest, "The submitted form could not be parsed.")
		return
	}

	title := r.PostForm.Get("movie_title")
	movieID := r.PostForm.Get("movie_id")
	released := r.PostForm.Get("Released")

	// Form fields always arrive as strings; a movie_id typed into the form is
	// stored verbatim.
	var movieIDValue interface{}
	if movieID != "" {
		movieIDValue = movieID
	}

	v := validator.New()
	if data.ValidateMovieInput(v, title, movieIDValue, released); !v.Valid() {
		app.render(w, r, http.StatusBadRequest, "movie_new.tmpl", templateData{
			Form:        r.PostForm,
			FieldErrors: v.Errors,
		})
		return
	}

	doc := bson.M{"movie_title": title}
	if movieIDValue != nil {
		doc["movie_id"] = movieIDValue
	}
	if released != "" {
		doc["Released"] = released
	}

	if _, err := app.models.Movies.Insert(doc); err != nil {
		app.uiStoreError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) uiUpdateMovieFormHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
		return
	}

	td := templateData{}

	// An id query parameter pre-fills the form from the stored record.
	if id := app.readString(r.URL.Query(), "id", ""); id != "" {
		filter, fieldErrors := uiMovieFilter(id, "")
		if fieldErrors != nil {
			app.renderError(w, r, http.StatusBadRequest, "Provide a valid id query parameter.")
			return
		}

		doc, err := app.models.Movies.FindOne(filter)
		if err != nil {
			app.uiStoreError(w, r, err)
			return
		}

		view := data.NormalizeMovie(doc)
		td.Movie = &view
	}

	app.render(w, r, http.StatusOK, "movie_update.tmpl", td)
}

func (app *application) uiUpdateMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
		return
	}

	if err := r.ParseForm(); err != nil {
		app.renderError(w, r, http.StatusBadRequest, "The submitted form could not be parsed.")
		return
	}

	filter, fieldErrors := uiMovieFilter(r.PostForm.Get("id"), r.PostForm.Get("movie_id"))
	if fieldErrors != nil {
		app.render(w, r, http.StatusBadRequest, "movie_update.tmpl", templateData{
			Form:        r.PostForm,
			FieldErrors: fieldErrors,
		})
		return
	}

	// Empty form fields mean "leave unchanged"; the form cannot distinguish
	// absent from blank.
	set := bson.M{}
	v := validator.New()

	if title := r.PostForm.Get("movie_title"); title != "" {
		v.Check(len(title) <= 500, "movie_title", "must not be more than 500 bytes long")
		set["movie_title"] = title
	}
	if released := r.PostForm.Get("Released"); released != "" {
		v.Check(len(released) <= 100, "Released", "must not be more than 100 bytes long")
		set["Released"] = released
	}

	if len(set) == 0 {
		v.AddError("movie_title", "provide at least one field to change")
	}

	if !v.Valid() {
		app.render(w, r, http.StatusBadRequest, "movie_update.tmpl", templateData{
			Form:        r.PostForm,
			FieldErrors: v.Errors,
		})
		return
	}

	if err := app.models.Movies.UpdateOne(filter, set); err != nil {
		app.uiStoreError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) uiDeleteMovieFormHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
		return
	}

	app.render(w, r, http.StatusOK, "movie_delete.tmpl", templateData{})
}

func (app *application) uiDeleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	if !app.models.Movies.Available() {
		app.renderError(w, r, http.StatusServiceUnavailable, "The movies store is not configured.")
		return
	}

	if err := r.ParseForm(); err != nil {
		app.renderError(w, r, http.StatusBadRequest, "The submitted form could not be parsed.")
		return
	}

	filter, fieldErrors := uiMovieFilter(r.PostForm.Get("id"), r.PostForm.Get("movie_id"))
	if fieldErrors != nil {
		app.render(w, r, http.StatusBadRequest, "movie_delete.tmpl", templateData{
			Form:        r.PostForm,
			FieldErrors: fieldErrors,
		})
		return
	}

	if err := app.models.Movies.DeleteOne(filter); err != nil {
		app.uiStoreError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
