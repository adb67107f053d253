package data

import (
	"fmt"
	"strconv"

	"github.com/NikitaSawant21/Web-Asn4/internal/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie documents were loaded into the collection by several generations of
// import scripts that never agreed on field names. Each display attribute
// therefore has an ordered list of candidate keys, checked first to last.
// Key comparison is exact: "Title" and "title" are distinct candidates.
var (
	titleFields    = []string{"movie_title", "title", "Title", "name", "Name", "MovieTitle"}
	movieIDFields  = []string{"movie_id", "movieId", "movieid", "MovieID", "id", "Id", "ID"}
	releasedFields = []string{"Released", "released", "release_year", "releaseYear", "year", "Year", "ReleaseDate", "release_date"}
)

const missingTitle = "(no title)"

// MovieView is the canonical read-only projection of a raw movie document.
// It is computed per request and never written back to the store. Values
// keep whatever type the document stored, so MovieID may be a number in one
// record and a string in the next.
type MovieView struct {
	ID       interface{} `json:"_id"`
	Title    interface{} `json:"movie_title"`
	MovieID  interface{} `json:"movie_id"`
	Released interface{} `json:"Released"`
}

// NormalizeMovie projects a raw document into the canonical view, taking the
// first candidate key present with a non-nil value for each attribute.
func NormalizeMovie(doc bson.M) MovieView {
	view := MovieView{
		ID:       firstField(doc, []string{"_id"}, ""),
		Title:    firstField(doc, titleFields, missingTitle),
		MovieID:  firstField(doc, movieIDFields, ""),
		Released: firstField(doc, releasedFields, ""),
	}
	return view
}

func firstField(doc bson.M, candidates []string, fallback interface{}) interface{} {
	for _, key := range candidates {
		if value, ok := doc[key]; ok && value != nil {
			return value
		}
	}
	return fallback
}

// IDHex renders the view's primary key as a string for URLs and templates.
func (mv MovieView) IDHex() string {
	switch id := mv.ID.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

// MovieIDFilter builds a filter matching documents whose movie_id equals raw
// in either its numeric or its string stored representation. The import
// scripts stored movie_id inconsistently, so a single typed equality would
// miss half the collection. A non-numeric raw value gets a plain string
// equality, since the numeric branch could never match.
func MovieIDFilter(raw string) bson.M {
	var numeric interface{}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		numeric = n
	} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
		numeric = f
	}

	if numeric == nil {
		return bson.M{"movie_id": raw}
	}

	return bson.M{"$or": []bson.M{
		{"movie_id": numeric},
		{"movie_id": raw},
	}}
}

// ValidateMovieInput checks the writable movie fields. movieID is the decoded
// JSON value and may be nil, a string, or a number; both representations are
// stored as-is.
func ValidateMovieInput(v *validator.Validator, title string, movieID interface{}, released string) {
	v.Check(title != "", "movie_title", "must be provided")
	v.Check(len(title) <= 500, "movie_title", "must not be more than 500 bytes long")
	v.Check(validMovieID(movieID), "movie_id", "must be a number or a string")
	v.Check(len(released) <= 100, "Released", "must not be more than 100 bytes long")
}

func validMovieID(value interface{}) bool {
	switch value.(type) {
	case nil, string, float64, int, int32, int64:
		return true
	default:
		return false
	}
}
