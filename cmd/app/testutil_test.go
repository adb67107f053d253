package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/NikitaSawant21/Web-Asn4/internal/config"
	"github.com/NikitaSawant21/Web-Asn4/internal/data"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeEmployeeStore struct {
	mu        sync.Mutex
	employees map[primitive.ObjectID]data.Employee
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: map[primitive.ObjectID]data.Employee{}}
}

func (s *fakeEmployeeStore) Insert(employee *data.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees[employee.ID] = *employee
	return nil
}

func (s *fakeEmployeeStore) Get(id primitive.ObjectID) (*data.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee, ok := s.employees[id]
	if !ok {
		return nil, data.ErrRecordNotFound
	}
	return &employee, nil
}

func (s *fakeEmployeeStore) GetAll() ([]*data.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees := make([]*data.Employee, 0, len(s.employees))
	for id := range s.employees {
		employee := s.employees[id]
		employees = append(employees, &employee)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].ID.Hex() < employees[j].ID.Hex()
	})
	return employees, nil
}

func (s *fakeEmployeeStore) Update(employee *data.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[employee.ID]; !ok {
		return data.ErrRecordNotFound
	}
	s.employees[employee.ID] = *employee
	return nil
}

func (s *fakeEmployeeStore) Delete(id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return data.ErrRecordNotFound
	}
	delete(s.employees, id)
	return nil
}

// fakeMovieStore keeps documents in insertion order and evaluates the filter
// shapes the handlers build, with Mongo's cross-type numeric equality.
type fakeMovieStore struct {
	mu   sync.Mutex
	docs []bson.M
}

func (s *fakeMovieStore) Available() bool { return true }

func (s *fakeMovieStore) seed(docs ...bson.M) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		stored := bson.M{}
		for k, v := range doc {
			stored[k] = v
		}
		if _, ok := stored["_id"]; !ok {
			stored["_id"] = primitive.NewObjectID()
		}
		s.docs = append(s.docs, stored)
	}
}

func (s *fakeMovieStore) all() []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]bson.M, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *fakeMovieStore) Insert(doc bson.M) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := primitive.NewObjectID()
	doc["_id"] = id

	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	s.docs = append(s.docs, stored)
	return id, nil
}

func (s *fakeMovieStore) Find(filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []bson.M{}
	for _, doc := range s.docs {
		if matchFilter(doc, filter) {
			out = append(out, doc)
			if int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *fakeMovieStore) FindOne(filter bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if matchFilter(doc, filter) {
			return doc, nil
		}
	}
	return nil, data.ErrRecordNotFound
}

func (s *fakeMovieStore) UpdateOne(filter bson.M, set bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if matchFilter(doc, filter) {
			for k, v := range set {
				doc[k] = v
			}
			return nil
		}
	}
	return data.ErrRecordNotFound
}

func (s *fakeMovieStore) DeleteOne(filter bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if matchFilter(doc, filter) {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return data.ErrRecordNotFound
}

func matchFilter(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		if key == "$or" {
			matched := false
			for _, sub := range want.([]bson.M) {
				if matchFilter(doc, sub) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
			continue
		}

		got, ok := doc[key]
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b interface{}) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func newTestApplication(t *testing.T) (*application, *fakeEmployeeStore, *fakeMovieStore) {
	t.Helper()

	templateCache, err := newTemplateCache()
	require.NoError(t, err)

	cfg := &config.Config{Port: 4000, Env: "production"}

	employees := newFakeEmployeeStore()
	movies := &fakeMovieStore{}

	app := &application{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		config:        cfg,
		models:        data.Models{Employees: employees, Movies: movies},
		templateCache: templateCache,
	}
	return app, employees, movies
}

// newMoviesDisabledApplication swaps in a zero MovieModel, the same value the
// real wiring produces when no movies store is configured.
func newMoviesDisabledApplication(t *testing.T) *application {
	t.Helper()

	app, _, _ := newTestApplication(t)
	app.models.Movies = data.MovieModel{}
	return app
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	// Keep redirect responses visible instead of following them.
	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &testServer{ts}
}

func (ts *testServer) get(t *testing.T, urlPath string) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().Get(ts.URL + urlPath)
	require.NoError(t, err)
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(body))
}

func (ts *testServer) sendJSON(t *testing.T, method, urlPath string, payload interface{}) (int, http.Header, string) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(method, ts.URL+urlPath, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rs, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer rs.Body.Close()

	respBody, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(respBody))
}

func (ts *testServer) do(t *testing.T, method, urlPath string) (int, http.Header, string) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+urlPath, nil)
	require.NoError(t, err)

	rs, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(body))
}

func (ts *testServer) postForm(t *testing.T, urlPath string, form url.Values) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().PostForm(ts.URL+urlPath, form)
	require.NoError(t, err)
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(body))
}

func decodeJSON(t *testing.T, body string, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), dst))
}
