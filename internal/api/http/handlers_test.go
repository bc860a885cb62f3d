package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/marksheet-io/marksheet/internal/api/http"
	"github.com/marksheet-io/marksheet/internal/grading"
	"github.com/marksheet-io/marksheet/internal/record"
)

func testRouter(store record.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Put("/records/*", api.PutRecordHandler(store))
	r.Get("/records/*", api.GetRecordHandler(store))
	r.Delete("/records/*", api.DeleteRecordHandler(store))
	r.Get("/aggregates", api.AggregatesHandler(store, grading.DefaultTable()))
	r.Get("/results/{system}", api.ResultHandler(store, grading.DefaultTable()))
	r.Get("/systems", api.SystemsHandler())
	return r
}

func do(t *testing.T, r nethttp.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *nethttp.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecordRoundTrip(t *testing.T) {
	r := testRouter(record.NewInMemoryStore())

	w := do(t, r, "PUT", "/records/subjects/Math", `{"type":"H2"}`)
	require.Equal(t, 200, w.Code, w.Body.String())

	w = do(t, r, "PUT", "/records/seasons/mid/ca1", `{"subject":"Math","score":45,"full":50,"weightage":1}`)
	require.Equal(t, 200, w.Code, w.Body.String())

	w = do(t, r, "GET", "/records/subjects/Math", "")
	require.Equal(t, 200, w.Code)
	var sub record.Subject
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, "H2", sub.Type)
	assert.NotEmpty(t, sub.Color, "subject should get a stable display color")

	w = do(t, r, "GET", "/records/seasons/mid/ca1", "")
	require.Equal(t, 200, w.Code)

	w = do(t, r, "DELETE", "/records/seasons/mid/ca1", "")
	assert.Equal(t, 204, w.Code)
	w = do(t, r, "GET", "/records/seasons/mid/ca1", "")
	assert.Equal(t, 404, w.Code)
}

func TestRecordBadPaths(t *testing.T) {
	r := testRouter(record.NewInMemoryStore())

	assert.Equal(t, 400, do(t, r, "PUT", "/records/grades/x", `{}`).Code)
	assert.Equal(t, 400, do(t, r, "PUT", "/records/subjects", `{}`).Code)
	assert.Equal(t, 400, do(t, r, "DELETE", "/records/seasons", "").Code)
}

func seedAPIStore(t *testing.T) record.Store {
	t.Helper()
	ctx := context.Background()
	store := record.NewInMemoryStore()
	subjects := map[string]string{
		"Phy": "H2", "Chem": "H2", "Math": "H2",
		"GP": "GP", "Chinese": "MTL", "Hist": "H1",
	}
	scores := map[string]float64{
		"Phy": 40, "Chem": 37.5, "Math": 32.5, "GP": 35, "Chinese": 37.5, "Hist": 35,
	}
	for name, typ := range subjects {
		require.NoError(t, store.PutSubject(ctx, record.Subject{Name: name, Type: typ}))
		require.NoError(t, store.PutTest(ctx, "prelim", record.Test{
			Name: "x-" + name, Subject: name, Score: scores[name], Full: 50, Weightage: 1,
		}))
	}
	return store
}

func TestAggregatesHandler(t *testing.T) {
	r := testRouter(seedAPIStore(t))

	w := do(t, r, "GET", "/aggregates?system=uasrp-sg-90rp", "")
	require.Equal(t, 200, w.Code, w.Body.String())

	var rows map[string]struct {
		Type   string  `json:"type"`
		Score  float64 `json:"score"`
		Grade  string  `json:"grade"`
		Points float64 `json:"points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 6)
	assert.Equal(t, 80.0, rows["Phy"].Score)
	assert.Equal(t, "A", rows["Phy"].Grade)
	assert.Equal(t, 20.0, rows["Phy"].Points)
	assert.Equal(t, 10.0, rows["GP"].Points)
}

func TestResultHandler(t *testing.T) {
	r := testRouter(seedAPIStore(t))

	w := do(t, r, "GET", "/results/uasrp-sg-70rp", "")
	require.Equal(t, 200, w.Code, w.Body.String())
	var res grading.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "uasrp-sg-70rp", res.System)
	assert.Contains(t, res.Summary, "RP.")
}

func TestResultHandlerErrors(t *testing.T) {
	r := testRouter(seedAPIStore(t))

	// Outside the supported catalog.
	assert.Equal(t, 400, do(t, r, "GET", "/results/ib-ch-42", "").Code)

	// Supported system, but the record cannot satisfy the quotas.
	empty := record.NewInMemoryStore()
	require.NoError(t, empty.PutSubject(context.Background(), record.Subject{Name: "Solo", Type: "H2"}))
	require.NoError(t, empty.PutTest(context.Background(), "mid", record.Test{
		Name: "t", Subject: "Solo", Score: 40, Full: 50, Weightage: 1,
	}))
	r2 := testRouter(empty)
	assert.Equal(t, 422, do(t, r2, "GET", "/results/uasrp-sg-70rp", "").Code)
}

func TestSystemsHandler(t *testing.T) {
	w := do(t, testRouter(record.NewInMemoryStore()), "GET", "/systems", "")
	require.Equal(t, 200, w.Code)
	var ids []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ids))
	assert.Equal(t, grading.SystemIDs(), ids)
}
