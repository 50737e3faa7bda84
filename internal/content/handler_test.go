package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velaris/seoforge/internal/models"
)

// fakeStore keeps records in memory and lists them newest first, the way
// the Mongo store does.
type fakeStore struct {
	docs map[string]models.SEOContent
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]models.SEOContent)}
}

func (f *fakeStore) add(id, keyword string, createdAt time.Time) {
	f.docs[id] = models.SEOContent{Keyword: keyword, CreatedAt: createdAt}
}

func (f *fakeStore) List(_ context.Context) ([]models.SEOContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.SEOContent
	for _, d := range f.docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) DeleteByID(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.docs[id]; !ok {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

func testRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/seo-content", h.List)
	r.Delete("/api/seo-content/{id}", h.Delete)
	return r
}

func TestListEmptyStore(t *testing.T) {
	r := testRouter(NewHandler(newFakeStore()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/seo-content", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	// empty store serializes as an empty array, never null
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestListNewestFirst(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	store.add("a", "older", now.Add(-time.Hour))
	store.add("b", "newer", now)
	r := testRouter(NewHandler(store))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/seo-content", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    []models.SEOContent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "newer", resp.Data[0].Keyword)
	assert.Equal(t, "older", resp.Data[1].Keyword)
}

func TestDeleteThenDeleteMiss(t *testing.T) {
	store := newFakeStore()
	store.add("abc", "k", time.Now())
	r := testRouter(NewHandler(store))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/seo-content/abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/seo-content/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SEO content not found")
}

func TestDeleteUnknownIDHasNoSideEffects(t *testing.T) {
	store := newFakeStore()
	store.add("keep", "k", time.Now())
	r := testRouter(NewHandler(store))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/seo-content/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, store.docs, 1)
}
