package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"autohub/internal/models"
)

func publicTestimonials(t *testing.T, h http.HandlerFunc) []models.Testimonial {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/v1/testimonials", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var out []models.Testimonial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestApprovalToggleGatesPublicVisibility(t *testing.T) {
	db := setupDB(t)
	lg := testLogger()
	loc := "Lagos"
	ts := models.Testimonial{Name: "Ngozi", Location: &loc, Rating: 5,
		Content: "Smooth purchase", IsApproved: false}
	require.NoError(t, db.Create(&ts).Error)

	public := ListTestimonials(db, lg)
	require.Empty(t, publicTestimonials(t, public), "unapproved entries stay hidden")

	r := chi.NewRouter()
	r.Patch("/v1/admin/testimonials/{id}", UpdateTestimonial(db, lg))
	body, _ := json.Marshal(map[string]any{"is_approved": true})
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/testimonials/"+ts.ID, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	got := publicTestimonials(t, public)
	require.Len(t, got, 1)
	require.Equal(t, ts.ID, got[0].ID)

	// Only the approval flag changed.
	require.Equal(t, "Ngozi", got[0].Name)
	require.Equal(t, 5, got[0].Rating)
	require.Equal(t, "Smooth purchase", got[0].Content)
	require.NotNil(t, got[0].Location)
	require.Equal(t, "Lagos", *got[0].Location)
}

func TestCreateTestimonialValidation(t *testing.T) {
	db := setupDB(t)
	h := CreateTestimonial(db, testLogger())

	body, _ := json.Marshal(map[string]any{"name": "X", "content": "ok", "rating": 6})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/testimonials", bytes.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body, _ = json.Marshal(map[string]any{"content": "no name"})
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/testimonials", bytes.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTestimonial(t *testing.T) {
	db := setupDB(t)
	ts := models.Testimonial{Name: "Y", Content: "bye", Rating: 4}
	require.NoError(t, db.Create(&ts).Error)

	r := chi.NewRouter()
	r.Delete("/v1/admin/testimonials/{id}", DeleteTestimonial(db, testLogger()))
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/testimonials/"+ts.ID, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Testimonial{}).Count(&count).Error)
	require.Zero(t, count)
}
