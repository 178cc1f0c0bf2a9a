package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"autohub/internal/models"
	"autohub/internal/notify"
)

// failingNotifier records the attempt and always fails, standing in for a
// broken email side channel.
type failingNotifier struct {
	called chan notify.LeadNotification
}

func (f *failingNotifier) Send(ctx context.Context, n notify.LeadNotification) error {
	f.called <- n
	return errors.New("smtp down")
}

func TestCreateLeadSellCarSurvivesNotificationFailure(t *testing.T) {
	db := setupDB(t)
	fn := &failingNotifier{called: make(chan notify.LeadNotification, 1)}
	h := CreateLead(db, fn, testLogger())

	body, _ := json.Marshal(map[string]any{
		"name":      "Ada Obi",
		"email":     "ada@example.com",
		"phone":     "+2348000000000",
		"lead_type": "sell_car",
		"message":   "2019 Corolla, clean title",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	// The submitter sees success even though delivery will fail.
	require.Equal(t, http.StatusCreated, rec.Code)

	var lead models.Lead
	require.NoError(t, db.First(&lead, "email = ?", "ada@example.com").Error)
	require.Equal(t, models.LeadSellCar, lead.LeadType)
	require.Equal(t, models.LeadNew, lead.Status)

	select {
	case n := <-fn.called:
		require.Equal(t, "Ada Obi", n.Name)
		require.Equal(t, models.LeadSellCar, n.LeadType)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never attempted")
	}

	// The failed notification must not roll the lead back.
	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateLeadValidation(t *testing.T) {
	db := setupDB(t)
	h := CreateLead(db, nil, testLogger())

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing phone", map[string]any{"name": "A", "email": "a@b.c"}},
		{"missing name", map[string]any{"email": "a@b.c", "phone": "123"}},
		{"unknown lead type", map[string]any{"name": "A", "email": "a@b.c", "phone": "123", "lead_type": "spam"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.payload)
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewReader(body)))
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var count int64
			require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
			require.Zero(t, count, "validation failures must not write")
		})
	}
}

func TestCreateLeadDefaultsToGeneralInquiry(t *testing.T) {
	db := setupDB(t)
	h := CreateLead(db, nil, testLogger())

	body, _ := json.Marshal(map[string]any{
		"name": "B", "email": "b@example.com", "phone": "456",
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var lead models.Lead
	require.NoError(t, db.First(&lead, "email = ?", "b@example.com").Error)
	require.Equal(t, models.LeadGeneralInquiry, lead.LeadType)
}

func TestUpdateLeadStatusAndNotes(t *testing.T) {
	db := setupDB(t)
	lead := models.Lead{Name: "C", Email: "c@example.com", Phone: "789",
		LeadType: models.LeadViewingRequest, Status: models.LeadNew}
	require.NoError(t, db.Create(&lead).Error)

	r := chi.NewRouter()
	r.Patch("/v1/admin/leads/{id}", UpdateLead(db, testLogger()))

	body, _ := json.Marshal(map[string]any{"status": "contacted", "notes": "called twice"})
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/leads/"+lead.ID, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Lead
	require.NoError(t, db.First(&got, "id = ?", lead.ID).Error)
	require.Equal(t, models.LeadContacted, got.Status)
	require.NotNil(t, got.Notes)
	require.Equal(t, "called twice", *got.Notes)
}

func TestUpdateLeadRejectsUnknownStatus(t *testing.T) {
	db := setupDB(t)
	lead := models.Lead{Name: "D", Email: "d@example.com", Phone: "000",
		LeadType: models.LeadGeneralInquiry, Status: models.LeadNew}
	require.NoError(t, db.Create(&lead).Error)

	r := chi.NewRouter()
	r.Patch("/v1/admin/leads/{id}", UpdateLead(db, testLogger()))

	body, _ := json.Marshal(map[string]any{"status": "archived"})
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/leads/"+lead.ID, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
