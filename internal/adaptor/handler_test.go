package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"media-review/internal/usecase"

	"github.com/go-chi/chi/v5"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", fmt.Errorf("title 9: %w", usecase.ErrNotFound), http.StatusNotFound},
		{"forbidden", fmt.Errorf("update review 3: %w", usecase.ErrForbidden), http.StatusForbidden},
		{"validation", usecase.NewFieldError("slug", "Slug must be unique."), http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tt.err)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleServiceErrorCarriesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, usecase.NewFieldError("email", "Email addresses must be unique."))

	var body struct {
		Status bool              `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.Status {
		t.Error("status = true, want false")
	}
	if body.Errors["email"] == "" {
		t.Errorf("errors = %v, want an email entry", body.Errors)
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		value  string
		wantID int64
		wantOK bool
	}{
		{"7", 7, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("titleID", tt.value)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		id, ok := pathID(r, "titleID")
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("pathID(%q) = (%d, %v), want (%d, %v)", tt.value, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
