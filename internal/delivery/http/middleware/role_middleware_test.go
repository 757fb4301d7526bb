package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-booking-api/internal/domain/entity"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		role       string
		wantStatus int
	}{
		{"admin passes admin gate", RequireAdmin, entity.RoleAdmin, http.StatusOK},
		{"doctor blocked by admin gate", RequireAdmin, entity.RoleDoctor, http.StatusForbidden},
		{"customer blocked by admin gate", RequireAdmin, entity.RoleCustomer, http.StatusForbidden},
		{"doctor passes doctor gate", RequireDoctor, entity.RoleDoctor, http.StatusOK},
		{"admin blocked by doctor gate", RequireDoctor, entity.RoleAdmin, http.StatusForbidden},
		{"customer blocked by doctor gate", RequireDoctor, entity.RoleCustomer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			tt.middleware(next).ServeHTTP(rec, requestWithRole(tt.role))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if wantCalled := tt.wantStatus == http.StatusOK; handlerCalled != wantCalled {
				t.Errorf("handler called = %v, want %v", handlerCalled, wantCalled)
			}
		})
	}
}

func TestRequireRoleMissingContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without role in context")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleMultipleAllowed(t *testing.T) {
	gate := RequireRole(entity.RoleAdmin, entity.RoleDoctor)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for role, want := range map[string]int{
		entity.RoleAdmin:    http.StatusOK,
		entity.RoleDoctor:   http.StatusOK,
		entity.RoleCustomer: http.StatusForbidden,
	} {
		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, requestWithRole(role))
		if rec.Code != want {
			t.Errorf("role %s: status = %d, want %d", role, rec.Code, want)
		}
	}
}
