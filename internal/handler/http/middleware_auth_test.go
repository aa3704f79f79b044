package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func executeAuth(f fixture, authHeader string) (*httptest.ResponseRecorder, int64, bool) {
	var (
		gotUserID int64
		called    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	f.handler.auth(next).ServeHTTP(rec, req)
	return rec, gotUserID, called
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "no token", header: "Bearer"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "blank token", header: "Bearer   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec, _, called := executeAuth(f, tt.header)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "token is expired or invalid", bodyText(rec))
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec, _, called := executeAuth(f, "Bearer expired")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token is expired or invalid", bodyText(rec))
}

func TestAuth_PutsUserIDIntoContext(t *testing.T) {
	f := newFixture(t)
	f.expectToken(aliceID)

	rec, userID, called := executeAuth(f, "Bearer good")

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, aliceID, userID)
}
