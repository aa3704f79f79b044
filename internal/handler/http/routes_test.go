package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ledger/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoutes_AuthenticatedGroupRequiresToken(t *testing.T) {
	paths := []struct{ method, path string }{
		{http.MethodGet, "/account"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/transfers"},
		{http.MethodGet, "/transfers/3001"},
		{http.MethodPost, "/transfers"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			f := newFixture(t)

			rec := f.serve(httptest.NewRequest(p.method, p.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestRoutes_TransferByIDThroughRouter(t *testing.T) {
	f := newFixture(t)
	f.expectToken(aliceID)
	f.ledger.EXPECT().GetTransfer(gomock.Any(), aliceID, int64(3001)).Return(sampleTransfer(), nil)

	rec := f.serve(authed(http.MethodGet, "/transfers/3001", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transferId":3001`)
}

func TestRoutes_PostTransferThroughRouter(t *testing.T) {
	f := newFixture(t)
	f.expectToken(aliceID)
	f.ledger.EXPECT().
		SendTransfer(gomock.Any(), aliceID, gomock.Any()).
		Return(sampleTransfer(), nil)

	rec := f.serve(authed(http.MethodPost, "/transfers", `{"fromUserId":1001,"toUserId":1002,"amount":"25.00"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoutes_PublicRoutesSkipAuth(t *testing.T) {
	f := newFixture(t)
	f.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.0.0", "", ""))

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		method, path string
		wantAllow    string
	}{
		{http.MethodDelete, "/transfers", "GET, POST"},
		{http.MethodPut, "/transfers/3001", "GET"},
		{http.MethodGet, "/login", "POST"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			f := newFixture(t)

			rec := f.serve(httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/private-data", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
