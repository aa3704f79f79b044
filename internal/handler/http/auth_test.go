// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const credentialsBody = `{"username":"alice","password":"secret"}`

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f fixture)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: credentialsBody,
			setup: func(f fixture) {
				f.auth.EXPECT().
					RegisterUser(gomock.Any(), models.User{Username: "alice", Password: "secret"}).
					Return(models.User{UserID: aliceID, Username: "alice"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"userId":1001,"username":"alice"}`,
		},
		{
			name:       "invalid JSON",
			body:       `{"username":`,
			setup:      func(fixture) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided",
		},
		{
			name:       "unknown field",
			body:       `{"username":"alice","password":"secret","admin":true}`,
			setup:      func(fixture) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided",
		},
		{
			name: "username taken",
			body: credentialsBody,
			setup: func(f fixture) {
				f.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrUsernameTaken)
			},
			wantStatus: http.StatusConflict,
			wantBody:   "username already exists",
		},
		{
			name: "blank credentials",
			body: `{"username":" ","password":""}`,
			setup: func(f fixture) {
				f.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided",
		},
		{
			name: "storage failure",
			body: credentialsBody,
			setup: func(f fixture) {
				f.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := httptest.NewRecorder()
			f.handler.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, bodyText(rec))
		})
	}
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	found := models.User{UserID: aliceID, Username: "alice"}

	f.auth.EXPECT().
		Login(gomock.Any(), models.User{Username: "alice", Password: "secret"}).
		Return(found, nil)
	f.auth.EXPECT().
		CreateToken(gomock.Any(), found).
		Return(models.Token{SignedString: "signed.jwt.token", UserID: aliceID}, nil)

	rec := httptest.NewRecorder()
	f.handler.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(credentialsBody)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.LoginResponse{Token: "signed.jwt.token", UserID: aliceID, Username: "alice"}, resp)
}

func TestLogin_WrongCredentials(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongCredentials)

	rec := httptest.NewRecorder()
	f.handler.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(credentialsBody)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid username/password", bodyText(rec))
}

func TestLogin_InvalidJSON(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", bodyText(rec))
}

func TestLogin_TokenCreationFails(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: aliceID, Username: "alice"}, nil)
	f.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := httptest.NewRecorder()
	f.handler.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(credentialsBody)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", bodyText(rec))
}
