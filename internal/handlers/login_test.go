package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "login by username",
			body: `{"identifier":"john","password":"secret1"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret1").Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "JWT_TOKEN"},
		},
		{
			name: "login by email",
			body: `{"identifier":"john@example.com","password":"secret1"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret1").Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "JWT_TOKEN"},
		},
		{
			name: "invalid credentials",
			body: `{"identifier":"john","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "Invalid credentials"},
		},
		{
			name: "internal error",
			body: `{"identifier":"john","password":"secret1"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret1").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"message": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{bad json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "validation failed: invalid request body"},
		},
		{
			name:         "body too large",
			body:         `{"identifier":"` + strings.Repeat("a", maxJSONBytes) + `"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "validation failed: request body exceeds 1048576 bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
