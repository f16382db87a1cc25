package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/media"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxTestUpload = 1 << 20

type multipartFile struct {
	field, name string
	content     []byte
}

// multipartRequest builds a multipart/form-data request.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...multipartFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestListDestinationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("empty list is an array", func(t *testing.T) {
		mockSvc := NewMockDestinationLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), userID).Return([]models.Destination{}, nil)

		req := authed(httptest.NewRequest(http.MethodGet, "/api/destinations", nil), userID)
		rr := httptest.NewRecorder()
		NewListDestinationsHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockDestinationLister(ctrl)

		rr := httptest.NewRecorder()
		NewListDestinationsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/destinations", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	tests := []struct {
		name         string
		pathID       string
		mockSetup    func(m *MockDestinationGetter)
		expectedCode int
	}{
		{
			name:   "found",
			pathID: id.String(),
			mockSetup: func(m *MockDestinationGetter) {
				m.EXPECT().Get(gomock.Any(), userID, id).Return(&models.Destination{ID: id, UserID: userID, Name: "Paris"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "owned by someone else",
			pathID: id.String(),
			mockSetup: func(m *MockDestinationGetter) {
				m.EXPECT().Get(gomock.Any(), userID, id).Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "absent",
			pathID: id.String(),
			mockSetup: func(m *MockDestinationGetter) {
				m.EXPECT().Get(gomock.Any(), userID, id).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			pathID:       "42",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDestinationGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withID(authed(httptest.NewRequest(http.MethodGet, "/api/destinations/"+tt.pathID, nil), userID), tt.pathID)
			rr := httptest.NewRecorder()
			NewGetDestinationHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("multipart with images", func(t *testing.T) {
		mockSvc := NewMockDestinationCreator(ctrl)
		mockSvc.EXPECT().Create(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in models.DestinationInput, uploads []media.Upload) (*models.Destination, error) {
				assert.Equal(t, "Paris", in.Name)
				assert.Equal(t, "FR", in.CountryCode)
				assert.True(t, in.Visited)
				require.NotNil(t, in.Location)
				assert.Equal(t, models.Location{Lat: 48.85, Lng: 2.35}, *in.Location)
				require.NotNil(t, in.ReminderDate)
				assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), *in.ReminderDate)

				require.Len(t, uploads, 2)
				assert.Equal(t, "a.png", uploads[0].Filename)
				assert.Equal(t, "b.png", uploads[1].Filename)
				data, err := io.ReadAll(uploads[0].Body)
				require.NoError(t, err)
				assert.Equal(t, []byte("first"), data)

				return &models.Destination{ID: uuid.New(), UserID: userID, Name: in.Name}, nil
			})

		req := multipartRequest(t, http.MethodPost, "/api/destinations",
			map[string]string{
				"name":         "Paris",
				"countryCode":  "FR",
				"location":     `{"lat":48.85,"lng":2.35}`,
				"visited":      "true",
				"reminderDate": "2026-05-01",
			},
			multipartFile{"images", "a.png", []byte("first")},
			multipartFile{"images", "b.png", []byte("second")},
		)
		rr := httptest.NewRecorder()
		NewCreateDestinationHandler(mockSvc, maxTestUpload)(rr, authed(req, userID))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID.String(), resp["userId"])
		assert.Equal(t, []any{}, resp["images"])
	})

	t.Run("json without images", func(t *testing.T) {
		mockSvc := NewMockDestinationCreator(ctrl)
		mockSvc.EXPECT().Create(gomock.Any(), userID, gomock.Any(), gomock.Len(0)).
			Return(&models.Destination{ID: uuid.New(), UserID: userID, Name: "Rome"}, nil)

		body := `{"name":"Rome","countryCode":"IT","location":{"lat":41.9,"lng":12.5}}`
		req := authed(httptest.NewRequest(http.MethodPost, "/api/destinations", bytes.NewBufferString(body)), userID)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		NewCreateDestinationHandler(mockSvc, maxTestUpload)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("malformed location", func(t *testing.T) {
		mockSvc := NewMockDestinationCreator(ctrl)

		req := multipartRequest(t, http.MethodPost, "/api/destinations",
			map[string]string{"name": "Paris", "countryCode": "FR", "location": "48.85,2.35"})
		rr := httptest.NewRecorder()
		NewCreateDestinationHandler(mockSvc, maxTestUpload)(rr, authed(req, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "validation failed: location must be valid JSON", decodeMessage(t, rr))
	})

	t.Run("unsupported upload", func(t *testing.T) {
		mockSvc := NewMockDestinationCreator(ctrl)
		mockSvc.EXPECT().Create(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil, services.ErrValidation)

		req := multipartRequest(t, http.MethodPost, "/api/destinations",
			map[string]string{"name": "Paris", "countryCode": "FR", "location": `{"lat":1,"lng":2}`},
			multipartFile{"images", "notes.txt", []byte("plain text")},
		)
		rr := httptest.NewRecorder()
		NewCreateDestinationHandler(mockSvc, maxTestUpload)(rr, authed(req, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockDestinationCreator(ctrl)

		req := multipartRequest(t, http.MethodPost, "/api/destinations", map[string]string{"name": "Paris"})
		rr := httptest.NewRecorder()
		NewCreateDestinationHandler(mockSvc, maxTestUpload)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	t.Run("partial multipart update", func(t *testing.T) {
		mockSvc := NewMockDestinationUpdater(ctrl)
		mockSvc.EXPECT().Update(gomock.Any(), userID, id, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, patch models.DestinationPatch, uploads []media.Upload) (*models.Destination, error) {
				require.NotNil(t, patch.Notes)
				assert.Equal(t, "bring umbrella", *patch.Notes)
				assert.Nil(t, patch.Name)
				assert.Nil(t, patch.Visited)
				assert.Nil(t, patch.Location)
				assert.True(t, patch.ClearReminderDate)
				assert.Equal(t, []string{"uploads/old.png"}, patch.ImagesToDelete)
				require.Len(t, uploads, 1)
				assert.Equal(t, "new.png", uploads[0].Filename)
				return &models.Destination{ID: id, UserID: userID}, nil
			})

		req := multipartRequest(t, http.MethodPut, "/api/destinations/"+id.String(),
			map[string]string{
				"notes":          "bring umbrella",
				"reminderDate":   "",
				"imagesToDelete": `["uploads/old.png"]`,
			},
			multipartFile{"newImages", "new.png", []byte("png")},
			multipartFile{"images", "ignored.png", []byte("png")},
		)
		rr := httptest.NewRecorder()
		NewUpdateDestinationHandler(mockSvc, maxTestUpload)(rr, withID(authed(req, userID), id.String()))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid visited flag", func(t *testing.T) {
		mockSvc := NewMockDestinationUpdater(ctrl)

		req := multipartRequest(t, http.MethodPut, "/api/destinations/"+id.String(), map[string]string{"visited": "maybe"})
		rr := httptest.NewRecorder()
		NewUpdateDestinationHandler(mockSvc, maxTestUpload)(rr, withID(authed(req, userID), id.String()))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "validation failed: visited must be true or false", decodeMessage(t, rr))
	})

	t.Run("forbidden", func(t *testing.T) {
		mockSvc := NewMockDestinationUpdater(ctrl)
		mockSvc.EXPECT().Update(gomock.Any(), userID, id, gomock.Any(), gomock.Any()).Return(nil, services.ErrForbidden)

		req := authed(httptest.NewRequest(http.MethodPut, "/api/destinations/"+id.String(), bytes.NewBufferString(`{"name":"Lyon"}`)), userID)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		NewUpdateDestinationHandler(mockSvc, maxTestUpload)(rr, withID(req, id.String()))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Access denied", decodeMessage(t, rr))
	})
}

func TestDeleteDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
		expectedBody string
	}{
		{"deleted", nil, http.StatusOK, `{"message":"Destination deleted"}`},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, `{"message":"Access denied"}`},
		{"absent", services.ErrNotFound, http.StatusNotFound, `{"message":"Not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDestinationDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), userID, id).Return(tt.svcErr)

			req := withID(authed(httptest.NewRequest(http.MethodDelete, "/api/destinations/"+id.String(), nil), userID), id.String())
			rr := httptest.NewRecorder()
			NewDeleteDestinationHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
