package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected *time.Time
		wantErr  bool
	}{
		{"empty", "", nil, false},
		{"blank", "   ", nil, false},
		{"date", "2026-03-15", ptrTime(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)), false},
		{"timestamp", "2026-03-15T10:30:00Z", ptrTime(time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)), false},
		{"garbage", "next tuesday", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrValidation)
				return
			}
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got))
		})
	}
}

func TestDestinationRequestPatch(t *testing.T) {
	t.Run("absent reminder is untouched", func(t *testing.T) {
		p, err := (&DestinationRequest{}).patch()
		require.NoError(t, err)
		assert.Nil(t, p.ReminderDate)
		assert.False(t, p.ClearReminderDate)
	})

	t.Run("empty reminder clears", func(t *testing.T) {
		empty := ""
		p, err := (&DestinationRequest{ReminderDate: &empty}).patch()
		require.NoError(t, err)
		assert.True(t, p.ClearReminderDate)
	})

	t.Run("reminder set", func(t *testing.T) {
		date := "2026-01-02"
		p, err := (&DestinationRequest{ReminderDate: &date}).patch()
		require.NoError(t, err)
		require.NotNil(t, p.ReminderDate)
		assert.False(t, p.ClearReminderDate)
	})
}

func TestDecodeDestinationForm(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"Oslo","visited":false,"imagesToDelete":["a"]}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		form, err := decodeDestinationForm(httptest.NewRecorder(), req, maxTestUpload, "images")
		require.NoError(t, err)
		defer form.close()

		require.NotNil(t, form.Name)
		assert.Equal(t, "Oslo", *form.Name)
		require.NotNil(t, form.Visited)
		assert.False(t, *form.Visited)
		assert.Equal(t, []string{"a"}, form.ImagesToDelete)
		assert.Empty(t, form.uploads)
	})

	t.Run("multipart absent fields stay nil", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, "/", map[string]string{"journal": "day one"})

		form, err := decodeDestinationForm(httptest.NewRecorder(), req, maxTestUpload, "newImages")
		require.NoError(t, err)
		defer form.close()

		require.NotNil(t, form.Journal)
		assert.Equal(t, "day one", *form.Journal)
		assert.Nil(t, form.Name)
		assert.Nil(t, form.Visited)
		assert.Nil(t, form.Location)
		assert.Nil(t, form.ImagesToDelete)
	})

	t.Run("bad imagesToDelete", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, "/", map[string]string{"imagesToDelete": "uploads/a.png"})

		_, err := decodeDestinationForm(httptest.NewRecorder(), req, maxTestUpload, "newImages")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("json body too large", func(t *testing.T) {
		body := `{"notes":"` + strings.Repeat("x", 64) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))

		_, err := decodeDestinationForm(httptest.NewRecorder(), req, 16, "images")
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Contains(t, err.Error(), "exceeds 16 bytes")
	})
}

func ptrTime(t time.Time) *time.Time { return &t }
