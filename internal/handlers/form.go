package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/media"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/services"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

// DestinationRequest is the decoded body of destination create and update
// requests, sent as multipart/form-data or JSON. Absent fields are nil.
// swagger:model DestinationRequest
type DestinationRequest struct {
	// Display name
	// default: Paris
	Name *string `json:"name"`

	// Free-text notes
	Notes *string `json:"notes"`

	// Free-text travel journal
	Journal *string `json:"journal"`

	// Geographic point; a JSON string in multipart bodies
	Location *models.Location `json:"location"`

	// Visited flag; "true" or "false" in multipart bodies
	Visited *bool `json:"visited"`

	// ISO 3166-1 alpha-2 country code
	// default: FR
	CountryCode *string `json:"countryCode"`

	// RFC 3339 timestamp or YYYY-MM-DD date; empty clears the reminder
	ReminderDate *string `json:"reminderDate"`

	// Image references to remove (update only); a JSON array string in multipart bodies
	ImagesToDelete []string `json:"imagesToDelete"`
}

// destinationForm is a decoded destination request with its uploads.
// close must be called once the uploads have been consumed.
type destinationForm struct {
	DestinationRequest
	uploads []media.Upload
	close   func()
}

// decodeDestinationForm decodes a multipart or JSON destination body.
// Files are read from fileField. Any malformed field is a validation error.
func decodeDestinationForm(w http.ResponseWriter, r *http.Request, maxBytes int64, fileField string) (*destinationForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	form := &destinationForm{close: func() {}}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := json.NewDecoder(r.Body).Decode(&form.DestinationRequest); err != nil {
			return nil, bodyError(err)
		}
		return form, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, bodyError(err)
	}

	fields := formFields(r.MultipartForm.Value)
	req := &form.DestinationRequest
	req.Name = fields.str("name")
	req.Notes = fields.str("notes")
	req.Journal = fields.str("journal")
	req.CountryCode = fields.str("countryCode")
	req.ReminderDate = fields.str("reminderDate")

	var err error
	if req.Visited, err = fields.boolean("visited"); err != nil {
		return nil, err
	}
	if err = fields.json("location", &req.Location); err != nil {
		return nil, err
	}
	if err = fields.json("imagesToDelete", &req.ImagesToDelete); err != nil {
		return nil, err
	}

	uploads, closeFiles, err := openUploads(r.MultipartForm.File[fileField])
	if err != nil {
		_ = r.MultipartForm.RemoveAll()
		return nil, err
	}
	form.uploads = uploads
	form.close = func() {
		closeFiles()
		_ = r.MultipartForm.RemoveAll()
	}

	return form, nil
}

// input converts a create request.
func (req *DestinationRequest) input() (models.DestinationInput, error) {
	in := models.DestinationInput{
		Name:        deref(req.Name),
		Notes:       deref(req.Notes),
		Journal:     deref(req.Journal),
		Location:    req.Location,
		CountryCode: deref(req.CountryCode),
	}
	if req.Visited != nil {
		in.Visited = *req.Visited
	}

	date, err := parseDate(deref(req.ReminderDate))
	if err != nil {
		return in, err
	}
	in.ReminderDate = date

	return in, nil
}

// patch converts an update request.
func (req *DestinationRequest) patch() (models.DestinationPatch, error) {
	p := models.DestinationPatch{
		Name:           req.Name,
		Notes:          req.Notes,
		Journal:        req.Journal,
		Location:       req.Location,
		Visited:        req.Visited,
		CountryCode:    req.CountryCode,
		ImagesToDelete: req.ImagesToDelete,
	}

	if req.ReminderDate != nil {
		date, err := parseDate(*req.ReminderDate)
		if err != nil {
			return p, err
		}
		p.ReminderDate = date
		p.ClearReminderDate = date == nil
	}

	return p, nil
}

// formFields reads typed values out of multipart text fields.
type formFields map[string][]string

func (f formFields) str(key string) *string {
	values, ok := f[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func (f formFields) boolean(key string) (*bool, error) {
	s := f.str(key)
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", services.ErrValidation, key)
	}
	return &b, nil
}

// json decodes a field holding a JSON document. Absent or empty fields leave dest untouched.
func (f formFields) json(key string, dest any) error {
	s := f.str(key)
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(*s), dest); err != nil {
		return fmt.Errorf("%w: %s must be valid JSON", services.ErrValidation, key)
	}
	return nil
}

// parseDate accepts RFC 3339 timestamps and YYYY-MM-DD dates. Empty means no date.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: reminderDate must be a date (YYYY-MM-DD) or RFC 3339 timestamp", services.ErrValidation)
}

// openUploads opens every file header. On failure the already opened files are closed.
func openUploads(headers []*multipart.FileHeader) ([]media.Upload, func(), error) {
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	uploads := make([]media.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		files = append(files, f)
		uploads = append(uploads, media.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, closeAll, nil
}

// decodeJSON decodes a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: request body exceeds %d bytes", services.ErrValidation, tooLarge.Limit)
	}
	return fmt.Errorf("%w: invalid request body", services.ErrValidation)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
