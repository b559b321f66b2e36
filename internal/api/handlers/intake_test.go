package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maasproduction/studio-api/internal/api/middleware"
	"github.com/maasproduction/studio-api/internal/logging"
	"github.com/maasproduction/studio-api/internal/ratelimit"
	"github.com/maasproduction/studio-api/internal/sanity"
	"github.com/maasproduction/studio-api/internal/service"
)

// Mock ContentWriter
type mockContentWriter struct {
	canWrite    bool
	createErr   error
	createCalls int
	lastLead    *sanity.Lead
}

func (m *mockContentWriter) CanWrite() bool { return m.canWrite }

func (m *mockContentWriter) Create(ctx context.Context, doc interface{}) error {
	m.createCalls++
	if lead, ok := doc.(*sanity.Lead); ok {
		m.lastLead = lead
	}
	return m.createErr
}

// Mock Mailer
type mockMailer struct {
	sendErr   error
	sendCalls int
	lastMsg   service.EmailMessage
}

func (m *mockMailer) Send(ctx context.Context, msg service.EmailMessage) error {
	m.sendCalls++
	m.lastMsg = msg
	return m.sendErr
}

type pipelineFixture struct {
	router *gin.Engine
	store  *mockContentWriter
	mailer *mockMailer
}

func newPipeline(t *testing.T) *pipelineFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logging.InitLogger(&logging.LogConfig{
		File:       filepath.Join(t.TempDir(), "test.log"),
		MaxSize:    10,
		MaxBackups: 1,
		MaxAge:     1,
	})

	store := &mockContentWriter{canWrite: true}
	mailer := &mockMailer{}

	handler := NewIntakeHandler(
		service.NewLeadService(store),
		service.NewMailService(mailer, "studio@example.com", "Website <no-reply@example.com>"),
	)
	validation := middleware.NewValidationMiddleware()
	limiter := ratelimit.NewMemoryLimiter()

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/availability",
		middleware.SubmissionRateLimit(limiter),
		validation.ValidateAvailabilityRequest(),
		handler.CheckAvailability,
	)
	v1.POST("/contact",
		middleware.SubmissionRateLimit(limiter),
		validation.ValidateContactRequest(),
		handler.SubmitContact,
	)

	return &pipelineFixture{router: router, store: store, mailer: mailer}
}

func (f *pipelineFixture) post(path, addr string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	switch v := payload.(type) {
	case string:
		body.WriteString(v)
	default:
		json.NewEncoder(&body).Encode(v)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if addr != "" {
		req.Header.Set("X-Forwarded-For", addr)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func availabilityPayload() map[string]string {
	return map[string]string{
		"name":        "Asha & Rohan",
		"whatsapp":    "+91 98765 43210",
		"weddingDate": time.Now().AddDate(0, 3, 0).Format("2006-01-02"),
		"city":        "Udaipur",
	}
}

func contactPayload() map[string]string {
	return map[string]string{
		"firstName": "Meera",
		"lastName":  "Iyer",
		"email":     "meera@example.com",
		"subject":   "Wedding in Goa",
		"message":   "We are planning a two-day celebration in December.",
	}
}

func TestAvailability_Success(t *testing.T) {
	f := newPipeline(t)

	w := f.post("/api/v1/availability", "203.0.113.7", availabilityPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, 1, f.store.createCalls)
	assert.Equal(t, 1, f.mailer.sendCalls)

	require.NotNil(t, f.store.lastLead)
	assert.Equal(t, "lead", f.store.lastLead.Type)
	assert.Equal(t, "Website form", f.store.lastLead.Source)
	assert.Equal(t, "Udaipur", f.store.lastLead.City)
}

func TestAvailability_MalformedBody(t *testing.T) {
	f := newPipeline(t)

	w := f.post("/api/v1/availability", "203.0.113.7", `{"name": "Asha"`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body."}`, w.Body.String())
	assert.Zero(t, f.store.createCalls)
	assert.Zero(t, f.mailer.sendCalls)
}

func TestAvailability_ValidationFailure(t *testing.T) {
	f := newPipeline(t)

	payload := availabilityPayload()
	payload["whatsapp"] = "12345"
	w := f.post("/api/v1/availability", "203.0.113.7", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error       string              `json:"error"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed.", resp.Error)
	assert.Contains(t, resp.FieldErrors, "whatsapp")

	assert.Zero(t, f.store.createCalls)
	assert.Zero(t, f.mailer.sendCalls)
}

func TestAvailability_WrongTypedFieldIsAValidationError(t *testing.T) {
	f := newPipeline(t)

	// Parsable JSON with a number where a string belongs is a field
	// problem, not a malformed body.
	w := f.post("/api/v1/availability", "203.0.113.7",
		`{"name":123,"whatsapp":"+91 98765 43210","weddingDate":"2099-01-01","city":"Udaipur"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error       string              `json:"error"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed.", resp.Error)
	assert.Contains(t, resp.FieldErrors, "name")
	assert.NotContains(t, resp.FieldErrors, "whatsapp", "well-typed fields still decode")

	assert.Zero(t, f.store.createCalls)
	assert.Zero(t, f.mailer.sendCalls)
}

func TestAvailability_HoneypotShortCircuits(t *testing.T) {
	f := newPipeline(t)

	payload := availabilityPayload()
	payload["company"] = "Acme"
	w := f.post("/api/v1/availability", "203.0.113.7", payload)

	// Identical response to a genuine success, with no side effects.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Zero(t, f.store.createCalls)
	assert.Zero(t, f.mailer.sendCalls)
}

func TestAvailability_PersistenceFailureIsAbsorbed(t *testing.T) {
	f := newPipeline(t)
	f.store.createErr = fmt.Errorf("content store is down")

	w := f.post("/api/v1/availability", "203.0.113.7", availabilityPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, 1, f.store.createCalls, "write must still be attempted")
	assert.Equal(t, 1, f.mailer.sendCalls, "notification must still be sent")
}

func TestAvailability_SkipsPersistenceWhenWriteDisabled(t *testing.T) {
	f := newPipeline(t)
	f.store.canWrite = false

	w := f.post("/api/v1/availability", "203.0.113.7", availabilityPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, f.store.createCalls)
	assert.Equal(t, 1, f.mailer.sendCalls)
}

func TestAvailability_NotificationFailureSurfaces(t *testing.T) {
	f := newPipeline(t)
	f.mailer.sendErr = fmt.Errorf("smtp relay rejected the message")

	w := f.post("/api/v1/availability", "203.0.113.7", availabilityPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, availabilityFailureMessage, resp.Error)
}

func TestAvailability_RateLimit(t *testing.T) {
	f := newPipeline(t)

	for i := 1; i <= ratelimit.MaxPerWindow; i++ {
		w := f.post("/api/v1/availability", "198.51.100.9", availabilityPayload())
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass the gate", i)
	}

	w := f.post("/api/v1/availability", "198.51.100.9", availabilityPayload())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Please try again in a moment."}`, w.Body.String())

	// Other addresses are unaffected
	w = f.post("/api/v1/availability", "198.51.100.10", availabilityPayload())
	assert.Equal(t, http.StatusOK, w.Code)

	// Rejected requests never reach the sinks
	assert.Equal(t, ratelimit.MaxPerWindow+1, f.mailer.sendCalls)
}

func TestRateLimit_SharedAcrossBothForms(t *testing.T) {
	f := newPipeline(t)

	for i := 0; i < ratelimit.MaxPerWindow; i++ {
		f.post("/api/v1/contact", "198.51.100.20", contactPayload())
	}

	w := f.post("/api/v1/availability", "198.51.100.20", availabilityPayload())
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "both endpoints share one bucket per address")
}

func TestContact_Success(t *testing.T) {
	f := newPipeline(t)

	w := f.post("/api/v1/contact", "203.0.113.8", contactPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	// Contact submissions reuse the availability-shaped lead fields.
	require.NotNil(t, f.store.lastLead)
	assert.Equal(t, "Meera Iyer", f.store.lastLead.Name)
	assert.Equal(t, "meera@example.com", f.store.lastLead.Whatsapp)
	assert.Equal(t, "Wedding in Goa", f.store.lastLead.City)
	assert.Empty(t, f.store.lastLead.WeddingDate)
	assert.Equal(t, "Contact form", f.store.lastLead.Source)
}

func TestContact_HoneypotShortCircuits(t *testing.T) {
	f := newPipeline(t)

	payload := contactPayload()
	payload["company"] = "Acme"
	w := f.post("/api/v1/contact", "203.0.113.8", payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Zero(t, f.store.createCalls)
	assert.Zero(t, f.mailer.sendCalls)
}

func TestContact_NotificationFailureSurfaces(t *testing.T) {
	f := newPipeline(t)
	f.mailer.sendErr = fmt.Errorf("unauthorized")

	w := f.post("/api/v1/contact", "203.0.113.8", contactPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, contactFailureMessage, resp.Error)
}

func TestHeaderlessClientsShareTheUnknownBucket(t *testing.T) {
	f := newPipeline(t)

	for i := 0; i < ratelimit.MaxPerWindow; i++ {
		w := f.post("/api/v1/availability", "", availabilityPayload())
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := f.post("/api/v1/availability", "", availabilityPayload())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
