package sanity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, config Config) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config)
	client.baseOverride = server.URL
	return client
}

func TestCanWrite(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{
			name:     "fully configured",
			config:   Config{ProjectID: "abc123", Dataset: "production", Token: "sk-test"},
			expected: true,
		},
		{
			name:     "missing token",
			config:   Config{ProjectID: "abc123", Dataset: "production"},
			expected: false,
		},
		{
			name:     "missing project",
			config:   Config{Dataset: "production", Token: "sk-test"},
			expected: false,
		},
		{
			name:     "empty",
			config:   Config{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewClient(tt.config).CanWrite())
		})
	}
}

func TestQuery_EncodesParamsAndDecodesResult(t *testing.T) {
	var gotQuery, gotSlug, gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/query/production", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		gotSlug = r.URL.Query().Get("$slug")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"result":{"title":"Asha & Rohan","slug":"asha-rohan"}}`))
	}, Config{ProjectID: "abc123", Dataset: "production", Token: "sk-test"})

	var story struct {
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
	err := client.Query(context.Background(), `*[_type == "weddingStory" && slug.current == $slug][0]`,
		map[string]interface{}{"slug": "asha-rohan"}, &story)

	require.NoError(t, err)
	assert.Equal(t, `*[_type == "weddingStory" && slug.current == $slug][0]`, gotQuery)
	assert.Equal(t, `"asha-rohan"`, gotSlug, "params are JSON-encoded")
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "Asha & Rohan", story.Title)
}

func TestQuery_NilResultIsDiscarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[1,2,3]}`))
	}, Config{ProjectID: "abc123", Dataset: "production"})

	err := client.Query(context.Background(), "*", nil, nil)
	assert.NoError(t, err)
}

func TestQuery_SurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`))
	}, Config{ProjectID: "abc123", Dataset: "production"})

	err := client.Query(context.Background(), "*[", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "expected '}' following object body")
}

func TestCreate_PostsMutation(t *testing.T) {
	var gotBody mutateRequest
	var gotPath, gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"transactionId":"abc","results":[]}`))
	}, Config{ProjectID: "abc123", Dataset: "production", Token: "sk-test"})

	lead := NewLead("Asha & Rohan", "+91 98765 43210", "2026-12-12", "Udaipur", LeadSourceAvailability)
	err := client.Create(context.Background(), lead)

	require.NoError(t, err)
	assert.Equal(t, "/data/mutate/production", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	require.Len(t, gotBody.Mutations, 1)

	doc, ok := gotBody.Mutations[0].Create.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "lead", doc["_type"])
	assert.Equal(t, "Website form", doc["source"])
}

func TestCreate_RequiresWriteConfig(t *testing.T) {
	client := NewClient(Config{ProjectID: "abc123", Dataset: "production"})

	err := client.Create(context.Background(), NewLead("n", "w", "", "c", LeadSourceContact))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
