package aura

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		handler http.Handler
		want    map[string]string
	}{
		{handler: RootHandler(), want: map[string]string{"message": "AURA API"}},
		{handler: HealthHandler(), want: map[string]string{"status": "ok"}},
	}

	for _, tt := range tests {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		tt.handler.ServeHTTP(w, r)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tt.want, body)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	}
}
