package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		payload    any
		wantBody   string
	}{
		{
			name:       "Object Payload",
			statusCode: http.StatusOK,
			payload:    map[string]string{"key": "value"},
			wantBody:   `{"key":"value"}`,
		},
		{
			name:       "Nil Payload",
			statusCode: http.StatusNoContent,
			payload:    nil,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondWithJSON(rec, tt.statusCode, tt.payload)

			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusBadRequest, "something went wrong")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "something went wrong", resp.Message)
}
