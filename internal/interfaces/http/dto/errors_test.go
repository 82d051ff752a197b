package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusBadRequest},
		{"PASSWORD_MISMATCH", http.StatusBadRequest},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"INVALID_IDENTIFICATION", http.StatusBadRequest},
		{"INVALID_DATE", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponseEnvelope(t *testing.T) {
	resp := NewSuccessResponseWithSummary([]string{"a"}, 10, 2, 5, 2, map[string]int{"receitas": 1})
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, int64(10), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.NotNil(t, resp.Summary)

	errResp := NewErrorResponse("Registro não encontrado")
	assert.False(t, errResp.Success)
	assert.Equal(t, "Registro não encontrado", errResp.Message)
}
