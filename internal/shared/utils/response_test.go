package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/estately/estately/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		errType string
		details string
		message string
	}{
		{"not found", apperrors.NewNotFoundError("store not found", "a.example.com"), http.StatusNotFound, "not_found", "a.example.com", "store not found"},
		{"wrapped conflict", fmt.Errorf("upload: %w", apperrors.NewConflictError("storage unavailable")), http.StatusConflict, "conflict", "", "storage unavailable"},
		{"plain error hidden", errors.New("dial tcp: refused"), http.StatusInternalServerError, "internal_error", "", "Internal server error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.errType, resp.Error.Type)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, tt.details, resp.Error.Details)
		})
	}
}

func TestListSuccessResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ListSuccessResponse(c, []string{"a", "b"}, 45, 2, 20)

	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.TotalPages)
	assert.Equal(t, int64(45), resp.Data.Total)
}

func TestValidatePagination(t *testing.T) {
	p := ValidatePagination(0, 1000)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PageSize)

	p = ValidatePagination(3, 0)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PageSize)
}
