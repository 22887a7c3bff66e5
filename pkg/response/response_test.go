package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "rid-1")
	Success(c, 0, map[string]int{"user_id": 1}, "ok", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "rid-1", got["request_id"])
	assert.Equal(t, map[string]any{"user_id": float64(1)}, got["data"])
	assert.NotContains(t, got, "error")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error[any](c, 0, "bad", map[string]string{"name": "is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	got = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "bad", got["message"])
	assert.NotContains(t, got, "data")
}
