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

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestSuccess_Envelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"id": "abc"})
	})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "abc", body["data"].(map[string]interface{})["id"])
	assert.NotContains(t, body, "error")
}

func TestError_Envelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado")
	})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, false, body["success"])
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errObj["code"])
	assert.Equal(t, "Usuário não encontrado", errObj["message"])
	assert.NotContains(t, errObj, "details")
}

func TestErrorWithDetails_Envelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Dados inválidos",
			map[string]string{"Website": "url"})
	})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	errObj := body["error"].(map[string]interface{})
	details := errObj["details"].(map[string]interface{})
	assert.Equal(t, "url", details["Website"])
}
