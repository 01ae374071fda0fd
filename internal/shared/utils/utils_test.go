package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibra/internal/shared/errors"
)

func TestFormatPriceARS(t *testing.T) {
	assert.Equal(t, "$4.800", FormatPriceARS(4800))
	assert.Equal(t, "$3.500", FormatPriceARS(3500))
	assert.Equal(t, "$0", FormatPriceARS(0))
}

func TestFormatAmountARS(t *testing.T) {
	assert.Equal(t, "$4.800,50", FormatAmountARS(4800.50))
	assert.Equal(t, "$120", FormatAmountARS(120))
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("¡Nuevos **planes** con más velocidad!")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>planes</strong>")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	html, err := RenderMarkdown(`hola <script>alert("x")</script>`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hola")
}

func TestErrorResponseWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"app error keeps its code", errors.NewNotFoundError("plan no encontrado"), http.StatusNotFound, "plan no encontrado"},
		{"unauthorized", errors.NewInvalidCredentialsError("incorrectos"), http.StatusUnauthorized, "incorrectos"},
		{"plain error is not exposed", assert.AnError, http.StatusInternalServerError, "Error en la respuesta del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}
