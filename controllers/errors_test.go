package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AndersonMairnck/frontFynanceo/repository"
	"github.com/AndersonMairnck/frontFynanceo/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail_StatusAndEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrEmptyCart, http.StatusUnprocessableEntity},
		{fmt.Errorf("sessão x: %w", services.ErrSessionNotFound), http.StatusNotFound},
		{services.ErrOrderClosed, http.StatusConflict},
		{services.ErrUnknownStatus, http.StatusBadRequest},
		{&repository.APIError{Status: http.StatusUnauthorized, Message: "Não autorizado"}, http.StatusUnauthorized},
		{&repository.APIError{Status: http.StatusForbidden, Message: "proibido"}, http.StatusForbidden},
		{&repository.APIError{Status: http.StatusInternalServerError, Message: "Erro interno do servidor"}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		fail(c, tc.err)

		assert.Equal(t, tc.want, w.Code, tc.err.Error())
		var body struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.OK)
		assert.Equal(t, tc.err.Error(), body.Error)
	}
}

func TestIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for raw, want := range map[string]uint{"12": 12, "0": 0, "-3": 0, "abc": 0} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		got, ok := idParam(c, "id")
		assert.Equal(t, want, got, raw)
		assert.Equal(t, want != 0, ok, raw)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		}
	}
}
