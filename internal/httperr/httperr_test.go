package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"

	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

type entry struct {
	TaskID    string `json:"taskId" binding:"required"`
	SortOrder *int   `json:"sortOrder" binding:"required,min=0"`
}

type batch struct {
	Moves []entry `json:"moves" binding:"required,dive"`
	Level string  `json:"level" binding:"omitempty,oneof=debug info"`
}

func bind(body string) error {
	var b batch
	return binding.JSON.BindBody([]byte(body), &b)
}

func TestBindMessage(t *testing.T) {
	UseJSONFieldNames()

	tests := []struct {
		body string
		want string
	}{
		{`{}`, "moves is required"},
		{`{"moves":[{"taskId":"t1"}]}`, "moves[0].sortOrder is required"},
		{`{"moves":[{"taskId":"t1","sortOrder":-1}]}`, "moves[0].sortOrder must be at least 0"},
		{`{"moves":[],"level":"loud"}`, "level must be one of debug, info"},
		{`{"moves":"nope"}`, "moves must be of type slice"},
		{`{"moves":[`, "request body must be valid JSON"},
		{``, "request body must be valid JSON"},
	}
	for _, tt := range tests {
		err := bind(tt.body)
		if assert.Error(t, err, tt.body) {
			assert.Equal(t, tt.want, BindMessage(err), tt.body)
		}
	}

	assert.NoError(t, bind(`{"moves":[]}`))
}

func TestRespondHidesServerFaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, apperr.New(apperr.ErrConflict, "Task not found: ghost"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Task not found: ghost"}`, w.Body.String())
}
