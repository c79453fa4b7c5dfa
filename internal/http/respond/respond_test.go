package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyapp/tally/internal/http/respond"
)

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.OK(rec, http.StatusCreated, "child created", map[string]int{"total_points": 10})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Equal(t, "child created", env.Message)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Errors)
}

func TestFail(t *testing.T) {
	rec := httptest.NewRecorder()

	respond.Fail(rec, http.StatusBadRequest, "invalid request body", "unexpected EOF")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	assert.False(t, env.Success)
	assert.Equal(t, "invalid request body", env.Message)
	assert.Nil(t, env.Data)
	assert.Equal(t, []string{"unexpected EOF"}, env.Errors)
}
