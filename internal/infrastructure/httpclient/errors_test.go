package httpclient

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatusCode(t *testing.T) {
	assert.Nil(t, ClassifyStatusCode(http.StatusOK, nil))
	assert.Nil(t, ClassifyStatusCode(http.StatusCreated, nil))
	assert.Nil(t, ClassifyStatusCode(http.StatusUnprocessableEntity, []byte(`{}`)))

	cases := map[int]ErrorCode{
		http.StatusUnauthorized:        ErrCodeAuthentication,
		http.StatusForbidden:           ErrCodeAuthorization,
		http.StatusNotFound:            ErrCodeNotFound,
		http.StatusUpgradeRequired:     ErrCodeUpgradeRequired,
		http.StatusTooManyRequests:     ErrCodeTooManyRequests,
		http.StatusInternalServerError: ErrCodeServer,
		http.StatusServiceUnavailable:  ErrCodeServiceUnavailable,
		http.StatusBadRequest:          ErrCodeUnexpected,
		http.StatusBadGateway:          ErrCodeUnexpected,
	}
	for status, code := range cases {
		err := ClassifyStatusCode(status, []byte("body"))
		require.NotNil(t, err, "status %d", status)
		assert.Equal(t, code, err.Code, "status %d", status)
		assert.Equal(t, status, err.HTTPStatusCode())
		assert.Equal(t, []byte("body"), err.Body)
		assert.False(t, err.Temporary())
	}
}

func TestErrorHelpers(t *testing.T) {
	timeout := NewTimeoutError(context.DeadlineExceeded)
	assert.True(t, IsTimeout(timeout))
	assert.True(t, timeout.Temporary())
	assert.True(t, errors.Is(timeout, context.DeadlineExceeded))
	assert.Equal(t, 0, timeout.HTTPStatusCode())
	assert.Contains(t, timeout.Error(), "timeout")

	conn := NewConnectionError(errors.New("refused"))
	assert.True(t, conn.Temporary())
	assert.False(t, IsTimeout(conn))

	notFound := ClassifyStatusCode(http.StatusNotFound, nil)
	assert.True(t, IsNotFound(notFound))
	assert.Equal(t, "httpclient: not_found (HTTP 404): HTTP 404", notFound.Error())
	assert.False(t, IsNotFound(errors.New("x")))

	assert.Equal(t, "service_unavailable", ErrCodeServiceUnavailable.String())
	assert.Equal(t, "unexpected", ErrorCode(99).String())
}
