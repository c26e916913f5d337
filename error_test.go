package unifero_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/unifero"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := unifero.Errorf(unifero.EINVALID, "bad input")
		assert.Equal(t, unifero.EINVALID, unifero.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("context: %w", unifero.Errorf(unifero.ETIMEOUT, "timeout after 10s"))
		assert.Equal(t, unifero.ETIMEOUT, unifero.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, unifero.EINTERNAL, unifero.ErrorCode(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", unifero.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := unifero.Errorf(unifero.EHTTP, "HTTP %d", 404)
		assert.Equal(t, "HTTP 404", unifero.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "internal error", unifero.ErrorMessage(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", unifero.ErrorMessage(nil))
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := unifero.Errorf(unifero.ENETWORK, "network error: connection refused")
	assert.Equal(t, "unifero error: code=network_error message=network error: connection refused", err.Error())
}
