package artext_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/artext"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := artext.Errorf(artext.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, artext.ENOTFOUND, artext.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", artext.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, artext.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, artext.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("parsing page: %w", artext.Errorf(artext.EINVALID, "empty HTML input"))

	assert.Equal(t, artext.EINVALID, artext.ErrorCode(err))
	assert.Equal(t, "empty HTML input", artext.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, artext.EINTERNAL, artext.ErrorCode(err))
	assert.Equal(t, "Internal error.", artext.ErrorMessage(err))
}
