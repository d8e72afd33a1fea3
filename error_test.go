package ogp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/inutamago-dogegg/ogp"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ogp.Errorf(ogp.EHTTP, "HTTP %d for %s", 404, "https://example.com")

	assert.Equal(t, ogp.EHTTP, ogp.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com", ogp.ErrorMessage(err))
	assert.Equal(t, "HTTP 404 for https://example.com", err.Error())
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ogp.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ogp.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", ogp.Errorf(ogp.ETRANSPORT, "connection refused"))

	assert.Equal(t, ogp.ETRANSPORT, ogp.ErrorCode(err))
	assert.Equal(t, "connection refused", ogp.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, ogp.EINTERNAL, ogp.ErrorCode(err))
	assert.Equal(t, "Internal error", ogp.ErrorMessage(err))
}
