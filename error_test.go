package articlecheck_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/articlecheck"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := articlecheck.Errorf(articlecheck.EINVALID, "url %q is malformed", "x")

	assert.Equal(t, articlecheck.EINVALID, articlecheck.ErrorCode(err))
	assert.Equal(t, "url \"x\" is malformed", articlecheck.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := articlecheck.WrapError(articlecheck.EFETCH, cause, "failed to fetch URL")

	assert.Equal(t, articlecheck.EFETCH, articlecheck.ErrorCode(err))
	assert.Equal(t, "failed to fetch URL", articlecheck.ErrorMessage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := articlecheck.Errorf(articlecheck.EANALYSIS, "bad reply")
	err := errors.Join(errors.New("outer"), inner)

	assert.Equal(t, articlecheck.EANALYSIS, articlecheck.ErrorCode(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, articlecheck.EINTERNAL, articlecheck.ErrorCode(err))
	assert.Equal(t, "Internal error.", articlecheck.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, articlecheck.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, articlecheck.ErrorMessage(nil))
}
