package errors_test

import (
	"fmt"
	"testing"

	"github.com/quotecms/quotetag/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrSourceRead, "cannot read rules file")
	assert.Equal(t, "[SOURCE_READ] cannot read rules file", err.Error())
	assert.Equal(t, errors.ErrSourceRead, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		inner := fmt.Errorf("permission denied")
		err := errors.Wrap(inner, errors.ErrSourceRead, "cannot read rules file")
		assert.Equal(t, "[SOURCE_READ] cannot read rules file: permission denied", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrRulesEmpty, "no usable rules in %q", "keywords.csv")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRulesEmpty))
	assert.False(t, errors.IsErrorCode(err, errors.ErrSourceRead))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrRulesEmpty))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrStoreQuery,
		errors.GetErrorCode(errors.New(errors.ErrStoreQuery, "query failed")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain error")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSourceParse, "bad record").
		WithDetail("row", 12).
		WithDetail("keyword", "gold")
	assert.Equal(t, 12, err.Details["row"])
	assert.Equal(t, "gold", err.Details["keyword"])
}
