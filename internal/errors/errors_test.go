package errors_test

import (
	"fmt"
	"testing"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.New(errors.ErrInvalidCore)
	assert.Equal(t, "Invalid core index (invalid_core)", err.Error())

	err = errFactory.WithMessage(errors.ErrInvalidCore, "core 7 is not addressable")
	assert.Equal(t, "core 7 is not addressable (invalid_core)", err.Error())

	err = errFactory.WithData(errors.ErrInvalidCore, "bad value")
	assert.Contains(t, err.Error(), "bad value")
}

func TestHasCode(t *testing.T) {
	errFactory := errors.New()
	inner := errFactory.Wrap(errors.ErrTimeout, fmt.Errorf("deadline"))
	outer := errFactory.Wrap(errors.ErrMainLoop, fmt.Errorf("loop: %w", inner))

	assert.True(t, errors.HasCode(outer, errors.ErrMainLoop))
	assert.True(t, errors.HasCode(outer, errors.ErrTimeout))
	assert.False(t, errors.HasCode(outer, errors.ErrInvalidCore))
	assert.False(t, errors.HasCode(nil, errors.ErrTimeout))
	assert.False(t, errors.HasCode(fmt.Errorf("plain"), errors.ErrTimeout))
}
