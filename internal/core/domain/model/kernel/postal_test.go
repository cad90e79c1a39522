package kernel_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostalCode(t *testing.T) {
	t.Run("should create valid postal codes", func(t *testing.T) {
		validCodes := []string{"018956", "238874", "098123", "629123", "730000"}

		for _, value := range validCodes {
			t.Run(fmt.Sprintf("should accept %s", value), func(t *testing.T) {
				code, err := kernel.NewPostalCode(value)

				require.NoError(t, err)
				require.NoError(t, code.Validate())
				assert.Equal(t, value, code.String())
			})
		}
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		invalidCodes := []string{"", "12345", "1234567", "23887a", "23 874", "-23887"}

		for _, value := range invalidCodes {
			t.Run(fmt.Sprintf("should reject %q", value), func(t *testing.T) {
				_, err := kernel.NewPostalCode(value)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestPostalCode_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var code kernel.PostalCode

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPostalCodeIsNotConstructed, err)
	})
}

func TestPostalCode_District(t *testing.T) {
	t.Run("should extract the leading two digits", func(t *testing.T) {
		code, err := kernel.NewPostalCode("238874")
		require.NoError(t, err)

		assert.Equal(t, "23", code.District())
	})

	t.Run("should extract the leading three digits as sector", func(t *testing.T) {
		code, err := kernel.NewPostalCode("098123")
		require.NoError(t, err)

		assert.Equal(t, "098", code.Sector())
	})
}

func TestPostalCode_IsEqual(t *testing.T) {
	a, err := kernel.NewPostalCode("018956")
	require.NoError(t, err)
	b, err := kernel.NewPostalCode("018956")
	require.NoError(t, err)
	c, err := kernel.NewPostalCode("238874")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
