package partydirectory_test

import (
	"testing"

	"deliverytracking/internal/adapters/out/memory/partydirectory"
	"deliverytracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_Customer(t *testing.T) {
	t.Run("should return the same customer for the same name", func(t *testing.T) {
		dir := partydirectory.NewDirectory()

		first, err := dir.Customer(t.Context(), "Bob")
		require.NoError(t, err)
		second, err := dir.Customer(t.Context(), " bob ")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("should reject empty names", func(t *testing.T) {
		_, err := partydirectory.NewDirectory().Customer(t.Context(), "  ")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDirectory_Restaurant(t *testing.T) {
	dir := partydirectory.NewDirectory()

	_, err := dir.FindRestaurant(t.Context(), "Cantina")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	created, err := dir.Restaurant(t.Context(), "Cantina")
	require.NoError(t, err)
	found, err := dir.FindRestaurant(t.Context(), "CANTINA")
	require.NoError(t, err)

	assert.Same(t, created, found)
	assert.Equal(t, "Cantina", found.Name())
}
