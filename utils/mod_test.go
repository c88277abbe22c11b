package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("finds the first matching element", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]int{3, 5, 5}, 5), "Should return the first match")
	})

	t.Run("reports absent elements", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]string{"a", "b"}, "c"), "Missing item should map to -1")
	})
}
