package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cocktail-importer/internal/core/cocktailpi"
)

func TestDuplicateGuardNormalizesNames(t *testing.T) {
	guard := NewDuplicateGuard([]cocktailpi.RecipeSummary{
		{ID: 1, Name: "Margarita"},
		{ID: 2, Name: "Old Fashioned"},
	})

	assert.Equal(t, 2, guard.Size())
	assert.True(t, guard.Seen("margarita"))
	assert.True(t, guard.Seen("  Margarita  "))
	assert.True(t, guard.Seen("OLD FASHIONED"))
	assert.False(t, guard.Seen("Daiquiri"))
}

func TestDuplicateGuardRecord(t *testing.T) {
	guard := NewDuplicateGuard(nil)

	assert.False(t, guard.Seen("Daiquiri"))
	guard.Record("Daiquiri")
	assert.True(t, guard.Seen(" daiquiri"))
	assert.Equal(t, 1, guard.Size())
}
