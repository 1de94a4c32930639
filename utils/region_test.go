package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRegion(t *testing.T) {
	t.Run("UppercasesRegionCodes", func(t *testing.T) {
		assert.Equal(t, "US", NormalizeRegion("us"))
		assert.Equal(t, "US", NormalizeRegion("Us"))
		assert.Equal(t, "IN", NormalizeRegion("in"))
		assert.Equal(t, "GB", NormalizeRegion("GB"))
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		assert.Equal(t, "US", NormalizeRegion("  us  "))
		assert.Equal(t, "DE", NormalizeRegion("\tde\n"))
	})

	t.Run("CanonicalizesGlobal", func(t *testing.T) {
		assert.Equal(t, RegionGlobal, NormalizeRegion("global"))
		assert.Equal(t, RegionGlobal, NormalizeRegion("GLOBAL"))
		assert.Equal(t, RegionGlobal, NormalizeRegion("Global"))
		assert.Equal(t, RegionGlobal, NormalizeRegion(" gLoBaL "))
	})

	t.Run("EmptyStaysEmpty", func(t *testing.T) {
		assert.Equal(t, "", NormalizeRegion(""))
		assert.Equal(t, "", NormalizeRegion("   "))
	})

	t.Run("SameLogicalRegionConverges", func(t *testing.T) {
		assert.Equal(t, NormalizeRegion("us"), NormalizeRegion(" US "))
		assert.Equal(t, NormalizeRegion("global"), NormalizeRegion("Global"))
	})
}
