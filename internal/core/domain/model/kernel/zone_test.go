package kernel_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPostalCode(t *testing.T, value string) kernel.PostalCode {
	t.Helper()
	code, err := kernel.NewPostalCode(value)
	require.NoError(t, err)
	return code
}

func TestZone_Validate(t *testing.T) {
	t.Run("should validate valid zones", func(t *testing.T) {
		validZones := []kernel.Zone{
			kernel.Central,
			kernel.West,
			kernel.North,
			kernel.NorthEast,
			kernel.East,
			kernel.SpecialArea,
		}

		for _, zone := range validZones {
			t.Run(fmt.Sprintf("should validate %s", zone.String()), func(t *testing.T) {
				require.NoError(t, zone.Validate())
			})
		}
	})

	t.Run("should reject UnknownZone and out-of-range values", func(t *testing.T) {
		invalidZones := []kernel.Zone{kernel.UnknownZone, kernel.Zone(-1), kernel.Zone(100)}

		for _, zone := range invalidZones {
			require.Error(t, zone.Validate())
		}
	})
}

func TestZoneOf(t *testing.T) {
	t.Run("should resolve districts to their zones", func(t *testing.T) {
		testCases := []struct {
			postal   string
			expected kernel.Zone
		}{
			{"018956", kernel.Central},  // Marina Bay
			{"238874", kernel.Central},  // Orchard
			{"289899", kernel.Central},  // Bukit Timah
			{"460001", kernel.East},     // Bedok
			{"520001", kernel.East},     // Tampines
			{"540001", kernel.NorthEast},// Sengkang
			{"560001", kernel.NorthEast},// Ang Mo Kio
			{"600001", kernel.West},     // Jurong
			{"650001", kernel.West},     // Bukit Batok
			{"730001", kernel.North},    // Woodlands
			{"760001", kernel.North},    // Yishun
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s resolves to %s", tc.postal, tc.expected), func(t *testing.T) {
				zone := kernel.ZoneOf(mustPostalCode(t, tc.postal))
				assert.Equal(t, tc.expected, zone)
			})
		}
	})

	t.Run("special sectors override the district table", func(t *testing.T) {
		specialCodes := []string{"098123", "099001", "627001", "628500", "629999", "636001", "637500", "638999"}

		for _, value := range specialCodes {
			t.Run(fmt.Sprintf("%s is a special area", value), func(t *testing.T) {
				zone := kernel.ZoneOf(mustPostalCode(t, value))
				assert.Equal(t, kernel.SpecialArea, zone)
				assert.True(t, zone.IsSpecialArea())
			})
		}
	})

	t.Run("unmapped districts default to Central", func(t *testing.T) {
		// District 74 and 81 are not assigned in the district table.
		assert.Equal(t, kernel.Central, kernel.ZoneOf(mustPostalCode(t, "740001")))
		assert.Equal(t, kernel.Central, kernel.ZoneOf(mustPostalCode(t, "810001")))
	})

	t.Run("is total and deterministic over all 6-digit codes", func(t *testing.T) {
		// Sample the district space exhaustively: every two-digit prefix.
		for district := 0; district < 100; district++ {
			value := fmt.Sprintf("%02d0000", district)
			code := mustPostalCode(t, value)

			first := kernel.ZoneOf(code)
			second := kernel.ZoneOf(code)

			require.NoError(t, first.Validate(), "zone for %s must be valid", value)
			assert.Equal(t, first, second, "zone for %s must be deterministic", value)
		}
	})
}

func TestZoneAdjacency_Symmetric(t *testing.T) {
	zones := []kernel.Zone{kernel.Central, kernel.West, kernel.North, kernel.NorthEast, kernel.East}

	for _, a := range zones {
		for _, b := range kernel.AdjacentZones(a) {
			assert.True(t, kernel.ZonesAreAdjacent(b, a),
				"adjacency must be symmetric: %s -> %s present but %s -> %s missing", a, b, b, a)
		}
	}
}

func TestZonesAreAdjacent(t *testing.T) {
	t.Run("central is adjacent to every main zone", func(t *testing.T) {
		for _, other := range []kernel.Zone{kernel.West, kernel.North, kernel.NorthEast, kernel.East} {
			assert.True(t, kernel.ZonesAreAdjacent(kernel.Central, other))
		}
	})

	t.Run("west and east are not adjacent", func(t *testing.T) {
		assert.False(t, kernel.ZonesAreAdjacent(kernel.West, kernel.East))
		assert.False(t, kernel.ZonesAreAdjacent(kernel.East, kernel.West))
	})

	t.Run("special area has no adjacency", func(t *testing.T) {
		assert.Empty(t, kernel.AdjacentZones(kernel.SpecialArea))
	})
}
