package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Zone is a coarse region label derived from a postal-code prefix.
// Zones drive zone-based delivery pricing: same-zone, adjacent-zone and
// cross-zone deliveries are priced differently, and special areas carry
// a surcharge regardless of the pricing model.
//
// Zone is a value object that provides string representations for
// persistence and display.
type Zone int

const (
	// UnknownZone represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	UnknownZone Zone = iota

	// Central covers the city core and surrounding districts.
	// It is also the conservative default for unmapped districts.
	Central

	// West covers the western districts.
	West

	// North covers the northern districts.
	North

	// NorthEast covers the north-eastern districts.
	NorthEast

	// East covers the eastern districts.
	East

	// SpecialArea covers carve-outs such as Sentosa, Jurong Island and Tuas.
	// Deliveries here carry a surcharge regardless of the base pricing model.
	SpecialArea
)

// getZoneStrings returns a map of Zone values to their string representations.
func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		UnknownZone: "Unknown",
		Central:     "central",
		West:        "west",
		North:       "north",
		NorthEast:   "northeast",
		East:        "east",
		SpecialArea: "special",
	}
}

// getValidZoneStrings returns a map of only valid Zone values.
func getValidZoneStrings() map[Zone]string {
	//nolint:exhaustive // UnknownZone is intentionally excluded as it's invalid
	return map[Zone]string{
		Central:     "central",
		West:        "west",
		North:       "north",
		NorthEast:   "northeast",
		East:        "east",
		SpecialArea: "special",
	}
}

// Validate checks if the Zone value is valid.
// UnknownZone (0) and any other values are invalid.
func (z Zone) Validate() error {
	if _, ok := getValidZoneStrings()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("zone is invalid", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the lowercase zone label.
// This method implements the fmt.Stringer interface and is safe to call
// on any Zone value, including invalid ones.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "Unknown"
}

// IsSpecialArea reports whether the zone is the special-area carve-out.
func (z Zone) IsSpecialArea() bool {
	return z == SpecialArea
}

// specialAreaSectors lists the three-digit postal prefixes that resolve to
// SpecialArea regardless of the district table: Sentosa (098, 099),
// Jurong Island (627-629) and Tuas (636-638).
var specialAreaSectors = map[string]struct{}{
	"098": {},
	"099": {},
	"627": {},
	"628": {},
	"629": {},
	"636": {},
	"637": {},
	"638": {},
}

// districtZones maps two-digit postal districts to geographic zones.
// Districts absent from this table default to Central.
var districtZones = map[string]Zone{
	// City core and central districts.
	"01": Central, "02": Central, "03": Central, "04": Central, "05": Central,
	"06": Central, "07": Central, "08": Central, "09": Central, "10": Central,
	"11": Central, "12": Central, "13": Central, "14": Central, "15": Central,
	"16": Central, "17": Central, "18": Central, "19": Central, "20": Central,
	"21": Central, "22": Central, "23": Central, "24": Central, "25": Central,
	"26": Central, "27": Central, "28": Central, "29": Central, "30": Central,
	"31": Central, "32": Central, "33": Central, "34": Central, "35": Central,
	"36": Central, "37": Central,

	// Eastern districts: Katong, Bedok, Tampines, Changi, Pasir Ris.
	"38": East, "39": East, "40": East, "41": East, "42": East,
	"43": East, "44": East, "45": East, "46": East, "47": East,
	"48": East, "49": East, "50": East, "51": East, "52": East,

	// North-eastern districts: Serangoon, Hougang, Punggol, Sengkang.
	"53": NorthEast, "54": NorthEast, "55": NorthEast, "56": NorthEast,
	"57": NorthEast, "79": NorthEast, "80": NorthEast, "82": NorthEast,

	// Western districts: Bukit Timah fringe, Clementi, Jurong, Tuas.
	"58": West, "59": West, "60": West, "61": West, "62": West,
	"63": West, "64": West, "65": West, "66": West, "67": West,
	"68": West, "69": West, "70": West, "71": West,

	// Northern districts: Kranji, Woodlands, Sembawang, Yishun.
	"72": North, "73": North, "75": North, "76": North,
	"77": North, "78": North,
}

// ZoneOf resolves the geographic zone for a postal code.
//
// Resolution order:
//  1. Special-area sectors (three-digit prefix) override everything.
//  2. The two-digit district table.
//  3. Unmapped districts default to Central.
//
// ZoneOf is pure and total over all properly constructed postal codes:
// the same input always yields the same zone, and no input fails.
func ZoneOf(postalCode PostalCode) Zone {
	if _, ok := specialAreaSectors[postalCode.Sector()]; ok {
		return SpecialArea
	}

	if zone, ok := districtZones[postalCode.District()]; ok {
		return zone
	}

	return Central
}

// zoneAdjacency holds the fixed adjacency relation between zones.
// The relation is symmetric and every pair is materialized both ways;
// TestZoneAdjacency_Symmetric guards that invariant.
var zoneAdjacency = map[Zone][]Zone{
	Central:   {West, North, NorthEast, East},
	West:      {Central, North},
	North:     {Central, West, NorthEast},
	NorthEast: {Central, North, East},
	East:      {Central, NorthEast},
}

// AdjacentZones returns the zones adjacent to the given zone.
// SpecialArea has no adjacency: special-area pricing is resolved before
// adjacency is ever consulted.
func AdjacentZones(zone Zone) []Zone {
	return zoneAdjacency[zone]
}

// ZonesAreAdjacent reports whether two distinct zones share a boundary.
func ZonesAreAdjacent(a Zone, b Zone) bool {
	for _, adjacent := range zoneAdjacency[a] {
		if adjacent == b {
			return true
		}
	}
	return false
}
