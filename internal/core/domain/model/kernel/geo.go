package kernel

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// MinLatitude and MaxLatitude bound valid latitudes in degrees.
	MinLatitude = -90.0
	MaxLatitude = 90.0

	// MinLongitude and MaxLongitude bound valid longitudes in degrees.
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object representing a WGS84 coordinate pair.
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(1.3006, 103.8416) // Orchard
//	if err != nil {
//	    // Handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
//
// Returns:
//   - GeoPoint: A valid point instance
//   - error: ValueIsOutOfRangeError if either coordinate is out of bounds
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed.
// Returns ErrGeoPointIsNotConstructed for zero values.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation of the point.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.4f,%.4f)", p.latitude, p.longitude)
}

// DistanceKm calculates the great-circle distance to another point using the
// haversine formula, rounded to one decimal place. The calculation is
// symmetric: a.DistanceKm(b) == b.DistanceKm(a).
//
// Both points must be properly constructed for the calculation to succeed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	deltaLatitude := (other.latitude - p.latitude) * math.Pi / 180
	deltaLongitude := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(deltaLatitude/2)*math.Sin(deltaLatitude/2) +
		math.Cos(p.latitude*math.Pi/180)*math.Cos(other.latitude*math.Pi/180)*
			math.Sin(deltaLongitude/2)*math.Sin(deltaLongitude/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10, nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

// Distance is the result of a distance resolution between two postal codes.
// Resolved distinguishes a genuinely unknown distance from a legitimate 0 km:
// distance-based pricing falls back to a flat fee only when Resolved is false.
type Distance struct {
	Km       float64
	Resolved bool
}

// UnknownDistance returns the degraded-data distance used when coordinates
// cannot be resolved for either side.
func UnknownDistance() Distance {
	return Distance{Km: 0, Resolved: false}
}

// districtCenters maps two-digit postal districts to approximate centroid
// coordinates. Static, versioned data bundled with the engine; districts
// absent from the table make the distance unresolvable.
var districtCenters = map[string]struct{ lat, lon float64 }{
	"01": {1.2789, 103.8536}, "02": {1.2777, 103.8460}, "03": {1.2730, 103.8201},
	"04": {1.2654, 103.8220}, "05": {1.2760, 103.7910}, "06": {1.2868, 103.8500},
	"07": {1.3006, 103.8559}, "08": {1.3100, 103.8560}, "09": {1.2808, 103.8392},
	"10": {1.2931, 103.8104}, "11": {1.3076, 103.8318}, "12": {1.3249, 103.8532},
	"13": {1.3329, 103.8679}, "14": {1.3152, 103.8921}, "15": {1.3028, 103.9023},
	"16": {1.3210, 103.9250}, "17": {1.3033, 103.8614}, "18": {1.3520, 103.9447},
	"19": {1.3830, 103.8930}, "20": {1.3545, 103.8330}, "21": {1.3340, 103.7780},
	"22": {1.2932, 103.8042}, "23": {1.3006, 103.8416}, "24": {1.3104, 103.8180},
	"25": {1.3210, 103.8150}, "26": {1.3420, 103.8360}, "27": {1.3160, 103.8430},
	"28": {1.3294, 103.8021}, "29": {1.3230, 103.8170}, "30": {1.2880, 103.8230},
	"31": {1.3300, 103.8490}, "32": {1.3333, 103.8560}, "33": {1.3380, 103.8650},
	"34": {1.3200, 103.8720}, "35": {1.3260, 103.8800}, "36": {1.3000, 103.8720},
	"37": {1.3080, 103.8810},
	"38": {1.3130, 103.8870}, "39": {1.3180, 103.8930}, "40": {1.3130, 103.8990},
	"41": {1.3150, 103.9060}, "42": {1.3070, 103.9020}, "43": {1.3060, 103.9110},
	"44": {1.3100, 103.9190}, "45": {1.3060, 103.9270}, "46": {1.3200, 103.9340},
	"47": {1.3240, 103.9410}, "48": {1.3320, 103.9480}, "49": {1.3700, 103.9570},
	"50": {1.3810, 103.9690}, "51": {1.3720, 103.9490}, "52": {1.3520, 103.9360},
	"53": {1.3530, 103.8730}, "54": {1.3920, 103.9010}, "55": {1.3620, 103.8860},
	"56": {1.3610, 103.8660}, "57": {1.3680, 103.8740},
	"58": {1.3430, 103.7760}, "59": {1.3390, 103.7650}, "60": {1.3250, 103.7420},
	"61": {1.3190, 103.7280}, "62": {1.3330, 103.7430}, "63": {1.3330, 103.7150},
	"64": {1.3400, 103.7090}, "65": {1.3500, 103.7200}, "66": {1.3380, 103.7050},
	"67": {1.3770, 103.7540}, "68": {1.3860, 103.7440}, "69": {1.3830, 103.7000},
	"70": {1.4130, 103.7520}, "71": {1.4020, 103.7420},
	"72": {1.4360, 103.7860}, "73": {1.4420, 103.8000}, "75": {1.4490, 103.8200},
	"76": {1.4290, 103.8350}, "77": {1.4150, 103.8390}, "78": {1.4180, 103.8470},
	"79": {1.3870, 103.8680}, "80": {1.3940, 103.8760}, "82": {1.3960, 103.9080},
}

// DistrictCenter returns the approximate centroid for a two-digit district.
// The boolean reports whether the district is present in the table.
func DistrictCenter(district string) (GeoPoint, bool) {
	center, ok := districtCenters[district]
	if !ok {
		return GeoPoint{}, false
	}

	point, err := NewGeoPoint(center.lat, center.lon)
	if err != nil {
		return GeoPoint{}, false
	}

	return point, true
}

// DistanceBetween resolves the great-circle distance between two postal codes
// using district centroids. When either district has no known centroid the
// distance is unknown and callers must degrade gracefully to flat pricing.
func DistanceBetween(from PostalCode, to PostalCode) Distance {
	origin, ok := DistrictCenter(from.District())
	if !ok {
		return UnknownDistance()
	}

	return DistanceFrom(origin, to)
}

// DistanceFrom resolves the distance from a known origin point to a postal
// code destination. Used when the merchant has stored coordinates that are
// more precise than its district centroid.
func DistanceFrom(origin GeoPoint, to PostalCode) Distance {
	destination, ok := DistrictCenter(to.District())
	if !ok {
		return UnknownDistance()
	}

	km, err := origin.DistanceKm(destination)
	if err != nil {
		return UnknownDistance()
	}

	return Distance{Km: km, Resolved: true}
}
