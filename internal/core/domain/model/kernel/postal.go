package kernel

import (
	"fmt"
	"regexp"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrPostalCodeIsNotConstructed is returned when attempting to use an improperly
// initialized PostalCode. Postal codes must be created via NewPostalCode.
var ErrPostalCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"postal code must be created via NewPostalCode constructor")

var postalCodePattern = regexp.MustCompile(`^\d{6}$`)

// PostalCode is an immutable value object representing a six-digit Singapore
// postal code. The first two digits identify the postal district, which drives
// zone resolution and district-level coordinate lookup.
//
// The zero value of PostalCode is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	code, err := kernel.NewPostalCode("238874")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(code.District()) // Output: "23"
type PostalCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewPostalCode creates a PostalCode from its string form.
// The value must match ^\d{6}$ exactly.
//
// Returns:
//   - PostalCode: A valid postal code instance
//   - error: ValueIsInvalidError if the value is not a six-digit string
func NewPostalCode(value string) (PostalCode, error) {
	if !postalCodePattern.MatchString(value) {
		return PostalCode{}, errs.NewValueIsInvalidErrorWithCause(
			"postal code",
			fmt.Errorf("%q is not a 6-digit postal code", value),
		)
	}

	return PostalCode{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the PostalCode was properly constructed.
// Returns ErrPostalCodeIsNotConstructed for zero values.
func (p PostalCode) Validate() error {
	return p.guard.Validate(ErrPostalCodeIsNotConstructed)
}

// String returns the six-digit postal code.
// This method implements the fmt.Stringer interface.
func (p PostalCode) String() string {
	return p.value
}

// District returns the two-digit postal district derived from the leading digits.
// The district keys both the zone table and the coordinate table.
func (p PostalCode) District() string {
	return p.value[:2]
}

// Sector returns the three-digit prefix used to detect special-area carve-outs
// such as Sentosa, Jurong Island and Tuas.
func (p PostalCode) Sector() string {
	return p.value[:3]
}

// IsEqual compares two postal codes for equality.
func (p PostalCode) IsEqual(other PostalCode) bool {
	return p.value == other.value
}
