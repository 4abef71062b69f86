package shipment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrDimensionsIsNotConstructed     = errors.New("Dimensions must be created via NewDimensions constructor")
	ErrPackageDetailsIsNotConstructed = errors.New("PackageDetails must be created via NewPackageDetails constructor")
)

// Dimensions is the size of a package in centimeters.
type Dimensions struct {
	length float64
	width  float64
	height float64

	guard guard.ConstructorGuard
}

// NewDimensions validates that all three sides are strictly positive.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	if err := errors.Join(
		validatePositive("length", length),
		validatePositive("width", width),
		validatePositive("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		length: length,
		width:  width,
		height: height,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) Length() float64 { return d.length }
func (d Dimensions) Width() float64  { return d.width }
func (d Dimensions) Height() float64 { return d.height }

// PackageDetails describes what is shipped. It does not change after creation.
type PackageDetails struct {
	weight      float64
	dimensions  Dimensions
	description string

	guard guard.ConstructorGuard
}

// NewPackageDetails validates weight (kilograms, strictly positive), dimensions
// and a non-blank description. All violations are reported together.
func NewPackageDetails(weight float64, dimensions Dimensions, description string) (PackageDetails, error) {
	description = strings.TrimSpace(description)

	var descriptionErr error
	if description == "" {
		descriptionErr = errs.NewValueIsRequiredError("description")
	}

	if err := errors.Join(
		validatePositive("weight", weight),
		dimensions.Validate(),
		descriptionErr,
	); err != nil {
		return PackageDetails{}, err
	}

	return PackageDetails{
		weight:      weight,
		dimensions:  dimensions,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (p PackageDetails) Validate() error {
	return p.guard.Validate(ErrPackageDetailsIsNotConstructed)
}

// Weight returns the weight in kilograms.
func (p PackageDetails) Weight() float64 {
	return p.weight
}

func (p PackageDetails) Dimensions() Dimensions {
	return p.dimensions
}

func (p PackageDetails) Description() string {
	return p.description
}

func validatePositive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", value))
	}
	if value <= 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			name, value, 0, "+Inf",
			fmt.Errorf("%v is not greater than 0", value),
		)
	}
	return nil
}
