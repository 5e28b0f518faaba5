package docx

import "math"

// WordprocessingML mixes units: page geometry, margins, indents and
// paragraph spacing are twentieths of a point (twips), font sizes are
// half-points, border widths are eighths of a point, and embedded
// drawings use EMU. 1 inch = 1440 twips = 914400 EMU, 1 cm = 360000 EMU.

const (
	twipsPerInch  = 1440
	twipsPerPoint = 20

	emuPerInch       = 914400
	emuPerCentimeter = 360000
	emuPerPixel      = 9525 // at 96 dpi

	// maxEMU is the maximum safe EMU value to prevent overflow.
	maxEMU = math.MaxInt64 / 2
)

// Inch converts inches to EMU. Clamps to safe range.
func Inch(n float64) int64 {
	return clampEMU(n * emuPerInch)
}

// Centimeter converts centimeters to EMU.
func Centimeter(n float64) int64 {
	return clampEMU(n * emuPerCentimeter)
}

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 {
	return float64(emu) / emuPerInch
}

func clampEMU(v float64) int64 {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return int64(v)
}

// cmToTwips converts centimeters to twips via EMU so the rounding matches
// the rest of the drawing math.
func cmToTwips(cm float64) int {
	return int(clampEMU(cm*emuPerCentimeter) / 635)
}

// pointsToTwips converts points to twips.
func pointsToTwips(pt float64) int {
	return int(pt * twipsPerPoint)
}

// halfPoints converts a font size in points to half-points.
func halfPoints(pt float64) int {
	return int(pt * 2)
}
