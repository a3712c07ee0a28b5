package vector

import "math"

// PolarReport describes a vector by its distance from the origin and the
// angle, in degrees, it makes with each coordinate axis
type PolarReport struct {
	Radius float64   `json:"radius" yaml:"radius"`
	Angles []float64 `json:"angles,omitempty" yaml:"angles,omitempty"`
}

// Polar converts the vector to polar form. Angles are reported for axes 1 through
// Dimension()-1; at the origin no angle is defined and Angles is nil
func (v *Vector) Polar() PolarReport {
	r := v.Norm()
	report := PolarReport{Radius: r}
	if r == 0 {
		return report
	}

	report.Angles = make([]float64, 0, v.Dimension()-1)
	for _, c := range v.components[:v.Dimension()-1] {
		// Rounding can push the ratio just past ±1
		ratio := math.Max(-1, math.Min(1, c/r))
		report.Angles = append(report.Angles, RadToDeg(math.Acos(ratio)))
	}
	return report
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}
