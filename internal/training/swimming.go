package training

const (
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2.0
)

// Swimming is a pool session measured in strokes
type Swimming struct {
	base
	PoolLengthM int
	PoolLaps    int
}

// NewSwimming creates a swimming session
func NewSwimming(action int, hours, weightKg float64, poolLengthM, poolLaps int) Swimming {
	return Swimming{
		base:        base{Action: action, Hours: hours, WeightKg: weightKg},
		PoolLengthM: poolLengthM,
		PoolLaps:    poolLaps,
	}
}

// Name returns the workout label
func (s Swimming) Name() string {
	return "Swimming"
}

// Distance returns the stroke-based distance in km
func (s Swimming) Distance() float64 {
	return s.distance(StrokeLength)
}

// MeanSpeed returns the average speed in km/h from pool geometry.
// It does not depend on Distance.
func (s Swimming) MeanSpeed() float64 {
	return float64(s.PoolLengthM) * float64(s.PoolLaps) / MetersPerKm / s.Hours
}

// SpentCalories returns the energy spent in kcal
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * s.WeightKg
}

// Compile-time checks that every workout type is complete
var (
	_ Training = Running{}
	_ Training = SportsWalking{}
	_ Training = Swimming{}
)
