package training

import "math"

const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// SportsWalking is a walk measured in steps
type SportsWalking struct {
	base
	HeightCm float64
}

// NewSportsWalking creates a walking session
func NewSportsWalking(action int, hours, weightKg, heightCm float64) SportsWalking {
	return SportsWalking{
		base:     base{Action: action, Hours: hours, WeightKg: weightKg},
		HeightCm: heightCm,
	}
}

// Name returns the workout label
func (w SportsWalking) Name() string {
	return "SportsWalking"
}

// Distance returns the distance in km
func (w SportsWalking) Distance() float64 {
	return w.distance(StepLength)
}

// MeanSpeed returns the average speed in km/h
func (w SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Hours
}

// SpentCalories returns the energy spent in kcal.
// The speed-over-height term is floored, so it contributes only whole
// multiples of the speed coefficient.
// TODO: confirm with the formula owner whether the floor is intended; it
// drops the height adjustment entirely for typical walking speeds.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	heightTerm := math.Floor(speed * speed / w.HeightCm)
	return (walkingWeightMultiplier*w.WeightKg +
		heightTerm*walkingSpeedMultiplier*w.WeightKg) * w.minutes()
}
