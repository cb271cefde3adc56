package training

const (
	// Unit conversions
	MetersPerKm    = 1000
	MinutesPerHour = 60

	// Distance covered per step (running, walking) or per stroke (swimming)
	StepLength   = 0.65
	StrokeLength = 1.38
)

// Training is a single completed workout session.
// Every workout type supplies its own calorie formula; the shared base
// does not, so an incomplete workout type cannot satisfy this interface.
type Training interface {
	Name() string
	Duration() float64      // hours
	Distance() float64      // km
	MeanSpeed() float64     // km/h
	SpentCalories() float64 // kcal
}

// base holds the readings every sensor package carries
type base struct {
	Action   int     // steps or strokes
	Hours    float64 // session duration in hours
	WeightKg float64
}

// Duration returns the session duration in hours
func (b base) Duration() float64 {
	return b.Hours
}

// distance converts the action count to kilometres for the given unit length
func (b base) distance(unitLength float64) float64 {
	return float64(b.Action) * unitLength / MetersPerKm
}

// minutes returns the session duration in minutes
func (b base) minutes() float64 {
	return b.Hours * MinutesPerHour
}
