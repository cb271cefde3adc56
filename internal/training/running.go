package training

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

// Running is a run measured in steps
type Running struct {
	base
}

// NewRunning creates a running session
func NewRunning(action int, hours, weightKg float64) Running {
	return Running{base{Action: action, Hours: hours, WeightKg: weightKg}}
}

// Name returns the workout label
func (r Running) Name() string {
	return "Running"
}

// Distance returns the distance in km
func (r Running) Distance() float64 {
	return r.distance(StepLength)
}

// MeanSpeed returns the average speed in km/h
func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.Hours
}

// SpentCalories returns the energy spent in kcal
func (r Running) SpentCalories() float64 {
	return (runningSpeedMultiplier*r.MeanSpeed() - runningSpeedShift) *
		r.WeightKg / MetersPerKm * r.minutes()
}
