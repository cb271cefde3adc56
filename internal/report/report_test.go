package report

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitness-tracker/internal/training"
)

// countingTraining records how often each metric is requested
type countingTraining struct {
	calls map[string]int
}

func (c *countingTraining) Name() string {
	c.calls["Name"]++
	return "Counting"
}

func (c *countingTraining) Duration() float64 {
	c.calls["Duration"]++
	return 2
}

func (c *countingTraining) Distance() float64 {
	c.calls["Distance"]++
	return 10
}

func (c *countingTraining) MeanSpeed() float64 {
	c.calls["MeanSpeed"]++
	return 5
}

func (c *countingTraining) SpentCalories() float64 {
	c.calls["SpentCalories"]++
	return 300
}

func TestShowTrainingInfo(t *testing.T) {
	c := &countingTraining{calls: map[string]int{}}

	msg := ShowTrainingInfo(c)

	assert.Equal(t, InfoMessage{
		TrainingType: "Counting",
		Duration:     2,
		Distance:     10,
		Speed:        5,
		Calories:     300,
	}, msg)
	for _, method := range []string{"Name", "Duration", "Distance", "MeanSpeed", "SpentCalories"} {
		assert.Equal(t, 1, c.calls[method], "%s call count", method)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		session  training.Training
		expected string
	}{
		{
			name:     "swimming",
			session:  training.NewSwimming(720, 1, 80, 25, 40),
			expected: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name:     "running",
			session:  training.NewRunning(15000, 1, 75),
			expected: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		},
		{
			name:     "walking",
			session:  training.NewSportsWalking(9000, 1, 75, 180),
			expected: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShowTrainingInfo(tt.session).Message())
		})
	}
}

func TestMessagePrecision(t *testing.T) {
	pattern := regexp.MustCompile(`^Тип тренировки: \w+; ` +
		`Длительность: -?\d+\.\d{3} ч\.; ` +
		`Дистанция: -?\d+\.\d{3} км; ` +
		`Ср\. скорость: -?\d+\.\d{3} км/ч; ` +
		`Потрачено ккал: -?\d+\.\d{3}\.$`)

	messages := []InfoMessage{
		{TrainingType: "Running", Duration: 0.0001, Distance: 0, Speed: 0, Calories: -0.5},
		{TrainingType: "Running", Duration: 1, Distance: 123456789.98765, Speed: 1e9, Calories: 1.0005},
		{TrainingType: "Swimming", Duration: 2.5, Distance: 1.23456, Speed: 0.1, Calories: 42},
	}

	for _, m := range messages {
		assert.Regexp(t, pattern, m.Message())
	}
}
