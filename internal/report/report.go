package report

import (
	"fmt"

	"fitness-tracker/internal/training"
)

// MessageTemplate is the summary line printed for every session
const MessageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage holds the computed metrics of one session
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// ShowTrainingInfo computes the summary of a session
func ShowTrainingInfo(t training.Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// Message renders the summary with three decimal places on every number
func (m InfoMessage) Message() string {
	return fmt.Sprintf(MessageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
