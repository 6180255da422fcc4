package fittracker

import (
	"fmt"
	"math"
	"strings"
)

// InfoMessage is the computed result of one workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"speed_kmh"`
	Calories     float64 `json:"calories"`
}

// Labels is a summary template: one %s for the workout type followed by
// four %.3f verbs for duration, distance, speed and calories.
type Labels struct {
	Lang     string
	Template string
}

var (
	English = Labels{
		Lang:     "en",
		Template: "Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Average speed: %.3f km/h; Calories burned: %.3f.",
	}
	Russian = Labels{
		Lang:     "ru",
		Template: "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
	}
)

// LabelsFor resolves a language code to its label set.
func LabelsFor(lang string) (Labels, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "en":
		return English, nil
	case "ru":
		return Russian, nil
	default:
		return Labels{}, fmt.Errorf("unsupported language %q (expected en|ru)", lang)
	}
}

// GetMessage renders the summary line with English labels.
func (m InfoMessage) GetMessage() string {
	return m.Format(English)
}

// Format renders the summary line with the given labels.
func (m InfoMessage) Format(labels Labels) string {
	if labels.Template == "" {
		labels = English
	}
	return fmt.Sprintf(labels.Template, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func (m InfoMessage) finite() bool {
	return isFinite(m.Duration) && isFinite(m.Distance) && isFinite(m.Speed) && isFinite(m.Calories)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
