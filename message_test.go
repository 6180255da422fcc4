package fittracker

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessageSwimming(t *testing.T) {
	msg := NewSwimming(720, 1, 80, 25, 40).ShowTrainingInfo().GetMessage()

	assert.Equal(t,
		"Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Average speed: 1.000 km/h; Calories burned: 336.000.",
		msg,
	)
}

func TestGetMessageHasThreeDecimals(t *testing.T) {
	numbers := regexp.MustCompile(`-?\d+(\.\d+)?`)
	messages := []InfoMessage{
		{TrainingType: "Running", Duration: 1, Distance: 2.5, Speed: 1.23456789, Calories: 1e3},
		{TrainingType: "Swimming", Duration: 0.3333333, Distance: 0, Speed: 12, Calories: 0.0004},
	}
	for _, m := range messages {
		got := numbers.FindAllString(m.GetMessage(), -1)
		require.Len(t, got, 4)
		for _, n := range got {
			assert.Regexp(t, `^\d+\.\d{3}$`, n)
		}
	}
}

func TestFormatRussian(t *testing.T) {
	m := InfoMessage{TrainingType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 700.25}

	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 700.250.",
		m.Format(Russian),
	)
	assert.Equal(t, m.GetMessage(), m.Format(Labels{}))
}

func TestLabelsFor(t *testing.T) {
	l, err := LabelsFor("RU")
	require.NoError(t, err)
	assert.Equal(t, Russian, l)

	l, err = LabelsFor("")
	require.NoError(t, err)
	assert.Equal(t, English, l)

	_, err = LabelsFor("de")
	assert.Error(t, err)
}
