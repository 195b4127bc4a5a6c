package appointment

import (
	"time"

	"github.com/Adriel-Pezo-2004/PetKarMg/internal/timezone"
)

// Duración fija de una cita: el flujo de edición original siempre
// enviaba end = start + 1 hora.
const Duration = time.Hour

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(),
	)
}

// DeriveTimes combina fecha y hora en start/end. La hora es texto libre:
// sólo valores HH:MM producen timestamps, lo demás deja ambos sin fijar.
// Sin fecha no hay nada que derivar.
func DeriveTimes(date time.Time, timeStr string) (*time.Time, *time.Time) {
	if date.IsZero() {
		return nil, nil
	}

	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return nil, nil
	}

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		timezone.Location(),
	)
	end := start.Add(Duration)

	return &start, &end
}
