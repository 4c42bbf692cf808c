package workers

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDaysEndBeforeOrEqualStart(t *testing.T) {
	mon := day(2026, time.August, 3)
	if got := BusinessDaysBetween(mon, mon); got != 0 {
		t.Fatalf("mismo día debe dar 0, obtuve %d", got)
	}
	if got := BusinessDaysBetween(mon, mon.AddDate(0, 0, -3)); got != 0 {
		t.Fatalf("fin anterior al inicio debe dar 0, obtuve %d", got)
	}
}

func TestBusinessDaysFridayToMonday(t *testing.T) {
	fri := day(2026, time.August, 7)
	mon := day(2026, time.August, 10)
	// solo cuenta el lunes; el fin de semana queda fuera y el viernes ancla
	// nunca se cuenta
	if got := BusinessDaysBetween(fri, mon); got != 1 {
		t.Fatalf("viernes a lunes debe dar 1, obtuve %d", got)
	}
}

func TestBusinessDaysSpanningOneWeekend(t *testing.T) {
	mon := day(2026, time.August, 3)
	nextFri := day(2026, time.August, 14)
	// mar, mié, jue, vie + lun..vie de la semana siguiente = 9
	if got := BusinessDaysBetween(mon, nextFri); got != 9 {
		t.Fatalf("esperaba 9 días hábiles, obtuve %d", got)
	}
}

func TestBusinessDaysIgnoresTimeOfDay(t *testing.T) {
	fri := time.Date(2026, time.August, 7, 23, 59, 0, 0, time.UTC)
	mon := time.Date(2026, time.August, 10, 0, 1, 0, 0, time.UTC)
	if got := BusinessDaysBetween(fri, mon); got != 1 {
		t.Fatalf("el truncado a medianoche falló: %d", got)
	}
}
