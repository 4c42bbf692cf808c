package workers

import "time"

// BusinessDaysBetween cuenta los días hábiles (lunes a viernes, sin feriados)
// transcurridos desde start hasta end, ambos truncados a medianoche. El día
// de inicio nunca se cuenta; el día final sí. Devuelve 0 si end no es
// posterior a start.
func BusinessDaysBetween(start, end time.Time) int {
	s := truncateDay(start)
	e := truncateDay(end)
	if !e.After(s) {
		return 0
	}

	days := 0
	for d := s.AddDate(0, 0, 1); !d.After(e); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
