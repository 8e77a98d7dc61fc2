// Package clock define el reloj inyectable del motor. Toda la aritmética de
// "hoy" se hace con truncado a medianoche UTC para que los tests sean
// deterministas y no dependan de la zona horaria de la máquina.
package clock

import "time"

// Clock reloj inyectable.
type Clock interface {
	Now() time.Time
	// Today devuelve la medianoche UTC del día actual.
	Today() time.Time
}

// DayUTC trunca un instante a la medianoche UTC de su día calendario.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// System reloj del sistema.
type System struct{}

func (System) Now() time.Time   { return time.Now().UTC() }
func (System) Today() time.Time { return DayUTC(time.Now()) }

// Fixed reloj congelado para tests y recálculos reproducibles.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time   { return f.T.UTC() }
func (f Fixed) Today() time.Time { return DayUTC(f.T) }
