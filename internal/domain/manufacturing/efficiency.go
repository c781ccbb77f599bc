package manufacturing

import "math"

// ProductionEfficiency calcula el porcentaje de órdenes completadas sobre las
// no canceladas, redondeado al entero más cercano. Devuelve 0 cuando no hay
// órdenes no canceladas (evita la división por cero).
func ProductionEfficiency(done, nonCanceled int) int {
	if nonCanceled <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(nonCanceled) * 100))
}
