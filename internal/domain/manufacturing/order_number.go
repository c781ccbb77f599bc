// Package manufacturing contiene los servicios de dominio del ciclo de vida
// de órdenes: numeración consecutiva y eficiencia de producción.
package manufacturing

import (
	"fmt"
	"regexp"
	"time"
)

// orderNumberRe extrae el contador de 4 dígitos de un número MO-YYYYMMDD-NNNN.
var orderNumberRe = regexp.MustCompile(`^MO-\d{8}-(\d{4})$`)

// OrderNumberPrefix devuelve el prefijo de numeración del día: MO-YYYYMMDD.
func OrderNumberPrefix(day time.Time) string {
	return "MO-" + day.Format("20060102")
}

// NextOrderNumber calcula el siguiente número de orden del día.
// lastNumber es el número de la orden más reciente con el prefijo del día
// (cadena vacía si no hay ninguna): se parsea su sufijo de 4 dígitos y se
// incrementa; si no hay orden previa o el número no tiene el formato esperado,
// el contador arranca en 1.
//
// La secuencia leer-luego-escribir no está serializada por sí misma: dos
// creaciones concurrentes el mismo día pueden calcular el mismo número. El
// índice único sobre order_number más un reintento en el caso de uso cubren
// esa carrera.
func NextOrderNumber(lastNumber string, day time.Time) string {
	counter := 1
	if m := orderNumberRe.FindStringSubmatch(lastNumber); m != nil {
		// El grupo capturado son exactamente 4 dígitos; Sscanf no puede fallar.
		fmt.Sscanf(m[1], "%d", &counter)
		counter++
	}
	return fmt.Sprintf("%s-%04d", OrderNumberPrefix(day), counter)
}

// workOrderNumberRe extrae el contador de 4 dígitos de un número WO-NNNN.
var workOrderNumberRe = regexp.MustCompile(`^WO-(\d{4})$`)

// NextWorkOrderNumber calcula el siguiente número de orden de trabajo a
// partir del número más reciente existente (cadena vacía si no hay ninguno).
// El contador nunca retrocede al borrar órdenes intermedias porque se parte
// del máximo emitido, no del conteo de filas. La misma advertencia
// leer-luego-escribir de NextOrderNumber aplica: el índice único sobre
// order_number más un reintento en el caso de uso cubren la carrera.
func NextWorkOrderNumber(lastNumber string) string {
	counter := 1
	if m := workOrderNumberRe.FindStringSubmatch(lastNumber); m != nil {
		fmt.Sscanf(m[1], "%d", &counter)
		counter++
	}
	return fmt.Sprintf("WO-%04d", counter)
}
