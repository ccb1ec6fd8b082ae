// Package numbering genera consecutivos legibles de documentos por escaneo
// de prefijo: busca el mayor sufijo numérico entre los valores existentes
// que empiezan con el prefijo y retorna el siguiente, con relleno de ceros.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefijos y anchos usados por los documentos del sistema.
const (
	SupplierPrefix = "SUP-"
	SupplierPad    = 4

	SalesInvoicePrefix = "SI-"
	SalesInvoicePad    = 6

	PurchaseInvoicePrefix = "PINV-"
	PurchaseInvoicePad    = 6
)

// Next calcula el siguiente número con el prefijo dado. Los valores que no
// empiezan con el prefijo o cuyo sufijo no es un entero se ignoran. Sin
// coincidencias, el consecutivo arranca en 1.
//
// La garantía de monotonicidad es respecto a los valores presentes en el
// momento de la llamada; el llamador debe serializar lecturas y escrituras
// sobre la colección (un solo escritor a la vez).
func Next(values []string, prefix string, pad int) string {
	max := 0
	for _, v := range values {
		if !strings.HasPrefix(v, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(v, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, pad, max+1)
}
