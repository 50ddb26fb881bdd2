package internal

import "strings"

// Gateway response code tables. Keys are the canonical code form with leading
// zeros stripped; see normalizeCode. The tables are fixed at process start and
// never mutated.

// approvalCodes are Ds_Response values for authorized operations.
var approvalCodes = map[string]string{
	"0":   "Transacción autorizada para pagos y preautorizaciones",
	"400": "Transacción autorizada para anulaciones",
	"900": "Transacción autorizada para devoluciones y confirmaciones",
}

// transactionErrorCodes are issuer denial codes for a single transaction.
var transactionErrorCodes = map[string]string{
	"101": "Tarjeta caducada",
	"102": "Tarjeta en excepción transitoria o bajo sospecha de fraude",
	"104": "Operación no permitida para esa tarjeta o terminal",
	"106": "Intentos de PIN excedidos",
	"125": "Tarjeta no efectiva",
	"129": "Código de seguridad (CVV2/CVC2) incorrecto",
	"172": "Denegada, no repetir",
	"180": "Tarjeta ajena al servicio",
	"184": "Error en la autenticación del titular",
	"190": "Denegación del emisor sin especificar motivo",
	"191": "Fecha de caducidad errónea",
	"202": "Tarjeta en excepción transitoria o bajo sospecha de fraude con retirada de tarjeta",
	"912": "Emisor no disponible",
}

// sisErrorCodes are gateway/system level failure codes.
var sisErrorCodes = map[string]string{
	"904": "Comercio no registrado en el FUC",
	"909": "Error de sistema",
	"912": "Emisor no disponible; inténtelo más tarde",
	"913": "Pedido repetido",
	"916": "Importe demasiado pequeño",
	"928": "Tiempo excedido para el pago",
	"950": "Operación de devolución no permitida",
	"965": "Operación no permitida para ese tipo de tarjeta",
}

// ResolveMessage maps a gateway response code to its descriptive message.
// Lookup order is fixed: approval, then transaction denial, then system error.
// An unknown or empty code resolves to the empty string; this is a normal
// outcome, not an error.
func ResolveMessage(code string) string {
	if code == "" {
		return ""
	}
	code = normalizeCode(code)
	if message, ok := approvalCodes[code]; ok {
		return message
	}
	if message, ok := transactionErrorCodes[code]; ok {
		return message
	}
	if message, ok := sisErrorCodes[code]; ok {
		return message
	}
	return ""
}

// normalizeCode strips leading zeros but always retains the final digit, so
// an all-zero code like "000" resolves as "0" instead of vanishing.
func normalizeCode(code string) string {
	stripped := strings.TrimLeft(code, "0")
	if stripped == "" {
		return "0"
	}
	return stripped
}
