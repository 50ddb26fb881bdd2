package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMessageApproval(t *testing.T) {
	message := ResolveMessage("000")
	assert.Equal(t, "Transacción autorizada para pagos y preautorizaciones", message)

	// gateway pads approval codes differently depending on the flow
	assert.Equal(t, message, ResolveMessage("0"))
	assert.Equal(t, message, ResolveMessage("0000"))
}

func TestResolveMessageLeadingZeros(t *testing.T) {
	assert.Equal(t, ResolveMessage("101"), ResolveMessage("0101"))
	assert.Equal(t, "Transacción autorizada para devoluciones y confirmaciones", ResolveMessage("0900"))
}

func TestResolveMessageTableOrder(t *testing.T) {
	// 912 exists in the transaction and the system table; the transaction
	// table wins
	assert.Equal(t, "Emisor no disponible", ResolveMessage("912"))
	// codes only present in the system table still resolve
	assert.Equal(t, "Pedido repetido", ResolveMessage("913"))
}

func TestResolveMessageUnknown(t *testing.T) {
	assert.Empty(t, ResolveMessage(""))
	assert.Empty(t, ResolveMessage("999"))
	assert.Empty(t, ResolveMessage("not-a-code"))
}

func TestResolveMessageDenials(t *testing.T) {
	assert.Equal(t, "Tarjeta caducada", ResolveMessage("101"))
	assert.Equal(t, "Denegación del emisor sin especificar motivo", ResolveMessage("190"))
}
