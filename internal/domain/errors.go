package domain

import "errors"

// Errores de dominio (sin dependencias externas). El adaptador HTTP es el único
// lugar donde se traducen a códigos de estado; las capas internas solo los propagan.
var (
	ErrInvalidCustomerData = errors.New("datos de cliente inválidos")
	ErrInvalidAmount       = errors.New("el monto no puede ser negativo")
	ErrCreditNotNegative   = errors.New("el crédito a agregar no puede ser negativo")
	ErrCustomerNotFound    = errors.New("cliente no encontrado")
)
