package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
)

// DefaultAPIKeyHeader nombre por defecto del header de API key.
const DefaultAPIKeyHeader = "x-api-key"

// APIKeyMiddleware exige que el header de API key venga no vacío. Solo verifica
// presencia, no compara contra un secreto: limitación deliberada heredada del
// contrato del API gateway, no un control criptográfico.
func APIKeyMiddleware(header string) fiber.Handler {
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	return func(c *fiber.Ctx) error {
		if c.Get(header) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_API_KEY", Message: "API key requerida"})
		}
		return c.Next()
	}
}
