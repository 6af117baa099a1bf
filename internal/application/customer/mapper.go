package customer

import (
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/application/dto"
	"github.com/yasniel1408/taxdown-shop-motorbikes/internal/domain/entity"
)

// toCustomerResponse traduce un registro del puerto a la respuesta HTTP.
func toCustomerResponse(rec entity.CustomerRecord) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		UserID:          rec.UserID,
		Name:            rec.Name,
		Email:           rec.Email,
		Phone:           rec.Phone,
		AvailableCredit: rec.AvailableCredit,
		CreatedAt:       rec.CreatedAt,
	}
}
