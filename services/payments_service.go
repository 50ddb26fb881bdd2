package services

import (
	"context"
	"sispay/entity"
)

type Payments interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) (*entity.PaymentRequest, error)
	Notify(ctx context.Context, data []byte) error
	ResolveCode(code string) string
}
