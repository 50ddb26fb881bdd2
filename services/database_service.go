package services

import (
	"context"
	"sispay/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SavePaymentOrder(ctx context.Context, order *entity.PaymentOrder) error
	GetPaymentOrder(ctx context.Context, order string) (*entity.PaymentOrder, error)
	SavePaymentResult(ctx context.Context, result *entity.PaymentParameters) error
}

type Data interface {
	DataType() string
}

type LogHandler interface {
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string, err error)
}
