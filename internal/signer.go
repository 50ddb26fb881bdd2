package internal

import (
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/golang-module/dongle"

	"sispay/config"
	"sispay/entity"
)

// MissingFieldError reports a mandatory payment parameter that was not provided.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Signer builds the authenticated request the browser posts to the gateway:
// canonical parameter object, Base64 encoding and HMAC-SHA256 signature under
// the per-order derived key.
type Signer struct {
	conf *config.Config
}

func NewSigner(conf *config.Config) *Signer {
	return &Signer{conf: conf}
}

// Sign validates the payment, applies defaults for the optional fields and
// returns the signed triple. Defaults are written back to the payment so the
// caller sees the order number that was actually signed.
func (s *Signer) Sign(payment *entity.Payment) (*entity.PaymentRequest, error) {
	if err := s.validate(payment); err != nil {
		return nil, err
	}
	s.applyDefaults(payment)

	parameters := entity.MerchantParameters{
		Amount:          payment.Amount.String(),
		Order:           payment.Order,
		MerchantName:    payment.MerchantName,
		MerchantCode:    payment.MerchantCode,
		Currency:        payment.Currency,
		TransactionType: payment.TransactionType,
		Terminal:        payment.Terminal,
		MerchantUrl:     payment.MerchantUrl,
		UrlOk:           payment.UrlOk,
		UrlKo:           payment.UrlKo,
	}

	// convert parameters to JSON string
	parametersJson, err := json.Marshal(parameters)
	if err != nil {
		return nil, fmt.Errorf("marshal parameters: %v", err)
	}
	// encode parameters to Base64
	parametersBase64 := dongle.Encode.FromBytes(parametersJson).ByBase64().ToString()

	encryptor := NewEncryptor(s.conf.Merchant.Secret, parametersBase64, parameters.Order)
	signature, err := encryptor.CreateSignature()
	if err != nil {
		return nil, fmt.Errorf("create signature: %v", err)
	}

	return &entity.PaymentRequest{
		Parameters:       parametersBase64,
		Signature:        signature,
		SignatureVersion: SignatureVersion,
	}, nil
}

func (s *Signer) validate(payment *entity.Payment) error {
	if payment.Amount.String() == "" {
		return &MissingFieldError{Field: "amount"}
	}
	if payment.MerchantCode == "" {
		return &MissingFieldError{Field: "merchant_code"}
	}
	if payment.TransactionType == "" {
		return &MissingFieldError{Field: "transaction_type"}
	}
	if payment.UrlOk == "" {
		return &MissingFieldError{Field: "url_ok"}
	}
	if payment.UrlKo == "" {
		return &MissingFieldError{Field: "url_ko"}
	}
	return nil
}

func (s *Signer) applyDefaults(payment *entity.Payment) {
	if payment.Order == "" {
		payment.Order = fmt.Sprintf("%d", time.Now().UnixMilli())
	}
	if payment.Currency == "" {
		payment.Currency = s.conf.Merchant.Currency
	}
	if payment.Currency == "" {
		payment.Currency = "978" // EUR
	}
	if payment.Terminal == "" {
		payment.Terminal = s.conf.Merchant.Terminal
	}
}
