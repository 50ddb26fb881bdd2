// Package entity defines data models for the payment signing service.
package entity

import "encoding/json"

// Payment holds the checkout parameters for one payment attempt as received
// from the merchant application. It lives only for the duration of building
// one signed request.
type Payment struct {
	// Amount in the unit the gateway expects; passed through as-is, no conversion
	Amount json.Number `json:"amount"`
	// Order number - must be unique for each payment attempt; derived from
	// the current time when empty
	Order string `json:"order"`
	// Merchant name shown on the gateway payment page
	MerchantName string `json:"merchant_name"`
	// Merchant code assigned by the acquiring bank
	MerchantCode string `json:"merchant_code"`
	// Numeric currency code (978 = EUR)
	Currency string `json:"currency"`
	// Transaction type: "0" = Authorization
	TransactionType string `json:"transaction_type"`
	// Terminal number assigned by the acquiring bank
	Terminal string `json:"terminal"`
	// URL for the asynchronous background notification
	MerchantUrl string `json:"merchant_url"`
	// URL the customer returns to after an approved payment
	UrlOk string `json:"url_ok"`
	// URL the customer returns to after a failed or cancelled payment
	UrlKo string `json:"url_ko"`
}
