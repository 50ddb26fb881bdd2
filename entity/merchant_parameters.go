package entity

// MerchantParameters is the canonical request object for the payment gateway.
// Field names are the exact wire names required by the gateway; the object is
// Base64-encoded and signed with HMAC-SHA256 before the browser posts it.
type MerchantParameters struct {
	// Amount as a string, passed through without unit conversion
	Amount string `json:"DS_MERCHANT_AMOUNT"`
	// Order number - also the key-derivation input for the signature
	Order string `json:"DS_MERCHANT_ORDER"`
	// Merchant name shown on the payment page
	MerchantName string `json:"DS_MERCHANT_MERCHANTNAME"`
	// Merchant code assigned by the gateway
	MerchantCode string `json:"DS_MERCHANT_MERCHANTCODE"`
	// Currency code (978 = EUR)
	Currency string `json:"DS_MERCHANT_CURRENCY"`
	// Transaction type: "0" = Authorization
	TransactionType string `json:"DS_MERCHANT_TRANSACTIONTYPE"`
	// Terminal number assigned by the gateway
	Terminal string `json:"DS_MERCHANT_TERMINAL"`
	// Notification callback URL
	MerchantUrl string `json:"DS_MERCHANT_MERCHANTURL"`
	// Customer return URL on success
	UrlOk string `json:"DS_MERCHANT_URLOK"`
	// Customer return URL on error or cancellation
	UrlKo string `json:"DS_MERCHANT_URLKO"`
}
