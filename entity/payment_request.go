package entity

// PaymentRequest is the signed triple the browser submits to the gateway
// payment endpoint as hidden form fields.
type PaymentRequest struct {
	Parameters       string `json:"Ds_MerchantParameters"`
	Signature        string `json:"Ds_Signature"`
	SignatureVersion string `json:"Ds_SignatureVersion"`
}
