package entity

import "time"

// PaymentParameters holds the fields of a verified gateway notification.
// Fields holds every key/value pair of the decoded payload, percent-decoded;
// the named fields are the subset this service interprets.
type PaymentParameters struct {
	Order    string `json:"Ds_Order" bson:"order"`
	Response string `json:"Ds_Response" bson:"response"`
	Amount   string `json:"Ds_Amount" bson:"amount"`
	Currency string `json:"Ds_Currency" bson:"currency"`
	Date     string `json:"Ds_Date" bson:"date"`
	Hour     string `json:"Ds_Hour" bson:"hour"`
	AuthCode string `json:"Ds_AuthorisationCode" bson:"auth_code"`

	Fields  map[string]string `json:"-" bson:"fields"`
	Message string            `json:"-" bson:"message"`
}

// PaymentOrder is the stored record of one payment attempt: opened when the
// signed request is built, closed when a verified notification arrives.
type PaymentOrder struct {
	Order      string    `json:"order" bson:"order"`
	Amount     string    `json:"amount" bson:"amount"`
	Currency   string    `json:"currency" bson:"currency"`
	IsClosed   bool      `json:"is_closed" bson:"is_closed"`
	Result     string    `json:"result" bson:"result"`
	TimeOpened time.Time `json:"time_opened" bson:"time_opened"`
	TimeClosed time.Time `json:"time_closed" bson:"time_closed"`
}
