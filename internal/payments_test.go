package internal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (l *testLogger) Debug(string)        {}
func (l *testLogger) Info(string)         {}
func (l *testLogger) Warn(string)         {}
func (l *testLogger) Error(string, error) {}

func newTestPayments() *Payments {
	payments := NewPayments(testConfig())
	payments.SetLogger(&testLogger{})
	return payments
}

func TestCreatePaymentAndNotify(t *testing.T) {
	payments := newTestPayments()
	ctx := context.Background()

	payment := testPayment()
	request, err := payments.CreatePayment(ctx, payment)
	require.NoError(t, err)
	require.NotEmpty(t, request.Parameters)

	// synthesize the gateway callback for the same order
	payload, signature := notification(t, map[string]string{
		"Ds_Order":    payment.Order,
		"Ds_Response": "0000",
		"Ds_Amount":   "100.00",
	})
	form := url.Values{
		"Ds_SignatureVersion":   {"HMAC_SHA256_V1"},
		"Ds_MerchantParameters": {payload},
		"Ds_Signature":          {signature},
	}

	err = payments.Notify(ctx, []byte(form.Encode()))
	assert.NoError(t, err)
}

func TestNotifyRejectsForgery(t *testing.T) {
	payments := newTestPayments()

	raw, err := json.Marshal(map[string]string{
		"Ds_Order":    "1234567890123",
		"Ds_Response": "0000",
	})
	require.NoError(t, err)

	form := url.Values{
		"Ds_SignatureVersion":   {"HMAC_SHA256_V1"},
		"Ds_MerchantParameters": {base64.URLEncoding.EncodeToString(raw)},
		"Ds_Signature":          {base64.URLEncoding.EncodeToString([]byte("an unrelated signature value...."))},
	}

	err = payments.Notify(context.Background(), []byte(form.Encode()))
	assert.Error(t, err, "forged notification must be rejected")
}

func TestNotifyRejectsEmptyBody(t *testing.T) {
	payments := newTestPayments()

	err := payments.Notify(context.Background(), []byte(""))
	assert.Error(t, err)
}

func TestCreatePaymentRequiresSecret(t *testing.T) {
	conf := testConfig()
	conf.Merchant.Secret = ""
	payments := NewPayments(conf)
	payments.SetLogger(&testLogger{})

	_, err := payments.CreatePayment(context.Background(), testPayment())
	assert.Error(t, err)
}

func TestResolveCode(t *testing.T) {
	payments := newTestPayments()
	assert.NotEmpty(t, payments.ResolveCode("000"))
	assert.Empty(t, payments.ResolveCode("999"))
}
