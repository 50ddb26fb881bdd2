package internal

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notification builds a synthetic gateway callback: Base64url payload plus a
// Base64url signature computed with the same shared secret.
func notification(t *testing.T, fields map[string]string) (string, string) {
	t.Helper()

	raw, err := json.Marshal(fields)
	require.NoError(t, err)
	payload := base64.URLEncoding.EncodeToString(raw)

	mac, err := NewEncryptor(testSecret, payload, fields["Ds_Order"]).SignatureBytes()
	require.NoError(t, err)

	return payload, base64.URLEncoding.EncodeToString(mac)
}

func TestVerifyRoundTrip(t *testing.T) {
	verifier := NewVerifier(testSecret)

	payload, signature := notification(t, map[string]string{
		"Ds_Order":    "1234567890123",
		"Ds_Response": "0000",
		"Ds_Amount":   "100",
		"Ds_Date":     "02%2F01%2F2026",
	})

	fields, err := verifier.Verify(payload, signature)
	require.NoError(t, err)
	require.NotNil(t, fields)

	assert.Equal(t, "1234567890123", fields["Ds_Order"])
	assert.Equal(t, "0000", fields["Ds_Response"])
	assert.Equal(t, "02/01/2026", fields["Ds_Date"], "field values are percent-decoded")
}

func TestVerifyTamperedPayload(t *testing.T) {
	verifier := NewVerifier(testSecret)

	payload, signature := notification(t, map[string]string{
		"Ds_Order":    "1234567890123",
		"Ds_Response": "0000",
	})

	tampered := "A" + payload[1:]
	if tampered == payload {
		tampered = "B" + payload[1:]
	}

	fields, err := verifier.Verify(tampered, signature)
	assert.NoError(t, err)
	assert.Nil(t, fields, "tampered payload must not verify")
}

func TestVerifyForgedSignature(t *testing.T) {
	verifier := NewVerifier(testSecret)

	payload, _ := notification(t, map[string]string{
		"Ds_Order":    "1234567890123",
		"Ds_Response": "0000",
	})
	forged := base64.URLEncoding.EncodeToString([]byte("thirty-two bytes of junk data!!!"))

	fields, err := verifier.Verify(payload, forged)
	assert.NoError(t, err, "a forged signature is an outcome, not an error")
	assert.Nil(t, fields)
}

func TestVerifyWrongSecret(t *testing.T) {
	payload, signature := notification(t, map[string]string{
		"Ds_Order":    "1234567890123",
		"Ds_Response": "0000",
	})

	other := base64.StdEncoding.EncodeToString([]byte("76543210fedcba9876543210"))
	fields, err := NewVerifier(other).Verify(payload, signature)
	assert.NoError(t, err)
	assert.Nil(t, fields)
}

func TestVerifyMalformedPayload(t *testing.T) {
	verifier := NewVerifier(testSecret)

	notJson := base64.URLEncoding.EncodeToString([]byte("this is not json"))
	fields, err := verifier.Verify(notJson, "c2lnbmF0dXJl")
	assert.NoError(t, err)
	assert.Nil(t, fields)

	notBase64 := "%%%%%"
	fields, err = verifier.Verify(notBase64, "c2lnbmF0dXJl")
	assert.NoError(t, err)
	assert.Nil(t, fields)
}

func TestVerifyMissingOrder(t *testing.T) {
	verifier := NewVerifier(testSecret)

	raw, err := json.Marshal(map[string]string{"Ds_Response": "0000"})
	require.NoError(t, err)
	payload := base64.URLEncoding.EncodeToString(raw)

	fields, err := verifier.Verify(payload, "c2lnbmF0dXJl")
	assert.NoError(t, err)
	assert.Nil(t, fields)
}

func TestVerifyEmptyArguments(t *testing.T) {
	verifier := NewVerifier(testSecret)

	_, err := verifier.Verify("", "c2lnbmF0dXJl")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = verifier.Verify("cGF5bG9hZA==", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVerifyBadSecretIsLoud(t *testing.T) {
	payload, signature := notification(t, map[string]string{
		"Ds_Order":    "1234567890123",
		"Ds_Response": "0000",
	})

	_, err := NewVerifier("broken secret").Verify(payload, signature)
	assert.Error(t, err, "malformed merchant key must fail loudly")
}
