package internal

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidInput marks a verification call with empty payload or signature.
// This is a caller bug, unlike a forged payload which is a normal outcome.
var ErrInvalidInput = errors.New("invalid input")

// Verifier authenticates gateway notifications. A forged, tampered or
// unparseable payload yields a nil result and a nil error: the caller must
// treat nil as "payment not confirmed", never as a crash.
type Verifier struct {
	secret string // merchant key encoded with Base64
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify checks the signature the gateway sent over the Base64url payload.
// On success it returns every payload field, percent-decoded. The signature
// is recomputed over the payload string exactly as received, with the key
// re-derived from the order number embedded in the payload.
func (v *Verifier) Verify(parameters string, signature string) (map[string]string, error) {
	if parameters == "" || signature == "" {
		return nil, ErrInvalidInput
	}

	decoded, err := decodeBase64Url(parameters)
	if err != nil {
		return nil, nil
	}
	var fields map[string]string
	if err = json.Unmarshal(decoded, &fields); err != nil {
		return nil, nil
	}

	// gateway URL-encodes field values
	for name, value := range fields {
		if unescaped, e := url.QueryUnescape(value); e == nil {
			fields[name] = unescaped
		}
	}

	order := fields["Ds_Order"]
	if order == "" {
		return nil, nil
	}

	encryptor := NewEncryptor(v.secret, parameters, order)
	expected, err := encryptor.SignatureBytes()
	if err != nil {
		// bad merchant key material, not bad input
		return nil, fmt.Errorf("create signature: %v", err)
	}

	given, err := decodeBase64Url(signature)
	if err != nil {
		return nil, nil
	}
	if !hmac.Equal(expected, given) {
		return nil, nil
	}

	return fields, nil
}

// decodeBase64Url decodes a string in the Base64url alphabet, tolerating
// standard-alphabet input and missing padding.
func decodeBase64Url(data string) ([]byte, error) {
	data = strings.ReplaceAll(data, "-", "+")
	data = strings.ReplaceAll(data, "_", "/")
	if rem := len(data) % 4; rem != 0 {
		data += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(data)
}
