package internal

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"gitee.com/golang-module/dongle"
)

// SignatureVersion is the protocol version tag advertised with every signed payload.
const SignatureVersion = "HMAC_SHA256_V1"

// Encryptor derives the per-order signing key and computes the HMAC-SHA256
// signature over a prepared message. The derived key is the 3DES-CBC
// ciphertext of the order number under the merchant secret; the same order
// must always derive the same key, on signing and on verification.
type Encryptor struct {
	secret     string // merchant key encoded with Base64
	parameters string // message covered by the signature
	order      string // order number to be encrypted
}

func NewEncryptor(secret string, parameters string, order string) *Encryptor {
	return &Encryptor{
		secret:     secret,
		parameters: parameters,
		order:      order,
	}
}

// CreateSignature returns the Base64-encoded HMAC-SHA256 of the message under
// the derived key.
func (e *Encryptor) CreateSignature() (string, error) {
	hash, err := e.SignatureBytes()
	if err != nil {
		return "", err
	}
	return dongle.Encode.FromBytes(hash).ByBase64().ToString(), nil
}

// SignatureBytes returns the raw HMAC-SHA256 of the message under the derived
// key, for constant-time comparison against a received signature.
func (e *Encryptor) SignatureBytes() ([]byte, error) {
	key, err := e.deriveKeyBytes()
	if err != nil {
		return nil, err
	}
	return e.mac256(e.parameters, key), nil
}

// DeriveKey returns the Base64-encoded per-order key. The key is never
// stored; it is recomputed from the secret and the order on every call.
func (e *Encryptor) DeriveKey() (string, error) {
	key, err := e.deriveKeyBytes()
	if err != nil {
		return "", err
	}
	return dongle.Encode.FromBytes(key).ByBase64().ToString(), nil
}

func (e *Encryptor) deriveKeyBytes() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(e.secret)
	if err != nil {
		return nil, fmt.Errorf("decode secret: %v", err)
	}
	if len(key) != 24 {
		return nil, fmt.Errorf("secret must decode to 24 bytes, got %d", len(key))
	}

	// encrypt order number with 3DES
	derived, err := e.encrypt3DES(e.order, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt3DES: %v", err)
	}
	return derived, nil
}

func (e *Encryptor) encrypt3DES(plainText string, key []byte) ([]byte, error) {
	if plainText == "" {
		return nil, errors.New("plainText cannot be empty")
	}

	toEncryptArray := []byte(plainText)

	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return nil, err
	}

	// SALT used in 3DES encryption process
	salt := []byte{0, 0, 0, 0, 0, 0, 0, 0}

	// Zero-pad up to the next block boundary. An already aligned order gets
	// no extra block; the cipher itself runs without padding.
	if rem := len(toEncryptArray) % block.BlockSize(); rem != 0 {
		addText := bytes.Repeat([]byte{0}, block.BlockSize()-rem)
		toEncryptArray = append(toEncryptArray, addText...)
	}

	ciphertext := make([]byte, len(toEncryptArray))

	// Create the CBC mode
	mode := cipher.NewCBCEncrypter(block, salt)

	// Encrypt
	mode.CryptBlocks(ciphertext, toEncryptArray)

	return ciphertext, nil
}

func (e *Encryptor) mac256(message string, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return mac.Sum(nil)
}
