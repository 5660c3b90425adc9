package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)
	txnID := "c1a9e6a0-91b7-4c61-a2c8-5b5f3f9d8f10"

	token := EncodeToken(createdAt, txnID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedAt, "Created at time should match after decode")
	assert.Equal(t, txnID, decodedID, "Transaction ID should match after decode")
}

func TestDecodeTokenInvalid(t *testing.T) {
	// Not base64 at all
	_, _, err := DecodeToken("not-a-token!!!")
	assert.Error(t, err, "Invalid base64 should return an error")

	// Valid base64 but missing the separator
	raw := base64.StdEncoding.EncodeToString([]byte("just-one-field"))
	_, _, err = DecodeToken(raw)
	assert.Error(t, err, "Token without separator should return an error")

	// Valid shape but unparseable time
	raw = base64.StdEncoding.EncodeToString([]byte("yesterday|some-id"))
	_, _, err = DecodeToken(raw)
	assert.Error(t, err, "Unparseable timestamp should return an error")

	// Empty identifier field
	raw = base64.StdEncoding.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano) + "|"))
	_, _, err = DecodeToken(raw)
	assert.Error(t, err, "Empty transaction ID should return an error")
}
