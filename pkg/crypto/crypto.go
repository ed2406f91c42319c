package crypto

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"fmt"
)

// AuthenticatorLength is the length of RADIUS authenticators in bytes
const AuthenticatorLength = 16

// Authenticator represents a 16-byte RADIUS authenticator
type Authenticator [AuthenticatorLength]byte

// GenerateRequestAuthenticator generates a random Request Authenticator
func GenerateRequestAuthenticator() (Authenticator, error) {
	var auth Authenticator
	if _, err := rand.Read(auth[:]); err != nil {
		return auth, fmt.Errorf("failed to generate random authenticator: %w", err)
	}
	return auth, nil
}

// CalculateResponseAuthenticator calculates the Response Authenticator as defined in RFC 2865
// Response Authenticator = MD5(Code + ID + Length + Request Authenticator + Response Attributes + Secret)
func CalculateResponseAuthenticator(code uint8, identifier uint8, length uint16, requestAuth Authenticator, responseData []byte, sharedSecret []byte) Authenticator {
	hash := md5.New()

	hash.Write([]byte{code, identifier, byte(length >> 8), byte(length)})
	hash.Write(requestAuth[:])
	hash.Write(responseData)
	hash.Write(sharedSecret)

	var result Authenticator
	copy(result[:], hash.Sum(nil))
	return result
}

// ValidateResponseAuthenticator validates a Response Authenticator
func ValidateResponseAuthenticator(code uint8, identifier uint8, length uint16, requestAuth Authenticator, responseData []byte, receivedAuth Authenticator, sharedSecret []byte) bool {
	expected := CalculateResponseAuthenticator(code, identifier, length, requestAuth, responseData, sharedSecret)
	return hmac.Equal(expected[:], receivedAuth[:])
}

// String returns a hex representation of the authenticator
func (a Authenticator) String() string {
	return fmt.Sprintf("%x", a[:])
}

// FromBytes creates an authenticator from a byte slice
func FromBytes(data []byte) (Authenticator, error) {
	var auth Authenticator
	if len(data) != AuthenticatorLength {
		return auth, fmt.Errorf("%w: must be exactly %d bytes, got %d", ErrInvalidAuthenticatorLength, AuthenticatorLength, len(data))
	}
	copy(auth[:], data)
	return auth, nil
}
