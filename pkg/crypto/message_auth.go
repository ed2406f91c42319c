package crypto

import (
	"crypto/hmac"
	"crypto/md5"
)

// MessageAuthenticatorLength is the length of the Message-Authenticator value
const MessageAuthenticatorLength = 16

// CalculateMessageAuthenticator returns HMAC-MD5(sharedSecret, packetData) as
// defined in RFC 3579 Section 3.2. packetData must be the encoded packet with
// the Message-Authenticator value zeroed and, for responses, the Request
// Authenticator in the authenticator field.
func CalculateMessageAuthenticator(packetData []byte, sharedSecret []byte) [MessageAuthenticatorLength]byte {
	mac := hmac.New(md5.New, sharedSecret)
	mac.Write(packetData)

	var result [MessageAuthenticatorLength]byte
	copy(result[:], mac.Sum(nil))
	return result
}

// ValidateMessageAuthenticator validates a received Message-Authenticator
func ValidateMessageAuthenticator(packetData []byte, sharedSecret []byte, receivedAuth [MessageAuthenticatorLength]byte) bool {
	expected := CalculateMessageAuthenticator(packetData, sharedSecret)
	return hmac.Equal(expected[:], receivedAuth[:])
}
