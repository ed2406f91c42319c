package mschap

import (
	"crypto/sha1"
	"crypto/subtle"
)

// Signing constants of GenerateAuthenticatorResponse, RFC 2759 Section 8.7.
// These are protocol literals and must be reproduced byte for byte.
var (
	// "Magic server to client signing constant"
	magic1 = [39]byte{
		0x4D, 0x61, 0x67, 0x69, 0x63, 0x20, 0x73, 0x65, 0x72, 0x76,
		0x65, 0x72, 0x20, 0x74, 0x6F, 0x20, 0x63, 0x6C, 0x69, 0x65,
		0x6E, 0x74, 0x20, 0x73, 0x69, 0x67, 0x6E, 0x69, 0x6E, 0x67,
		0x20, 0x63, 0x6F, 0x6E, 0x73, 0x74, 0x61, 0x6E, 0x74,
	}

	// "Pad to make it do more than one iteration"
	magic2 = [41]byte{
		0x50, 0x61, 0x64, 0x20, 0x74, 0x6F, 0x20, 0x6D, 0x61, 0x6B,
		0x65, 0x20, 0x69, 0x74, 0x20, 0x64, 0x6F, 0x20, 0x6D, 0x6F,
		0x72, 0x65, 0x20, 0x74, 0x68, 0x61, 0x6E, 0x20, 0x6F, 0x6E,
		0x65, 0x20, 0x69, 0x74, 0x65, 0x72, 0x61, 0x74, 0x69, 0x6F,
		0x6E,
	}
)

// Peers compare the response string byte for byte, so digits must be uppercase.
const upperHex = "0123456789ABCDEF"

// AuthenticatorResponse generates the 42-byte "S=<40 hex digits>" string that
// proves to the peer that the server knows its password (RFC 2759 Section 8.7).
//
// ntHashHash is HashNTHash of the user's NT hash and ntResponse is the 24-byte
// NT-Response received from the peer.
func AuthenticatorResponse(userName []byte, ntHashHash [NTHashLength]byte, ntResponse [NTResponseLength]byte,
	peerChallenge, authChallenge [ChallengeLength]byte) string {
	hash := sha1.New()
	hash.Write(ntHashHash[:])
	hash.Write(ntResponse[:])
	hash.Write(magic1[:])
	digest := hash.Sum(nil)

	challenge := ChallengeHash(peerChallenge, authChallenge, userName)

	hash.Reset()
	hash.Write(digest)
	hash.Write(challenge[:])
	hash.Write(magic2[:])
	digest = hash.Sum(nil)

	var out [AuthenticatorResponseLength]byte
	out[0] = 'S'
	out[1] = '='
	for i, b := range digest {
		out[2+i*2] = upperHex[b>>4]
		out[3+i*2] = upperHex[b&0x0f]
	}

	return string(out[:])
}

// CheckAuthenticatorResponse reports whether response matches the string the
// authenticator should have sent. It is the peer-side counterpart of
// AuthenticatorResponse and compares in constant time.
func CheckAuthenticatorResponse(response string, userName []byte, ntHashHash [NTHashLength]byte,
	ntResponse [NTResponseLength]byte, peerChallenge, authChallenge [ChallengeLength]byte) bool {
	expected := AuthenticatorResponse(userName, ntHashHash, ntResponse, peerChallenge, authChallenge)
	return subtle.ConstantTimeCompare([]byte(response), []byte(expected)) == 1
}
