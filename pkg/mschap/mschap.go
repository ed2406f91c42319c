// Package mschap implements the MS-CHAPv2 cryptographic kernel of RFC 2759 and
// the RADIUS attribute handling of RFC 2548.
//
// The functions in this package are pure: they keep no state between calls and
// may be used concurrently with independent inputs. The only side effect is in
// AddReply and its wrappers, which append one attribute to a caller-owned reply.
package mschap

import "errors"

// MS-CHAPv2 field lengths per RFC 2759 Section 4
const (
	// ChallengeLength is the length of the peer and authenticator challenges.
	ChallengeLength = 16

	// ChallengeHashLength is the length of the ChallengeHash output.
	ChallengeHashLength = 8

	// NTHashLength is the length of the NT password hash (MD4 digest).
	NTHashLength = 16

	// NTResponseLength is the length of the NT-Response field.
	NTResponseLength = 24

	// AuthenticatorResponseLength is the length of the "S=<hex>" success string.
	AuthenticatorResponseLength = 42

	// MaxEncodedPasswordLength bounds the UTF-16LE form of a password in bytes.
	MaxEncodedPasswordLength = 512

	// MaxReplyValueLength is the largest value a single RADIUS attribute can carry.
	MaxReplyValueLength = 253
)

var (
	// ErrEncoding indicates the password could not be converted to UTF-16LE
	// within MaxEncodedPasswordLength bytes.
	ErrEncoding = errors.New("password encoding failed")

	// ErrResource indicates a reply value could not be allocated in full.
	// Nothing is attached to the reply when it is returned.
	ErrResource = errors.New("reply attribute does not fit")

	// ErrUnknownAttribute indicates the reply schema has no such attribute.
	ErrUnknownAttribute = errors.New("unknown reply attribute")

	// ErrUnsupportedAttribute indicates the attribute is neither text nor opaque.
	ErrUnsupportedAttribute = errors.New("unsupported reply attribute type")
)
