package mschap

import (
	"fmt"

	"github.com/vitalvas/gomschap/pkg/crypto"
)

// Microsoft vendor attribute names used in MS-CHAPv2 replies (RFC 2548)
const (
	AttrMSCHAPError    = "MS-CHAP-Error"
	AttrMSCHAP2Success = "MS-CHAP2-Success"
	AttrMPPESendKey    = "MS-MPPE-Send-Key"
	AttrMPPERecvKey    = "MS-MPPE-Recv-Key"
)

// AttributeKind is the representation a reply attribute declares for its value.
type AttributeKind uint8

const (
	// TextAttribute values are carried as strings.
	TextAttribute AttributeKind = iota + 1
	// OpaqueAttribute values are carried as raw octets.
	OpaqueAttribute
)

func (k AttributeKind) String() string {
	switch k {
	case TextAttribute:
		return "text"
	case OpaqueAttribute:
		return "opaque"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Reply is a caller-owned collection of outbound attributes together with the
// schema that declares each attribute's kind. Implementations need not be safe
// for concurrent use.
type Reply interface {
	// AttributeKind resolves the declared kind of the named attribute.
	AttributeKind(name string) (AttributeKind, error)

	// AppendText appends a text-valued attribute.
	AppendText(name, value string) error

	// AppendOctets appends an opaque attribute.
	AppendOctets(name string, value []byte) error
}

// AddReply appends one attribute named name to reply. Its value is ident
// followed by value, copied verbatim with no transcoding regardless of the
// attribute kind.
//
// A value that cannot be carried in full fails with ErrResource. No attribute
// is appended on any error.
func AddReply(reply Reply, ident byte, name string, value []byte) error {
	kind, err := reply.AttributeKind(name)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", name, err)
	}

	if len(value)+1 > MaxReplyValueLength {
		return fmt.Errorf("%w: %q needs %d bytes, max %d", ErrResource, name, len(value)+1, MaxReplyValueLength)
	}

	buf := make([]byte, len(value)+1)
	buf[0] = ident
	copy(buf[1:], value)

	switch kind {
	case TextAttribute:
		err = reply.AppendText(name, string(buf))
	case OpaqueAttribute:
		err = reply.AppendOctets(name, buf)
	default:
		return fmt.Errorf("%w: %q is %s", ErrUnsupportedAttribute, name, kind)
	}

	if err != nil {
		return fmt.Errorf("failed to append %q: %w", name, err)
	}
	return nil
}

// Success attaches the MS-CHAP2-Success attribute carrying the authenticator
// response for a verified NT-Response.
func Success(reply Reply, ident byte, userName []byte, ntHashHash [NTHashLength]byte,
	ntResponse [NTResponseLength]byte, peerChallenge, authChallenge [ChallengeLength]byte) error {
	response := AuthenticatorResponse(userName, ntHashHash, ntResponse, peerChallenge, authChallenge)
	return AddReply(reply, ident, AttrMSCHAP2Success, []byte(response))
}

// Failure attaches the MS-CHAP-Error attribute carrying the text built by
// FailureMessage.
func Failure(reply Reply, ident byte, code uint32, retry bool, challenge [ChallengeLength]byte, message string) error {
	return AddReply(reply, ident, AttrMSCHAPError, []byte(FailureMessage(code, retry, challenge, message)))
}

// AddMPPEKeys attaches MS-MPPE-Send-Key and MS-MPPE-Recv-Key, each encrypted
// with secret and the request authenticator (RFC 2548 Section 2.4.2). The two
// attributes always carry different salts. Both keys are encrypted before
// either attribute is appended.
func AddMPPEKeys(reply Reply, secret []byte, requestAuth crypto.Authenticator, sendKey, recvKey []byte) error {
	salts, err := crypto.NewSalts(2)
	if err != nil {
		return err
	}

	sendValue, err := crypto.EncryptKeyAttribute(secret, requestAuth, salts[0], sendKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", AttrMPPESendKey, err)
	}

	recvValue, err := crypto.EncryptKeyAttribute(secret, requestAuth, salts[1], recvKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", AttrMPPERecvKey, err)
	}

	if err := appendOpaque(reply, AttrMPPESendKey, sendValue); err != nil {
		return err
	}
	return appendOpaque(reply, AttrMPPERecvKey, recvValue)
}

func appendOpaque(reply Reply, name string, value []byte) error {
	kind, err := reply.AttributeKind(name)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", name, err)
	}
	if kind != OpaqueAttribute {
		return fmt.Errorf("%w: %q is %s", ErrUnsupportedAttribute, name, kind)
	}
	if err := reply.AppendOctets(name, value); err != nil {
		return fmt.Errorf("failed to append %q: %w", name, err)
	}
	return nil
}
