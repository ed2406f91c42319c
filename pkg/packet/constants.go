package packet

import "errors"

// RADIUS packet structure constants per RFC 2865 Section 3
const (
	// PacketHeaderLength is the length of the RADIUS packet header (Code + ID + Length + Authenticator)
	PacketHeaderLength = 20
	// MaxPacketLength is the maximum allowed RADIUS packet length per RFC 2865 Section 3
	MaxPacketLength = 4096
	// MinPacketLength is the minimum allowed RADIUS packet length (header only)
	MinPacketLength = PacketHeaderLength
	// AuthenticatorLength is the length of the authenticator field per RFC 2865 Section 3
	AuthenticatorLength = 16
	// AttributeHeaderLength is the length of attribute header (Type + Length) per RFC 2865 Section 5
	AttributeHeaderLength = 2
	// VendorSpecificHeaderLength is the length of the Vendor-Id and vendor Type/Length fields of a VSA
	VendorSpecificHeaderLength = 6
	// MaxAttributeValueLength is the maximum value length for a standard attribute (255 - 2 for header)
	MaxAttributeValueLength = 253
	// MaxVSAValueLength is the maximum vendor data length for a VSA (255 - 2 - 4 - 2 for headers)
	MaxVSAValueLength = 247
)

const (
	// AttributeTypeVendorSpecific is the type for Vendor-Specific Attributes (RFC 2865)
	AttributeTypeVendorSpecific = 26
	// AttributeTypeMessageAuthenticator is the type of Message-Authenticator (RFC 3579)
	AttributeTypeMessageAuthenticator = 80
)

var (
	// ErrValueTooLong indicates an attribute value longer than its header can describe
	ErrValueTooLong = errors.New("attribute value too long")
	// ErrPacketTooLarge indicates the packet would exceed MaxPacketLength
	ErrPacketTooLarge = errors.New("packet too large")
	// ErrUnknownAttribute indicates a name the packet dictionary does not define
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrNoDictionary indicates a name lookup on a packet without a dictionary
	ErrNoDictionary = errors.New("packet has no dictionary")
)
