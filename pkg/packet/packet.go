package packet

import (
	"fmt"

	"github.com/vitalvas/gomschap/pkg/crypto"
	"github.com/vitalvas/gomschap/pkg/dictionary"
)

// Packet represents a RADIUS packet as defined in RFC 2865
type Packet struct {
	Code          Code
	Identifier    uint8
	Length        uint16
	Authenticator crypto.Authenticator
	Attributes    []*Attribute
	Dict          *dictionary.Dictionary // Optional dictionary for attribute lookups
}

// New creates a new RADIUS packet with the specified code and identifier
func New(code Code, identifier uint8) *Packet {
	return &Packet{
		Code:       code,
		Identifier: identifier,
		Length:     PacketHeaderLength,
		Attributes: make([]*Attribute, 0),
	}
}

// NewWithDictionary creates a new RADIUS packet with dictionary support
func NewWithDictionary(code Code, identifier uint8, dict *dictionary.Dictionary) *Packet {
	p := New(code, identifier)
	p.Dict = dict
	return p
}

// AddAttribute adds an attribute to the packet.
// The attribute is not appended when its value does not fit the Length octet
// or the packet would grow beyond MaxPacketLength.
func (p *Packet) AddAttribute(attr *Attribute) error {
	if len(attr.Value) > MaxAttributeValueLength {
		return fmt.Errorf("%w: type %d carries %d bytes, max %d", ErrValueTooLong, attr.Type, len(attr.Value), MaxAttributeValueLength)
	}

	size := len(attr.Value) + AttributeHeaderLength
	if int(p.Length)+size > MaxPacketLength {
		return fmt.Errorf("%w: adding %d bytes to %d exceeds %d", ErrPacketTooLarge, size, p.Length, MaxPacketLength)
	}

	attr.Length = uint8(size)
	p.Attributes = append(p.Attributes, attr)
	p.Length += uint16(size)
	return nil
}

// AddVendorAttribute adds a vendor-specific attribute to the packet
func (p *Packet) AddVendorAttribute(va *VendorAttribute) error {
	if len(va.Value) > MaxVSAValueLength {
		return fmt.Errorf("%w: vendor %d type %d carries %d bytes, max %d",
			ErrValueTooLong, va.VendorID, va.VendorType, len(va.Value), MaxVSAValueLength)
	}
	return p.AddAttribute(va.ToVSA())
}

// AddAttributeByName resolves name through the packet dictionary and appends
// value as either a standard attribute or a Vendor-Specific attribute.
func (p *Packet) AddAttributeByName(name string, value []byte) error {
	if p.Dict == nil {
		return fmt.Errorf("%w: cannot resolve %q", ErrNoDictionary, name)
	}

	attrDef, exists := p.Dict.LookupByAttributeName(name)
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}

	if vendorID, isVendor := p.Dict.LookupVendorIDByAttributeName(name); isVendor {
		return p.AddVendorAttribute(NewVendorAttribute(vendorID, uint8(attrDef.ID), value))
	}

	return p.AddAttribute(NewAttribute(uint8(attrDef.ID), value))
}

// GetAttribute returns the first attribute with the specified type
func (p *Packet) GetAttribute(attrType uint8) (*Attribute, bool) {
	for _, attr := range p.Attributes {
		if attr.Type == attrType {
			return attr, true
		}
	}
	return nil, false
}

// GetAttributes returns all attributes with the specified type
func (p *Packet) GetAttributes(attrType uint8) []*Attribute {
	var attrs []*Attribute
	for _, attr := range p.Attributes {
		if attr.Type == attrType {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// GetVendorAttribute returns the first vendor attribute with the specified vendor ID and type
func (p *Packet) GetVendorAttribute(vendorID uint32, vendorType uint8) (*VendorAttribute, bool) {
	attrs := p.GetVendorAttributes(vendorID, vendorType)
	if len(attrs) == 0 {
		return nil, false
	}
	return attrs[0], true
}

// GetVendorAttributes returns all vendor attributes with the specified vendor ID and type
func (p *Packet) GetVendorAttributes(vendorID uint32, vendorType uint8) []*VendorAttribute {
	var attrs []*VendorAttribute
	for _, attr := range p.Attributes {
		if attr.Type != AttributeTypeVendorSpecific {
			continue
		}
		if va, err := ParseVSA(attr); err == nil {
			if va.VendorID == vendorID && va.VendorType == vendorType {
				attrs = append(attrs, va)
			}
		}
	}
	return attrs
}

// GetAttributeValuesByName returns the values of every attribute named name, in packet order
func (p *Packet) GetAttributeValuesByName(name string) [][]byte {
	if p.Dict == nil {
		return nil
	}

	attrDef, exists := p.Dict.LookupByAttributeName(name)
	if !exists {
		return nil
	}

	var values [][]byte
	if vendorID, isVendor := p.Dict.LookupVendorIDByAttributeName(name); isVendor {
		for _, va := range p.GetVendorAttributes(vendorID, uint8(attrDef.ID)) {
			values = append(values, va.Value)
		}
		return values
	}

	for _, attr := range p.GetAttributes(uint8(attrDef.ID)) {
		values = append(values, attr.Value)
	}
	return values
}

// Sign sets the Response Authenticator for Access-Accept, Access-Reject and
// Access-Challenge packets answering a request carrying requestAuth.
func (p *Packet) Sign(secret []byte, requestAuth crypto.Authenticator) {
	p.Authenticator = crypto.CalculateResponseAuthenticator(
		uint8(p.Code), p.Identifier, p.Length, requestAuth, p.encodeAttributes(), secret)
}

// SignWithMessageAuthenticator adds a Message-Authenticator attribute when
// the packet has none, fills it per RFC 3579 Section 3.2 and then sets the
// Response Authenticator over the result.
func (p *Packet) SignWithMessageAuthenticator(secret []byte, requestAuth crypto.Authenticator) error {
	attr, exists := p.GetAttribute(AttributeTypeMessageAuthenticator)
	if !exists {
		attr = NewAttribute(AttributeTypeMessageAuthenticator, make([]byte, crypto.MessageAuthenticatorLength))
		if err := p.AddAttribute(attr); err != nil {
			return fmt.Errorf("failed to add Message-Authenticator: %w", err)
		}
	}

	clear(attr.Value)
	p.Authenticator = requestAuth

	data, err := p.Encode()
	if err != nil {
		return err
	}

	mac := crypto.CalculateMessageAuthenticator(data, secret)
	copy(attr.Value, mac[:])

	p.Sign(secret, requestAuth)
	return nil
}

// IsValid performs basic validation of the packet
func (p *Packet) IsValid() error {
	if !p.Code.IsValid() {
		return fmt.Errorf("invalid packet code: %d", p.Code)
	}

	if p.Length < MinPacketLength {
		return fmt.Errorf("packet too short: %d bytes", p.Length)
	}

	if p.Length > MaxPacketLength {
		return fmt.Errorf("packet too long: %d bytes", p.Length)
	}

	expectedLength := uint16(PacketHeaderLength)
	for _, attr := range p.Attributes {
		expectedLength += uint16(attr.Length)
	}

	if p.Length != expectedLength {
		return fmt.Errorf("packet length mismatch: header says %d, calculated %d", p.Length, expectedLength)
	}

	return nil
}

// String returns a string representation of the packet
func (p *Packet) String() string {
	return fmt.Sprintf("Code=%s(%d), ID=%d, Length=%d, Attributes=%d",
		p.Code.String(), p.Code, p.Identifier, p.Length, len(p.Attributes))
}
