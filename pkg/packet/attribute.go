package packet

import (
	"encoding/binary"
	"fmt"
)

// Attribute represents a RADIUS attribute
type Attribute struct {
	Type   uint8
	Length uint8
	Value  []byte
}

// VendorAttribute represents a vendor-specific attribute (VSA)
type VendorAttribute struct {
	VendorID   uint32
	VendorType uint8
	Value      []byte
}

// NewAttribute creates a new RADIUS attribute
func NewAttribute(attrType uint8, value []byte) *Attribute {
	return &Attribute{
		Type:   attrType,
		Length: uint8(len(value) + AttributeHeaderLength),
		Value:  value,
	}
}

// NewVendorAttribute creates a new vendor-specific attribute
func NewVendorAttribute(vendorID uint32, vendorType uint8, value []byte) *VendorAttribute {
	return &VendorAttribute{
		VendorID:   vendorID,
		VendorType: vendorType,
		Value:      value,
	}
}

// String returns a string representation of the attribute
func (a *Attribute) String() string {
	return fmt.Sprintf("Type=%d, Length=%d, Value=%x", a.Type, a.Length, a.Value)
}

// String returns a string representation of the vendor attribute
func (va *VendorAttribute) String() string {
	return fmt.Sprintf("VendorID=%d, Type=%d, Value=%x", va.VendorID, va.VendorType, va.Value)
}

// ToVSA converts a VendorAttribute to a standard Attribute (Type 26 - Vendor-Specific)
func (va *VendorAttribute) ToVSA() *Attribute {
	// Vendor-ID(4) + Vendor-Type(1) + Vendor-Length(1) + Vendor-Data
	vsaValue := make([]byte, VendorSpecificHeaderLength+len(va.Value))

	binary.BigEndian.PutUint32(vsaValue[0:4], va.VendorID)
	vsaValue[4] = va.VendorType
	vsaValue[5] = uint8(len(va.Value) + 2)
	copy(vsaValue[6:], va.Value)

	return NewAttribute(AttributeTypeVendorSpecific, vsaValue)
}

// ParseVSA parses a Vendor-Specific Attribute (Type 26) into VendorAttribute
func ParseVSA(attr *Attribute) (*VendorAttribute, error) {
	if attr.Type != AttributeTypeVendorSpecific {
		return nil, fmt.Errorf("not a vendor-specific attribute (type %d)", attr.Type)
	}

	if len(attr.Value) < VendorSpecificHeaderLength {
		return nil, fmt.Errorf("invalid VSA length: %d", len(attr.Value))
	}

	vendorLength := attr.Value[5]
	if int(vendorLength) != len(attr.Value)-4 {
		return nil, fmt.Errorf("invalid vendor length: %d, expected %d", vendorLength, len(attr.Value)-4)
	}

	return &VendorAttribute{
		VendorID:   binary.BigEndian.Uint32(attr.Value[0:4]),
		VendorType: attr.Value[4],
		Value:      attr.Value[6:],
	}, nil
}
