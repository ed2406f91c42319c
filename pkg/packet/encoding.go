package packet

import (
	"encoding/binary"
	"fmt"
)

// Encode converts a Packet into its binary representation per RFC 2865 Section 3
func (p *Packet) Encode() ([]byte, error) {
	if err := p.IsValid(); err != nil {
		return nil, fmt.Errorf("invalid packet: %w", err)
	}

	data := make([]byte, PacketHeaderLength, p.Length)

	data[0] = byte(p.Code)
	data[1] = p.Identifier
	binary.BigEndian.PutUint16(data[2:4], p.Length)
	copy(data[4:20], p.Authenticator[:])

	return append(data, p.encodeAttributes()...), nil
}

func (p *Packet) encodeAttributes() []byte {
	data := make([]byte, 0, int(p.Length)-PacketHeaderLength)
	for _, attr := range p.Attributes {
		data = append(data, attr.Type, attr.Length)
		data = append(data, attr.Value...)
	}
	return data
}

// Decode parses binary data into a Packet per RFC 2865 Section 3
func Decode(data []byte) (*Packet, error) {
	if len(data) < MinPacketLength {
		return nil, fmt.Errorf("packet too short: %d bytes", len(data))
	}

	if len(data) > MaxPacketLength {
		return nil, fmt.Errorf("packet too long: %d bytes", len(data))
	}

	length := binary.BigEndian.Uint16(data[2:4])
	if int(length) != len(data) {
		return nil, fmt.Errorf("packet length mismatch: header says %d, got %d", length, len(data))
	}

	packet := &Packet{
		Code:       Code(data[0]),
		Identifier: data[1],
		Length:     length,
		Attributes: make([]*Attribute, 0),
	}
	copy(packet.Authenticator[:], data[4:20])

	offset := PacketHeaderLength
	for offset < int(length) {
		if offset+AttributeHeaderLength > int(length) {
			return nil, fmt.Errorf("incomplete attribute header at offset %d", offset)
		}

		attrType := data[offset]
		attrLength := data[offset+1]

		if attrLength < AttributeHeaderLength {
			return nil, fmt.Errorf("invalid attribute length: %d", attrLength)
		}

		if offset+int(attrLength) > int(length) {
			return nil, fmt.Errorf("attribute extends beyond packet: offset %d, length %d, packet length %d",
				offset, attrLength, length)
		}

		attrValue := make([]byte, int(attrLength)-AttributeHeaderLength)
		copy(attrValue, data[offset+2:offset+int(attrLength)])

		packet.Attributes = append(packet.Attributes, &Attribute{
			Type:   attrType,
			Length: attrLength,
			Value:  attrValue,
		})
		offset += int(attrLength)
	}

	return packet, nil
}
