package mschap

import (
	"errors"
	"fmt"

	"github.com/vitalvas/gomschap/pkg/dictionary"
	"github.com/vitalvas/gomschap/pkg/packet"
)

// PacketReply adapts a RADIUS packet and its dictionary to Reply.
type PacketReply struct {
	pkt *packet.Packet
}

// NewPacketReply wraps pkt. The packet must carry a dictionary that defines
// the attributes appended through it.
func NewPacketReply(pkt *packet.Packet) *PacketReply {
	return &PacketReply{pkt: pkt}
}

// Packet returns the wrapped packet.
func (r *PacketReply) Packet() *packet.Packet {
	return r.pkt
}

// AttributeKind maps the dictionary data type of name to a reply kind.
func (r *PacketReply) AttributeKind(name string) (AttributeKind, error) {
	if r.pkt.Dict == nil {
		return 0, fmt.Errorf("%w: %q: packet has no dictionary", ErrUnknownAttribute, name)
	}

	attrDef, exists := r.pkt.Dict.LookupByAttributeName(name)
	if !exists {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}

	switch attrDef.DataType {
	case dictionary.DataTypeString:
		return TextAttribute, nil
	case dictionary.DataTypeOctets, dictionary.DataTypeABinary:
		return OpaqueAttribute, nil
	default:
		return 0, fmt.Errorf("%w: %q has data type %s", ErrUnsupportedAttribute, name, attrDef.DataType)
	}
}

// AppendText appends a text attribute.
func (r *PacketReply) AppendText(name, value string) error {
	return r.add(name, []byte(value))
}

// AppendOctets appends an opaque attribute.
func (r *PacketReply) AppendOctets(name string, value []byte) error {
	return r.add(name, value)
}

func (r *PacketReply) add(name string, value []byte) error {
	err := r.pkt.AddAttributeByName(name, value)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, packet.ErrValueTooLong), errors.Is(err, packet.ErrPacketTooLarge):
		return fmt.Errorf("%w: %w", ErrResource, err)
	case errors.Is(err, packet.ErrUnknownAttribute), errors.Is(err, packet.ErrNoDictionary):
		return fmt.Errorf("%w: %w", ErrUnknownAttribute, err)
	default:
		return err
	}
}
