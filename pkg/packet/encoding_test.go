package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketEncode(t *testing.T) {
	packet := New(CodeAccessRequest, 123)
	packet.Authenticator = [16]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	require.NoError(t, packet.AddAttribute(NewAttribute(1, []byte("test"))))

	data, err := packet.Encode()
	require.NoError(t, err)

	assert.Equal(t, int(packet.Length), len(data))
	assert.Equal(t, byte(CodeAccessRequest), data[0])
	assert.Equal(t, byte(123), data[1])
	assert.Equal(t, packet.Length, uint16(data[2])<<8|uint16(data[3]))
	assert.Equal(t, packet.Authenticator[:], data[4:20])

	assert.Equal(t, byte(1), data[20])
	assert.Equal(t, byte(6), data[21]) // 2 + 4 bytes
	assert.Equal(t, []byte("test"), data[22:26])
}

func TestPacketEncodeInvalid(t *testing.T) {
	packet := New(Code(0), 1)
	_, err := packet.Encode()
	assert.Error(t, err)

	packet = New(CodeAccessAccept, 1)
	packet.Length = 30
	_, err = packet.Encode()
	assert.Error(t, err)
}

func TestPacketDecode(t *testing.T) {
	data := []byte{
		1,     // Code: Access-Request
		123,   // Identifier
		0, 26, // Length: 26 bytes
		// Authenticator (16 bytes)
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		// Attribute: User-Name = "test"
		1,                  // Type: User-Name
		6,                  // Length: 6 bytes
		't', 'e', 's', 't', // Value: "test"
	}

	packet, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, CodeAccessRequest, packet.Code)
	assert.Equal(t, uint8(123), packet.Identifier)
	assert.Equal(t, uint16(26), packet.Length)
	assert.Equal(t, data[4:20], packet.Authenticator[:])

	require.Len(t, packet.Attributes, 1)
	assert.Equal(t, uint8(1), packet.Attributes[0].Type)
	assert.Equal(t, []byte("test"), packet.Attributes[0].Value)

	encoded, err := packet.Encode()
	require.NoError(t, err)
	assert.Equal(t, data, encoded)
}

func TestPacketDecodeErrors(t *testing.T) {
	header := func(length uint16) []byte {
		data := make([]byte, PacketHeaderLength)
		data[0] = byte(CodeAccessAccept)
		data[2] = byte(length >> 8)
		data[3] = byte(length)
		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"too short", make([]byte, 10)},
		{"too long", make([]byte, MaxPacketLength+1)},
		{"length mismatch", header(40)},
		{"incomplete attribute header", append(header(21), 1)},
		{"attribute length below header", append(header(22), 1, 1)},
		{"attribute beyond packet", append(header(23), 1, 9, 'x')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.Error(t, err)
		})
	}
}
