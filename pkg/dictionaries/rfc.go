package dictionaries

import "github.com/vitalvas/gomschap/pkg/dictionary"

// StandardRFCAttributes contains the RFC 2865 and RFC 2869 attributes an
// authentication exchange reads or writes
var StandardRFCAttributes = []*dictionary.AttributeDefinition{
	{ID: 1, Name: "User-Name", DataType: dictionary.DataTypeString},
	{ID: 2, Name: "User-Password", DataType: dictionary.DataTypeString, Encryption: dictionary.EncryptionUserPassword},
	{ID: 3, Name: "CHAP-Password", DataType: dictionary.DataTypeOctets},
	{ID: 4, Name: "NAS-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{ID: 5, Name: "NAS-Port", DataType: dictionary.DataTypeInteger},
	{ // RFC2865
		ID:       6,
		Name:     "Service-Type",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"Login-User":        1,
			"Framed-User":       2,
			"Authenticate-Only": 8,
		},
	},
	{ // RFC2865
		ID:       7,
		Name:     "Framed-Protocol",
		DataType: dictionary.DataTypeInteger,
		Values: map[string]uint32{
			"PPP":  1,
			"SLIP": 2,
		},
	},
	{ID: 8, Name: "Framed-IP-Address", DataType: dictionary.DataTypeIPAddr},
	{ID: 11, Name: "Filter-Id", DataType: dictionary.DataTypeString},
	{ID: 12, Name: "Framed-MTU", DataType: dictionary.DataTypeInteger},
	{ID: 18, Name: "Reply-Message", DataType: dictionary.DataTypeString},
	{ID: 24, Name: "State", DataType: dictionary.DataTypeOctets},
	{ID: 25, Name: "Class", DataType: dictionary.DataTypeOctets},
	{ID: 26, Name: "Vendor-Specific", DataType: dictionary.DataTypeOctets},
	{ID: 27, Name: "Session-Timeout", DataType: dictionary.DataTypeInteger},
	{ID: 28, Name: "Idle-Timeout", DataType: dictionary.DataTypeInteger},
	{ID: 30, Name: "Called-Station-Id", DataType: dictionary.DataTypeString},
	{ID: 31, Name: "Calling-Station-Id", DataType: dictionary.DataTypeString},
	{ID: 32, Name: "NAS-Identifier", DataType: dictionary.DataTypeString},
	{ID: 33, Name: "Proxy-State", DataType: dictionary.DataTypeOctets},
	{ID: 60, Name: "CHAP-Challenge", DataType: dictionary.DataTypeOctets},
	{ID: 61, Name: "NAS-Port-Type", DataType: dictionary.DataTypeInteger},
	{ID: 79, Name: "EAP-Message", DataType: dictionary.DataTypeOctets},
	{ID: 80, Name: "Message-Authenticator", DataType: dictionary.DataTypeOctets},
}
