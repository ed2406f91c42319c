package dictionaries

import "github.com/vitalvas/gomschap/pkg/dictionary"

// MicrosoftVendorID is the IANA enterprise number of Microsoft
const MicrosoftVendorID = 311

// MicrosoftVendorDefinition defines the Microsoft vendor attributes of RFC 2548
var MicrosoftVendorDefinition = &dictionary.VendorDefinition{
	ID:          MicrosoftVendorID,
	Name:        "Microsoft",
	Description: "Microsoft vendor-specific RADIUS attributes (RFC 2548)",
	Attributes: []*dictionary.AttributeDefinition{
		{ID: 1, Name: "MS-CHAP-Response", DataType: dictionary.DataTypeOctets},
		{ID: 2, Name: "MS-CHAP-Error", DataType: dictionary.DataTypeString},
		{ID: 3, Name: "MS-CHAP-CPW-1", DataType: dictionary.DataTypeOctets},
		{ID: 4, Name: "MS-CHAP-CPW-2", DataType: dictionary.DataTypeOctets},
		{ID: 5, Name: "MS-CHAP-LM-Enc-PW", DataType: dictionary.DataTypeOctets},
		{ID: 6, Name: "MS-CHAP-NT-Enc-PW", DataType: dictionary.DataTypeOctets},
		{
			ID:       7,
			Name:     "MS-MPPE-Encryption-Policy",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"Encryption-Allowed":  1,
				"Encryption-Required": 2,
			},
		},
		{
			ID:       8,
			Name:     "MS-MPPE-Encryption-Types",
			DataType: dictionary.DataTypeInteger,
			Values: map[string]uint32{
				"RC4-40bit-Allowed":       1,
				"RC4-128bit-Allowed":      2,
				"RC4-40or128-bit-Allowed": 6,
			},
		},
		{ID: 9, Name: "MS-RAS-Vendor", DataType: dictionary.DataTypeInteger},
		{ID: 10, Name: "MS-CHAP-Domain", DataType: dictionary.DataTypeString},
		{ID: 11, Name: "MS-CHAP-Challenge", DataType: dictionary.DataTypeOctets},
		{ID: 12, Name: "MS-CHAP-MPPE-Keys", DataType: dictionary.DataTypeOctets, Encryption: dictionary.EncryptionUserPassword},
		{ID: 13, Name: "MS-BAP-Usage", DataType: dictionary.DataTypeInteger},
		{ID: 14, Name: "MS-Link-Utilization-Threshold", DataType: dictionary.DataTypeInteger},
		{ID: 15, Name: "MS-Link-Drop-Time-Limit", DataType: dictionary.DataTypeInteger},
		{ID: 16, Name: "MS-MPPE-Send-Key", DataType: dictionary.DataTypeOctets, Encryption: dictionary.EncryptionSalt},
		{ID: 17, Name: "MS-MPPE-Recv-Key", DataType: dictionary.DataTypeOctets, Encryption: dictionary.EncryptionSalt},
		{ID: 18, Name: "MS-RAS-Version", DataType: dictionary.DataTypeString},
		{ID: 22, Name: "MS-Filter", DataType: dictionary.DataTypeOctets},
		{ID: 23, Name: "MS-Acct-Auth-Type", DataType: dictionary.DataTypeInteger},
		{ID: 24, Name: "MS-Acct-EAP-Type", DataType: dictionary.DataTypeInteger},
		{ID: 25, Name: "MS-CHAP2-Response", DataType: dictionary.DataTypeOctets},
		{ID: 26, Name: "MS-CHAP2-Success", DataType: dictionary.DataTypeOctets},
		{ID: 27, Name: "MS-CHAP2-CPW", DataType: dictionary.DataTypeOctets},
		{ID: 28, Name: "MS-Primary-DNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 29, Name: "MS-Secondary-DNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 30, Name: "MS-Primary-NBNS-Server", DataType: dictionary.DataTypeIPAddr},
		{ID: 31, Name: "MS-Secondary-NBNS-Server", DataType: dictionary.DataTypeIPAddr},
	},
}
