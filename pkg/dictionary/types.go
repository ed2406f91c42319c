package dictionary

// DataType represents the data type of an attribute per RFC 2865 Section 5
type DataType string

const (
	DataTypeString   DataType = "string"  // Text (RFC 2865 Section 5)
	DataTypeOctets   DataType = "octets"  // Raw bytes (RFC 2865 Section 5)
	DataTypeInteger  DataType = "integer" // 32-bit unsigned integer (RFC 2865 Section 5)
	DataTypeIPAddr   DataType = "ipaddr"  // IPv4 address (RFC 2865 Section 5)
	DataTypeDate     DataType = "date"    // Unix timestamp (RFC 2865 Section 5)
	DataTypeABinary  DataType = "abinary"
	DataTypeIPv6Addr DataType = "ipv6addr" // IPv6 address (RFC 6929)
)

// IsValid reports whether dt is a known data type.
func (dt DataType) IsValid() bool {
	switch dt {
	case DataTypeString, DataTypeOctets, DataTypeInteger, DataTypeIPAddr,
		DataTypeDate, DataTypeABinary, DataTypeIPv6Addr:
		return true
	default:
		return false
	}
}

// EncryptionType represents the encryption type of an attribute
type EncryptionType string

const (
	EncryptionNone           EncryptionType = ""
	EncryptionUserPassword   EncryptionType = "user-password"   // RFC 2865 Section 5.2
	EncryptionTunnelPassword EncryptionType = "tunnel-password" // RFC 2868 Section 3.5
	EncryptionSalt           EncryptionType = "salt"            // RFC 2548 Section 2.4.2
)

// AttributeDefinition defines a RADIUS attribute per RFC 2865 Section 5
type AttributeDefinition struct {
	ID          uint32            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	DataType    DataType          `yaml:"data_type" json:"data_type"`
	Encryption  EncryptionType    `yaml:"encryption,omitempty" json:"encryption,omitempty"`
	Values      map[string]uint32 `yaml:"values,omitempty" json:"values,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// VendorDefinition defines a vendor and its attributes per RFC 2865 Section 5.26
type VendorDefinition struct {
	ID          uint32                 `yaml:"id" json:"id"`
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  []*AttributeDefinition `yaml:"attributes" json:"attributes"`
}
