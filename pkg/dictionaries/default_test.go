package dictionaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/gomschap/pkg/dictionary"
)

func TestNewDefault(t *testing.T) {
	dict, err := NewDefault()
	require.NoError(t, err)
	require.NotNil(t, dict)

	userName, ok := dict.LookupStandardByID(1)
	require.True(t, ok, "User-Name (ID 1) should be loaded")
	assert.Equal(t, "User-Name", userName.Name)

	vendor, ok := dict.LookupVendorByID(MicrosoftVendorID)
	require.True(t, ok, "Microsoft vendor (ID 311) should be loaded")
	assert.Equal(t, "Microsoft", vendor.Name)
}

func TestMicrosoftReplyAttributes(t *testing.T) {
	dict, err := NewDefault()
	require.NoError(t, err)

	tests := []struct {
		name       string
		id         uint32
		dataType   dictionary.DataType
		encryption dictionary.EncryptionType
	}{
		{"MS-CHAP-Error", 2, dictionary.DataTypeString, dictionary.EncryptionNone},
		{"MS-CHAP-Challenge", 11, dictionary.DataTypeOctets, dictionary.EncryptionNone},
		{"MS-MPPE-Send-Key", 16, dictionary.DataTypeOctets, dictionary.EncryptionSalt},
		{"MS-MPPE-Recv-Key", 17, dictionary.DataTypeOctets, dictionary.EncryptionSalt},
		{"MS-CHAP2-Response", 25, dictionary.DataTypeOctets, dictionary.EncryptionNone},
		{"MS-CHAP2-Success", 26, dictionary.DataTypeOctets, dictionary.EncryptionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, ok := dict.LookupByAttributeName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.id, attr.ID)
			assert.Equal(t, tt.dataType, attr.DataType)
			assert.Equal(t, tt.encryption, attr.Encryption)

			vendorID, ok := dict.LookupVendorIDByAttributeName(tt.name)
			require.True(t, ok)
			assert.Equal(t, uint32(MicrosoftVendorID), vendorID)
		})
	}
}

func TestDefinitionsAreUnique(t *testing.T) {
	ids := make(map[uint32]string)
	for _, attr := range StandardRFCAttributes {
		if prev, exists := ids[attr.ID]; exists {
			t.Errorf("standard ID %d used by %s and %s", attr.ID, prev, attr.Name)
		}
		ids[attr.ID] = attr.Name
	}

	ids = make(map[uint32]string)
	for _, attr := range MicrosoftVendorDefinition.Attributes {
		if prev, exists := ids[attr.ID]; exists {
			t.Errorf("Microsoft ID %d used by %s and %s", attr.ID, prev, attr.Name)
		}
		ids[attr.ID] = attr.Name
	}
}
