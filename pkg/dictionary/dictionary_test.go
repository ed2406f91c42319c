package dictionary

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVendor() *VendorDefinition {
	return &VendorDefinition{
		ID:   311,
		Name: "Microsoft",
		Attributes: []*AttributeDefinition{
			{ID: 2, Name: "MS-CHAP-Error", DataType: DataTypeString},
			{ID: 26, Name: "MS-CHAP2-Success", DataType: DataTypeOctets},
		},
	}
}

func TestNew(t *testing.T) {
	dict := New()
	require.NotNil(t, dict)
	assert.Empty(t, dict.GetAllVendors())

	_, exists := dict.LookupByAttributeName("User-Name")
	assert.False(t, exists)
}

func TestAddStandardAttributes(t *testing.T) {
	tests := []struct {
		name    string
		attrs   []*AttributeDefinition
		wantErr string
	}{
		{
			name: "valid attributes",
			attrs: []*AttributeDefinition{
				{ID: 1, Name: "User-Name", DataType: DataTypeString},
				{ID: 18, Name: "Reply-Message", DataType: DataTypeString},
			},
		},
		{
			name:    "nil attribute",
			attrs:   []*AttributeDefinition{nil},
			wantErr: "nil",
		},
		{
			name:    "empty name",
			attrs:   []*AttributeDefinition{{ID: 1, DataType: DataTypeString}},
			wantErr: "no name",
		},
		{
			name:    "unknown data type",
			attrs:   []*AttributeDefinition{{ID: 1, Name: "User-Name", DataType: "blob"}},
			wantErr: "unknown data type",
		},
		{
			name:    "ID out of range",
			attrs:   []*AttributeDefinition{{ID: 256, Name: "Too-Big", DataType: DataTypeOctets}},
			wantErr: "out of range",
		},
		{
			name: "duplicate within batch",
			attrs: []*AttributeDefinition{
				{ID: 1, Name: "User-Name", DataType: DataTypeString},
				{ID: 2, Name: "User-Name", DataType: DataTypeString},
			},
			wantErr: "duplicate attribute name",
		},
		{
			name: "duplicate ID within batch",
			attrs: []*AttributeDefinition{
				{ID: 1, Name: "User-Name", DataType: DataTypeString},
				{ID: 1, Name: "Login-Name", DataType: DataTypeString},
			},
			wantErr: "duplicate attribute ID 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := New()
			err := dict.AddStandardAttributes(tt.attrs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			for _, attr := range tt.attrs {
				got, exists := dict.LookupStandardByID(attr.ID)
				require.True(t, exists)
				assert.Equal(t, attr, got)

				got, exists = dict.LookupByAttributeName(attr.Name)
				require.True(t, exists)
				assert.Equal(t, attr, got)
			}
		})
	}
}

func TestAddVendor(t *testing.T) {
	t.Run("valid vendor", func(t *testing.T) {
		dict := New()
		vendor := testVendor()
		require.NoError(t, dict.AddVendor(vendor))

		got, exists := dict.LookupVendorByID(311)
		require.True(t, exists)
		assert.Equal(t, vendor, got)

		attr, exists := dict.LookupVendorAttributeByID(311, 26)
		require.True(t, exists)
		assert.Equal(t, "MS-CHAP2-Success", attr.Name)

		vendorID, exists := dict.LookupVendorIDByAttributeName("MS-CHAP-Error")
		require.True(t, exists)
		assert.Equal(t, uint32(311), vendorID)

		assert.Len(t, dict.GetAllVendors(), 1)
	})

	t.Run("nil vendor", func(t *testing.T) {
		assert.Error(t, New().AddVendor(nil))
	})

	t.Run("zero ID", func(t *testing.T) {
		assert.Error(t, New().AddVendor(&VendorDefinition{Name: "Invalid"}))
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Error(t, New().AddVendor(&VendorDefinition{ID: 10}))
	})

	t.Run("duplicate vendor ID", func(t *testing.T) {
		dict := New()
		require.NoError(t, dict.AddVendor(&VendorDefinition{ID: 100, Name: "Vendor1"}))

		err := dict.AddVendor(&VendorDefinition{ID: 100, Name: "Vendor2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("extends vendor with the same name", func(t *testing.T) {
		dict := New()
		builtin := testVendor()
		require.NoError(t, dict.AddVendor(builtin))

		require.NoError(t, dict.AddVendor(&VendorDefinition{
			ID:   311,
			Name: "Microsoft",
			Attributes: []*AttributeDefinition{
				{ID: 16, Name: "MS-MPPE-Send-Key", DataType: DataTypeOctets, Encryption: EncryptionSalt},
			},
		}))

		vendor, exists := dict.LookupVendorByID(311)
		require.True(t, exists)
		assert.Len(t, vendor.Attributes, 3)
		assert.Len(t, builtin.Attributes, 2)

		vendorID, exists := dict.LookupVendorIDByAttributeName("MS-MPPE-Send-Key")
		require.True(t, exists)
		assert.Equal(t, uint32(311), vendorID)
	})

	t.Run("duplicate attributes", func(t *testing.T) {
		tests := []struct {
			name    string
			attrs   []*AttributeDefinition
			wantErr string
		}{
			{
				name: "name within vendor",
				attrs: []*AttributeDefinition{
					{ID: 1, Name: "Site-Group", DataType: DataTypeString},
					{ID: 2, Name: "Site-Group", DataType: DataTypeString},
				},
				wantErr: "duplicate attribute name",
			},
			{
				name: "ID within vendor",
				attrs: []*AttributeDefinition{
					{ID: 1, Name: "Site-Group", DataType: DataTypeString},
					{ID: 1, Name: "Site-Rate", DataType: DataTypeString},
				},
				wantErr: "duplicate attribute ID 1",
			},
			{
				name:    "ID already registered",
				attrs:   []*AttributeDefinition{{ID: 2, Name: "Site-Error", DataType: DataTypeString}},
				wantErr: "duplicate attribute ID 2",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				dict := New()
				require.NoError(t, dict.AddVendor(testVendor()))

				err := dict.AddVendor(&VendorDefinition{ID: 311, Name: "Microsoft", Attributes: tt.attrs})
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				vendor, _ := dict.LookupVendorByID(311)
				assert.Len(t, vendor.Attributes, 2)
				for _, attr := range tt.attrs {
					_, exists := dict.LookupByAttributeName(attr.Name)
					assert.False(t, exists, attr.Name)
				}
			})
		}
	})

	t.Run("name conflicts with standard attribute", func(t *testing.T) {
		dict := New()
		require.NoError(t, dict.AddStandardAttributes([]*AttributeDefinition{
			{ID: 18, Name: "MS-CHAP-Error", DataType: DataTypeString},
		}))

		err := dict.AddVendor(testVendor())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate attribute name")

		_, exists := dict.LookupVendorByID(311)
		assert.False(t, exists)
	})
}

func TestAddStandardAttributesDuplicateID(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 1, Name: "User-Name", DataType: DataTypeString},
	}))

	err := dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 18, Name: "Reply-Message", DataType: DataTypeString},
		{ID: 1, Name: "Login-Name", DataType: DataTypeString},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate attribute ID 1: already defined as "User-Name"`)

	attr, exists := dict.LookupStandardByID(1)
	require.True(t, exists)
	assert.Equal(t, "User-Name", attr.Name)

	_, exists = dict.LookupByAttributeName("Login-Name")
	assert.False(t, exists)
	_, exists = dict.LookupByAttributeName("Reply-Message")
	assert.False(t, exists)
}

func TestMerge(t *testing.T) {
	t.Run("adds standard attributes and extends vendors", func(t *testing.T) {
		dict := New()
		require.NoError(t, dict.AddVendor(testVendor()))

		other := New()
		require.NoError(t, other.AddStandardAttributes([]*AttributeDefinition{
			{ID: 18, Name: "Reply-Message", DataType: DataTypeString},
		}))
		require.NoError(t, other.AddVendor(&VendorDefinition{
			ID:         311,
			Name:       "Microsoft",
			Attributes: []*AttributeDefinition{{ID: 17, Name: "MS-MPPE-Recv-Key", DataType: DataTypeOctets}},
		}))
		require.NoError(t, other.AddVendor(&VendorDefinition{
			ID:         14988,
			Name:       "Mikrotik",
			Attributes: []*AttributeDefinition{{ID: 3, Name: "Mikrotik-Group", DataType: DataTypeString}},
		}))

		require.NoError(t, dict.Merge(other))

		_, exists := dict.LookupStandardByID(18)
		assert.True(t, exists)
		_, exists = dict.LookupVendorAttributeByID(311, 17)
		assert.True(t, exists)
		_, exists = dict.LookupVendorAttributeByID(311, 26)
		assert.True(t, exists)
		_, exists = dict.LookupVendorAttributeByID(14988, 3)
		assert.True(t, exists)
		assert.Len(t, dict.GetAllVendors(), 2)
	})

	t.Run("conflict leaves dictionary unchanged", func(t *testing.T) {
		dict := New()
		require.NoError(t, dict.AddVendor(testVendor()))

		other := New()
		require.NoError(t, other.AddStandardAttributes([]*AttributeDefinition{
			{ID: 18, Name: "Reply-Message", DataType: DataTypeString},
		}))
		require.NoError(t, other.AddVendor(&VendorDefinition{
			ID:         311,
			Name:       "Microsoft",
			Attributes: []*AttributeDefinition{{ID: 2, Name: "MS-CHAP-Error-Copy", DataType: DataTypeString}},
		}))

		err := dict.Merge(other)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate attribute ID 2")

		_, exists := dict.LookupStandardByID(18)
		assert.False(t, exists)
		_, exists = dict.LookupByAttributeName("MS-CHAP-Error-Copy")
		assert.False(t, exists)
	})

	t.Run("invalid argument", func(t *testing.T) {
		dict := New()
		assert.Error(t, dict.Merge(nil))
		assert.Error(t, dict.Merge(dict))
	})
}

func TestLookupMissing(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	_, exists := dict.LookupStandardByID(1)
	assert.False(t, exists)

	_, exists = dict.LookupVendorAttributeByID(311, 99)
	assert.False(t, exists)

	_, exists = dict.LookupVendorAttributeByID(9, 1)
	assert.False(t, exists)

	_, exists = dict.LookupVendorIDByAttributeName("User-Name")
	assert.False(t, exists)
}

func TestConcurrentLookups(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddVendor(testVendor()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				attr, exists := dict.LookupByAttributeName("MS-CHAP2-Success")
				assert.True(t, exists)
				assert.Equal(t, DataTypeOctets, attr.DataType)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkLookupByAttributeName(b *testing.B) {
	dict := New()
	attrs := make([]*AttributeDefinition, 0, 200)
	for i := 1; i <= 200; i++ {
		attrs = append(attrs, &AttributeDefinition{ID: uint32(i), Name: fmt.Sprintf("Attr-%d", i), DataType: DataTypeOctets})
	}
	if err := dict.AddStandardAttributes(attrs); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dict.LookupByAttributeName("Attr-150")
	}
}
