package dictionary

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Dictionary provides fast lookup for RADIUS attributes.
// It is safe for concurrent reads after initialization is complete.
// All Add* methods acquire write locks and should be called during initialization only.
type Dictionary struct {
	mu sync.RWMutex

	standardByID map[uint32]*AttributeDefinition

	vendorByID map[uint32]*VendorDefinition

	// vendorID -> attrID -> attr
	vendorAttrByID map[uint32]map[uint32]*AttributeDefinition

	// Standard and vendor attributes share one namespace, enforced on Add*
	allAttrByName map[string]*AttributeDefinition

	// Reverse lookup: attribute name -> vendor ID (for vendor attributes only)
	attrNameToVendorID map[string]uint32
}

// New creates a new empty dictionary with fast lookup indices
func New() *Dictionary {
	return &Dictionary{
		standardByID:       make(map[uint32]*AttributeDefinition),
		vendorByID:         make(map[uint32]*VendorDefinition),
		vendorAttrByID:     make(map[uint32]map[uint32]*AttributeDefinition),
		allAttrByName:      make(map[string]*AttributeDefinition),
		attrNameToVendorID: make(map[string]uint32),
	}
}

// AddStandardAttributes adds standard RFC attributes to the dictionary.
// Returns an error if any attribute name conflicts with existing standard or vendor attributes,
// or an attribute ID is already defined. Nothing is added on error.
func (d *Dictionary) AddStandardAttributes(attrs []*AttributeDefinition) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkStandardAttributes(attrs); err != nil {
		return err
	}
	d.addStandardAttributes(attrs)
	return nil
}

// AddVendor adds a vendor and its attributes to the dictionary.
// A vendor already present under the same name is extended with the new attributes.
// Returns an error if the vendor ID is registered under another name, or any attribute
// name or vendor attribute ID is already defined. Nothing is added on error.
func (d *Dictionary) AddVendor(vendor *VendorDefinition) error {
	if vendor == nil {
		return fmt.Errorf("vendor definition is nil")
	}

	if vendor.ID == 0 || vendor.Name == "" {
		return fmt.Errorf("vendor must have non-zero ID and a name")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkVendor(vendor); err != nil {
		return err
	}
	d.addVendor(vendor)
	return nil
}

// Merge adds every standard attribute and vendor of other to d. All conflicts
// are checked before d is modified, so a failed merge leaves d unchanged.
func (d *Dictionary) Merge(other *Dictionary) error {
	if other == nil {
		return fmt.Errorf("dictionary is nil")
	}
	if other == d {
		return fmt.Errorf("cannot merge a dictionary into itself")
	}

	other.mu.RLock()
	defer other.mu.RUnlock()

	attrs := make([]*AttributeDefinition, 0, len(other.standardByID))
	for _, attr := range other.standardByID {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].ID < attrs[j].ID })

	vendors := make([]*VendorDefinition, 0, len(other.vendorByID))
	for _, vendor := range other.vendorByID {
		vendors = append(vendors, vendor)
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].ID < vendors[j].ID })

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkStandardAttributes(attrs); err != nil {
		return err
	}
	for _, vendor := range vendors {
		if err := d.checkVendor(vendor); err != nil {
			return err
		}
	}

	d.addStandardAttributes(attrs)
	for _, vendor := range vendors {
		d.addVendor(vendor)
	}
	return nil
}

// checkStandardAttributes must be called with d.mu held.
func (d *Dictionary) checkStandardAttributes(attrs []*AttributeDefinition) error {
	names := make(map[string]struct{}, len(attrs))
	ids := make(map[uint32]string, len(attrs))

	for _, attr := range attrs {
		if err := validateAttribute(attr); err != nil {
			return err
		}
		if attr.ID > 255 {
			return fmt.Errorf("attribute %q: standard attribute ID %d out of range", attr.Name, attr.ID)
		}
		if _, exists := d.allAttrByName[attr.Name]; exists {
			return fmt.Errorf("duplicate attribute name %q: already exists", attr.Name)
		}
		if _, exists := names[attr.Name]; exists {
			return fmt.Errorf("duplicate attribute name %q: already exists", attr.Name)
		}
		if existing, exists := d.standardByID[attr.ID]; exists {
			return fmt.Errorf("duplicate attribute ID %d: already defined as %q", attr.ID, existing.Name)
		}
		if name, exists := ids[attr.ID]; exists {
			return fmt.Errorf("duplicate attribute ID %d: already defined as %q", attr.ID, name)
		}
		names[attr.Name] = struct{}{}
		ids[attr.ID] = attr.Name
	}
	return nil
}

func (d *Dictionary) addStandardAttributes(attrs []*AttributeDefinition) {
	for _, attr := range attrs {
		d.standardByID[attr.ID] = attr
		d.allAttrByName[attr.Name] = attr
	}
}

// checkVendor must be called with d.mu held.
func (d *Dictionary) checkVendor(vendor *VendorDefinition) error {
	if existing, exists := d.vendorByID[vendor.ID]; exists && existing.Name != vendor.Name {
		return fmt.Errorf("vendor conflict: vendor ID %d already exists as %q, not %q", vendor.ID, existing.Name, vendor.Name)
	}

	known := d.vendorAttrByID[vendor.ID]
	names := make(map[string]struct{}, len(vendor.Attributes))
	ids := make(map[uint32]string, len(vendor.Attributes))

	for _, attr := range vendor.Attributes {
		if err := validateAttribute(attr); err != nil {
			return fmt.Errorf("vendor %s: %w", vendor.Name, err)
		}
		if attr.ID > 255 {
			return fmt.Errorf("vendor %s: attribute %q ID %d out of range", vendor.Name, attr.Name, attr.ID)
		}
		if _, exists := d.allAttrByName[attr.Name]; exists {
			return fmt.Errorf("duplicate attribute name %q: already exists", attr.Name)
		}
		if _, exists := names[attr.Name]; exists {
			return fmt.Errorf("vendor %s: duplicate attribute name %q", vendor.Name, attr.Name)
		}
		if existing, exists := known[attr.ID]; exists {
			return fmt.Errorf("vendor %s: duplicate attribute ID %d: already defined as %q", vendor.Name, attr.ID, existing.Name)
		}
		if name, exists := ids[attr.ID]; exists {
			return fmt.Errorf("vendor %s: duplicate attribute ID %d: already defined as %q", vendor.Name, attr.ID, name)
		}
		names[attr.Name] = struct{}{}
		ids[attr.ID] = attr.Name
	}
	return nil
}

// addVendor registers vendor, or extends the vendor already registered under
// its ID. Registered definitions are replaced, never modified in place.
func (d *Dictionary) addVendor(vendor *VendorDefinition) {
	if existing, exists := d.vendorByID[vendor.ID]; exists {
		merged := *existing
		merged.Attributes = append(slices.Clone(existing.Attributes), vendor.Attributes...)
		if merged.Description == "" {
			merged.Description = vendor.Description
		}
		d.vendorByID[vendor.ID] = &merged
	} else {
		d.vendorByID[vendor.ID] = vendor
		d.vendorAttrByID[vendor.ID] = make(map[uint32]*AttributeDefinition, len(vendor.Attributes))
	}

	for _, attr := range vendor.Attributes {
		d.vendorAttrByID[vendor.ID][attr.ID] = attr
		d.allAttrByName[attr.Name] = attr
		d.attrNameToVendorID[attr.Name] = vendor.ID
	}
}

func validateAttribute(attr *AttributeDefinition) error {
	if attr == nil {
		return fmt.Errorf("attribute definition is nil")
	}
	if attr.Name == "" {
		return fmt.Errorf("attribute %d has no name", attr.ID)
	}
	if !attr.DataType.IsValid() {
		return fmt.Errorf("attribute %q has unknown data type %q", attr.Name, attr.DataType)
	}
	return nil
}

// LookupStandardByID finds a standard attribute by ID
func (d *Dictionary) LookupStandardByID(id uint32) (*AttributeDefinition, bool) {
	d.mu.RLock()
	attr, exists := d.standardByID[id]
	d.mu.RUnlock()
	return attr, exists
}

// LookupVendorByID finds a vendor by ID
func (d *Dictionary) LookupVendorByID(vendorID uint32) (*VendorDefinition, bool) {
	d.mu.RLock()
	vendor, exists := d.vendorByID[vendorID]
	d.mu.RUnlock()
	return vendor, exists
}

// LookupVendorAttributeByID finds a vendor attribute by vendor ID and attribute ID
func (d *Dictionary) LookupVendorAttributeByID(vendorID, attrID uint32) (*AttributeDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if attrs, ok := d.vendorAttrByID[vendorID]; ok {
		if attr, ok := attrs[attrID]; ok {
			return attr, true
		}
	}
	return nil, false
}

// LookupByAttributeName finds an attribute by name (works for both standard and vendor attributes)
func (d *Dictionary) LookupByAttributeName(name string) (*AttributeDefinition, bool) {
	d.mu.RLock()
	attr, exists := d.allAttrByName[name]
	d.mu.RUnlock()
	return attr, exists
}

// LookupVendorIDByAttributeName finds the vendor ID for a vendor attribute by its name.
// Returns (vendorID, true) if the attribute is a vendor attribute, or (0, false) if not found or is a standard attribute.
func (d *Dictionary) LookupVendorIDByAttributeName(name string) (uint32, bool) {
	d.mu.RLock()
	vendorID, exists := d.attrNameToVendorID[name]
	d.mu.RUnlock()
	return vendorID, exists
}

// GetAllVendors returns all vendors in the dictionary
func (d *Dictionary) GetAllVendors() []*VendorDefinition {
	d.mu.RLock()
	defer d.mu.RUnlock()

	vendors := make([]*VendorDefinition, 0, len(d.vendorByID))
	for _, vendor := range d.vendorByID {
		vendors = append(vendors, vendor)
	}
	return vendors
}
