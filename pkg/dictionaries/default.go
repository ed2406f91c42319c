package dictionaries

import "github.com/vitalvas/gomschap/pkg/dictionary"

// NewDefault creates a dictionary pre-loaded with the standard RFC attributes
// and the Microsoft vendor dictionary needed for MS-CHAP replies.
//
// Returns an error if there are duplicate attribute names, which would indicate a programming error
// in the dictionary definitions.
//
// Example usage:
//
//	dict, err := dictionaries.NewDefault()
//	if err != nil {
//		return err
//	}
//	reply := packet.NewWithDictionary(packet.CodeAccessAccept, req.Identifier, dict)
func NewDefault() (*dictionary.Dictionary, error) {
	dict := dictionary.New()

	if err := dict.AddStandardAttributes(StandardRFCAttributes); err != nil {
		return nil, err
	}

	if err := dict.AddVendor(MicrosoftVendorDefinition); err != nil {
		return nil, err
	}

	return dict, nil
}
