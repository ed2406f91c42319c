package packet

import "fmt"

// Code represents a RADIUS packet code as defined in RFC 2865
type Code uint8

// RADIUS packet codes as defined in RFC 2865 and RFC 2866
const (
	// Access-Request packets (RFC 2865)
	CodeAccessRequest Code = 1
	// Access-Accept packets (RFC 2865)
	CodeAccessAccept Code = 2
	// Access-Reject packets (RFC 2865)
	CodeAccessReject Code = 3
	// Accounting-Request packets (RFC 2866)
	CodeAccountingRequest Code = 4
	// Accounting-Response packets (RFC 2866)
	CodeAccountingResponse Code = 5
	// Access-Challenge packets (RFC 2865)
	CodeAccessChallenge Code = 11
)

// String returns the string representation of the packet code
func (c Code) String() string {
	switch c {
	case CodeAccessRequest:
		return "Access-Request"
	case CodeAccessAccept:
		return "Access-Accept"
	case CodeAccessReject:
		return "Access-Reject"
	case CodeAccountingRequest:
		return "Accounting-Request"
	case CodeAccountingResponse:
		return "Accounting-Response"
	case CodeAccessChallenge:
		return "Access-Challenge"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// IsValid checks if the packet code is valid
func (c Code) IsValid() bool {
	switch c {
	case CodeAccessRequest, CodeAccessAccept, CodeAccessReject,
		CodeAccountingRequest, CodeAccountingResponse, CodeAccessChallenge:
		return true
	default:
		return false
	}
}

// IsResponse returns true if the code represents a response packet
func (c Code) IsResponse() bool {
	switch c {
	case CodeAccessAccept, CodeAccessReject, CodeAccessChallenge, CodeAccountingResponse:
		return true
	default:
		return false
	}
}
