package mschap

import (
	"fmt"
	"strings"
)

// Failure error codes carried in the "E=" field, RFC 2759 Section 6
const (
	ErrorRestrictedLogonHours uint32 = 646
	ErrorAccountDisabled      uint32 = 647
	ErrorPasswordExpired      uint32 = 648
	ErrorNoDialinPermission   uint32 = 649
	ErrorAuthenticationFailed uint32 = 691
	ErrorChangingPassword     uint32 = 709
)

// FailureVersion is the "V=" value advertised by MS-CHAPv2 authenticators.
const FailureVersion = 3

// FailureMessage formats the failure packet text of RFC 2759 Section 6:
//
//	E=eeeeeeeeee R=r C=cccccccccccccccccccccccccccccccc V=vvvvvvvvvv M=<msg>
//
// challenge is the new authenticator challenge offered for a retry. The "M="
// field is omitted when message is empty.
func FailureMessage(code uint32, retry bool, challenge [ChallengeLength]byte, message string) string {
	r := 0
	if retry {
		r = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "E=%d R=%d C=%X V=%d", code, r, challenge[:], FailureVersion)

	if message != "" {
		sb.WriteString(" M=")
		sb.WriteString(message)
	}

	return sb.String()
}
