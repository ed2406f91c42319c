package mschap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureMessage(t *testing.T) {
	challenge := mustArray16("5B5D7C7D7B3F2F3E3C2C602132262628")

	tests := []struct {
		name     string
		code     uint32
		retry    bool
		message  string
		expected string
	}{
		{
			name:     "authentication failure with retry",
			code:     ErrorAuthenticationFailed,
			retry:    true,
			message:  "Authentication failed",
			expected: "E=691 R=1 C=5B5D7C7D7B3F2F3E3C2C602132262628 V=3 M=Authentication failed",
		},
		{
			name:     "account disabled without message",
			code:     ErrorAccountDisabled,
			expected: "E=647 R=0 C=5B5D7C7D7B3F2F3E3C2C602132262628 V=3",
		},
		{
			name:     "password expired",
			code:     ErrorPasswordExpired,
			message:  "expired",
			expected: "E=648 R=0 C=5B5D7C7D7B3F2F3E3C2C602132262628 V=3 M=expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FailureMessage(tt.code, tt.retry, challenge, tt.message))
		})
	}
}

func TestFailureMessageUppercaseChallenge(t *testing.T) {
	var challenge [ChallengeLength]byte
	for i := range challenge {
		challenge[i] = 0xab
	}

	assert.Contains(t, FailureMessage(ErrorAuthenticationFailed, false, challenge, ""),
		"C=ABABABABABABABABABABABABABABABAB ")
}
