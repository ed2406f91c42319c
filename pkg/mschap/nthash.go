package mschap

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/md4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf16Buffer holds the UTF-16LE form of a password in fixed storage.
// encode fails instead of growing when the output would not fit.
type utf16Buffer struct {
	data [MaxEncodedPasswordLength]byte
	n    int
}

func (b *utf16Buffer) encode(s string) error {
	b.reset()

	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: password is not valid UTF-8", ErrEncoding)
	}

	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()

	n, _, err := enc.Transform(b.data[:], []byte(s), true)
	if err != nil {
		b.reset()
		if errors.Is(err, transform.ErrShortDst) {
			return fmt.Errorf("%w: encoded password exceeds %d bytes", ErrEncoding, MaxEncodedPasswordLength)
		}
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	b.n = n
	return nil
}

func (b *utf16Buffer) bytes() []byte {
	return b.data[:b.n]
}

// reset wipes the buffer so password material does not outlive the call.
func (b *utf16Buffer) reset() {
	clear(b.data[:])
	b.n = 0
}

// NTHash converts a cleartext password into its 16-byte NT password hash,
// MD4 over the UTF-16LE encoding of the password (RFC 2759 Section 8.3).
// On failure the returned hash is all zeros and the error wraps ErrEncoding.
func NTHash(password string) ([NTHashLength]byte, error) {
	var out [NTHashLength]byte

	var buf utf16Buffer
	defer buf.reset()

	if err := buf.encode(password); err != nil {
		return out, err
	}

	hash := md4.New()
	hash.Write(buf.bytes())
	copy(out[:], hash.Sum(nil))

	return out, nil
}

// HashNTHash returns MD4 of an NT hash (RFC 2759 Section 8.4). Servers store
// or derive this "hash hash" to build the authenticator response.
func HashNTHash(ntHash [NTHashLength]byte) [NTHashLength]byte {
	var out [NTHashLength]byte

	hash := md4.New()
	hash.Write(ntHash[:])
	copy(out[:], hash.Sum(nil))

	return out
}
