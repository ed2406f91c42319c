package crypto

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
)

// Salt-encrypted key attributes (MS-MPPE-Send-Key, MS-MPPE-Recv-Key),
// RFC 2548 Section 2.4.2

const (
	// SaltLength is the length of the salt prefix of an encrypted key attribute
	SaltLength = 2
	// MaxSalts is the number of distinct salts NewSalts can return for one packet
	MaxSalts = 16
)

var (
	// ErrInvalidAuthenticatorLength indicates an invalid authenticator length
	ErrInvalidAuthenticatorLength = errors.New("invalid authenticator length")
	// ErrInvalidSalt indicates a salt without the most significant bit set
	ErrInvalidSalt = errors.New("salt must have the most significant bit set")
	// ErrKeyTooLong indicates a key that does not fit the one-byte length prefix
	ErrKeyTooLong = errors.New("key too long")
	// ErrMalformedKeyAttribute indicates ciphertext that cannot be decrypted
	ErrMalformedKeyAttribute = errors.New("malformed encrypted key attribute")
	// ErrTooManySalts indicates a request for more salts than one packet can carry uniquely
	ErrTooManySalts = errors.New("too many salts requested")
)

// NewSalt returns a random salt with the most significant bit set
func NewSalt() ([SaltLength]byte, error) {
	var salt [SaltLength]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return salt, fmt.Errorf("failed to generate salt: %w", err)
	}
	salt[0] |= 0x80
	return salt, nil
}

// NewSalts returns n salts for the key attributes of a single packet. The
// salts share one random draw and carry their index in bits 3-6 of the first
// octet, so no two of them are equal.
func NewSalts(n int) ([][SaltLength]byte, error) {
	if n < 0 || n > MaxSalts {
		return nil, fmt.Errorf("%w: %d, max %d", ErrTooManySalts, n, MaxSalts)
	}

	base, err := NewSalt()
	if err != nil {
		return nil, err
	}

	salts := make([][SaltLength]byte, n)
	for i := range salts {
		salts[i] = base
		salts[i][0] = 0x80 | byte(i)<<3 | base[0]&0x07
	}
	return salts, nil
}

// EncryptKeyAttribute encrypts key for a salt-encrypted attribute. The result
// is Salt || C(1) || ... || C(i):
//
//	P = len(key) || key || zero padding to a multiple of 16
//	b(1) = MD5(Secret + Request-Authenticator + Salt)   c(1) = p(1) xor b(1)
//	b(i) = MD5(Secret + c(i-1))                          c(i) = p(i) xor b(i)
func EncryptKeyAttribute(secret []byte, requestAuth Authenticator, salt [SaltLength]byte, key []byte) ([]byte, error) {
	if salt[0]&0x80 == 0 {
		return nil, ErrInvalidSalt
	}

	if len(key) > 255 {
		return nil, fmt.Errorf("%w: %d bytes", ErrKeyTooLong, len(key))
	}

	plainLen := (1 + len(key) + md5.Size - 1) / md5.Size * md5.Size
	plain := make([]byte, plainLen)
	plain[0] = byte(len(key))
	copy(plain[1:], key)

	out := make([]byte, SaltLength+plainLen)
	copy(out, salt[:])

	cipher := out[SaltLength:]
	prev := append(requestAuth[:], salt[:]...)

	for i := 0; i < plainLen; i += md5.Size {
		hash := md5.New()
		hash.Write(secret)
		hash.Write(prev)
		b := hash.Sum(nil)

		subtle.XORBytes(cipher[i:i+md5.Size], plain[i:i+md5.Size], b)
		prev = cipher[i : i+md5.Size]
	}

	return out, nil
}

// DecryptKeyAttribute reverses EncryptKeyAttribute and returns the key
func DecryptKeyAttribute(secret []byte, requestAuth Authenticator, value []byte) ([]byte, error) {
	if len(value) < SaltLength+md5.Size || (len(value)-SaltLength)%md5.Size != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrMalformedKeyAttribute, len(value))
	}

	if value[0]&0x80 == 0 {
		return nil, ErrInvalidSalt
	}

	cipher := value[SaltLength:]
	plain := make([]byte, len(cipher))
	prev := append(requestAuth[:], value[:SaltLength]...)

	for i := 0; i < len(cipher); i += md5.Size {
		hash := md5.New()
		hash.Write(secret)
		hash.Write(prev)
		b := hash.Sum(nil)

		subtle.XORBytes(plain[i:i+md5.Size], cipher[i:i+md5.Size], b)
		prev = cipher[i : i+md5.Size]
	}

	keyLen := int(plain[0])
	if keyLen > len(plain)-1 {
		return nil, fmt.Errorf("%w: key length %d exceeds payload", ErrMalformedKeyAttribute, keyLen)
	}

	return plain[1 : 1+keyLen], nil
}
