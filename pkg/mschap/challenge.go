package mschap

import (
	"crypto/des"
	"crypto/sha1"
)

// ChallengeHash mixes the peer challenge, the authenticator challenge and the
// user name into the 8-byte challenge of RFC 2759 Section 8.2:
// the leading 8 bytes of SHA1(peer || authenticator || userName).
//
// The order of the inputs is part of the wire contract. userName is used as
// raw bytes without any re-encoding.
func ChallengeHash(peerChallenge, authChallenge [ChallengeLength]byte, userName []byte) [ChallengeHashLength]byte {
	hash := sha1.New()
	hash.Write(peerChallenge[:])
	hash.Write(authChallenge[:])
	hash.Write(userName)

	var out [ChallengeHashLength]byte
	copy(out[:], hash.Sum(nil))

	return out
}

// ChallengeResponse encrypts the challenge with three DES keys cut from the
// zero-padded NT hash (RFC 2759 Section 8.5).
func ChallengeResponse(challenge [ChallengeHashLength]byte, ntHash [NTHashLength]byte) [NTResponseLength]byte {
	var padded [21]byte
	copy(padded[:], ntHash[:])

	var out [NTResponseLength]byte
	for i := 0; i < 3; i++ {
		desEncrypt(out[i*8:(i+1)*8], challenge[:], padded[i*7:(i+1)*7])
	}

	return out
}

// GenerateNTResponse computes the 24-byte NT-Response a peer sends for the
// given challenges, user name and password (RFC 2759 Section 8.1).
func GenerateNTResponse(authChallenge, peerChallenge [ChallengeLength]byte, userName []byte, password string) ([NTResponseLength]byte, error) {
	ntHash, err := NTHash(password)
	if err != nil {
		return [NTResponseLength]byte{}, err
	}

	challenge := ChallengeHash(peerChallenge, authChallenge, userName)

	return ChallengeResponse(challenge, ntHash), nil
}

// desEncrypt encrypts one block with a 56-bit key spread over 8 bytes
// (RFC 2759 Section 8.6). The low bit of each key byte is the parity bit,
// which the cipher ignores, so it is not computed.
func desEncrypt(dst, clear, key7 []byte) {
	var key [8]byte
	key[0] = key7[0]
	key[1] = key7[0]<<7 | key7[1]>>1
	key[2] = key7[1]<<6 | key7[2]>>2
	key[3] = key7[2]<<5 | key7[3]>>3
	key[4] = key7[3]<<4 | key7[4]>>4
	key[5] = key7[4]<<3 | key7[5]>>5
	key[6] = key7[5]<<2 | key7[6]>>6
	key[7] = key7[6] << 1

	block, err := des.NewCipher(key[:])
	if err != nil {
		// des.NewCipher only fails on a key that is not 8 bytes long
		panic(err)
	}

	block.Encrypt(dst, clear)
}
