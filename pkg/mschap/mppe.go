package mschap

import (
	"crypto/sha1"
)

// MPPE key derivation for MS-CHAPv2, RFC 3079 Section 3.4

// MasterKeyLength is the length of the MPPE master key.
const MasterKeyLength = 16

var (
	masterKeyMagic = []byte("This is the MPPE Master Key")

	// Magic3 and Magic2 of GetAsymmetricStartKey
	sendKeyMagic = []byte("On the client side, this is the receive key; on the server side, it is the send key.")
	recvKeyMagic = []byte("On the client side, this is the send key; on the server side, it is the receive key.")

	shsPad1 = [40]byte{}
	shsPad2 = [40]byte{
		0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2,
		0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2,
		0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2,
		0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2, 0xf2,
	}
)

// MasterKey derives the MPPE master key from the password hash hash and the
// peer's NT-Response (GetMasterKey).
func MasterKey(ntHashHash [NTHashLength]byte, ntResponse [NTResponseLength]byte) [MasterKeyLength]byte {
	hash := sha1.New()
	hash.Write(ntHashHash[:])
	hash.Write(ntResponse[:])
	hash.Write(masterKeyMagic)

	var out [MasterKeyLength]byte
	copy(out[:], hash.Sum(nil))

	return out
}

// AsymmetricStartKey derives a send or receive start key of keyLength bytes
// (8 or 16) from the master key (GetAsymmetricStartKey). isSend selects the
// send key of the side named by isServer.
func AsymmetricStartKey(masterKey [MasterKeyLength]byte, keyLength int, isSend, isServer bool) []byte {
	if keyLength <= 0 || keyLength > MasterKeyLength {
		keyLength = MasterKeyLength
	}

	magic := recvKeyMagic
	if isSend == isServer {
		magic = sendKeyMagic
	}

	hash := sha1.New()
	hash.Write(masterKey[:])
	hash.Write(shsPad1[:])
	hash.Write(magic)
	hash.Write(shsPad2[:])

	return hash.Sum(nil)[:keyLength]
}

// ServerKeys returns the 16-byte send and receive start keys of the
// authenticator for one MS-CHAPv2 exchange.
func ServerKeys(ntHashHash [NTHashLength]byte, ntResponse [NTResponseLength]byte) (sendKey, recvKey []byte) {
	master := MasterKey(ntHashHash, ntResponse)

	sendKey = AsymmetricStartKey(master, MasterKeyLength, true, true)
	recvKey = AsymmetricStartKey(master, MasterKeyLength, false, true)

	return sendKey, recvKey
}
