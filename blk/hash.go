package blk

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

//HashLen is the length of a block hash
const HashLen = sha256.Size

//SigLen is the length of a block signature
const SigLen = ed25519.SignatureSize

//NilHash is the hash of the genesis block, it anchors every chain
var NilHash = Hash{}

//Hash identifies a block by its payload and its predecessor
type Hash [HashLen]byte

//Bytes returns the underlying bytes as a slice
func (h Hash) Bytes() []byte { return h[:] }

//Hex returns the full hex encoding of the hash
func (h Hash) Hex() string { return hex.EncodeToString(h[:]) }

func (h Hash) String() string {
	return fmt.Sprintf("%.4x", h[:])
}

//ParseHash decodes a hash from its full hex encoding
func ParseHash(s string) (h Hash, err error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, errors.Wrap(err, "failed to decode hash hex")
	}

	if len(b) != HashLen {
		return h, errors.Errorf("hash must be %d bytes, got %d", HashLen, len(b))
	}

	copy(h[:], b)
	return
}

// message binds the payload to its predecessor, it is both hashed and signed
func message(prev Hash, data []byte) []byte {
	return bytes.Join([][]byte{
		prev[:],
		data,
	}, nil)
}

//Sum returns the hash of data when it is placed after prev
func Sum(prev Hash, data []byte) Hash {
	return Hash(sha256.Sum256(message(prev, data)))
}

//Derive mints a brand new keypair and uses it to bind data to prev. It returns
//the hash, the signature and the private key that produced it. Keys are never
//reused: each call draws fresh entropy.
func Derive(prev Hash, data []byte) (h Hash, sig [SigLen]byte, sk ed25519.PrivateKey, err error) {
	return derive(rand.Reader, prev, data)
}

func derive(rndr io.Reader, prev Hash, data []byte) (h Hash, sig [SigLen]byte, sk ed25519.PrivateKey, err error) {
	_, sk, err = ed25519.GenerateKey(rndr)
	if err != nil {
		return h, sig, nil, errors.Wrapf(ErrKeyGeneration, "ed25519: %v", err)
	}

	msg := message(prev, data)
	sig, err = sign(sk, msg)
	if err != nil {
		return h, sig, nil, err
	}

	return Hash(sha256.Sum256(msg)), sig, sk, nil
}

func sign(sk ed25519.PrivateKey, msg []byte) (sig [SigLen]byte, err error) {
	if len(sk) != ed25519.PrivateKeySize {
		return sig, errors.Wrapf(ErrSignatureComputation, "private key is %d bytes", len(sk))
	}

	copy(sig[:], ed25519.Sign(sk, msg))
	return
}

//Verify checks that h is the hash of data placed after prev and that sig was
//made over the same two by the owner of pk. A mismatch is reported as false,
//only unusable key material results in an error.
func (h Hash) Verify(prev Hash, sig [SigLen]byte, data []byte, pk ed25519.PublicKey) (ok bool, err error) {
	if len(pk) != ed25519.PublicKeySize {
		return false, errors.Wrapf(ErrVerification, "public key is %d bytes", len(pk))
	}

	msg := message(prev, data)
	if Hash(sha256.Sum256(msg)) != h {
		return false, nil
	}

	return ed25519.Verify(pk, msg, sig[:]), nil
}
