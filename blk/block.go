package blk

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

//Block is a single signed unit of data in a chain. It commits to its payload
//and to the hash of the block before it, and carries a signature that proves
//who authored that pair. Blocks are created by New or NewGenesis and are not
//meant to be changed afterwards.
type Block struct {

	//The hash of this block, computed over the predecessor hash and the data
	Hash Hash

	//The key material that comes with the block, determines if we can verify it
	Ownership Ownership

	//Signature over the predecessor hash and the data
	Signature [SigLen]byte

	//Data is the payload the block carries
	Data []byte
}

//New creates a block that holds data and links to prev. A fresh keypair is
//minted for every block, the resulting block is Ours.
func New(prev Hash, data []byte) (b *Block, err error) {
	return newBlock(rand.Reader, prev, data)
}

func newBlock(rndr io.Reader, prev Hash, data []byte) (b *Block, err error) {
	d := make([]byte, len(data))
	copy(d, data)

	h, sig, sk, err := derive(rndr, prev, d)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive block hash")
	}

	return &Block{
		Hash:      h,
		Ownership: Ours{SK: sk},
		Signature: sig,
		Data:      d,
	}, nil
}

//NewGenesis returns the genesis block: zero hash, no key, zero signature and
//no data. Every call returns an identical block.
func NewGenesis() *Block {
	return &Block{
		Hash:      NilHash,
		Ownership: Genesis{},
		Data:      []byte{},
	}
}

//Verify the block as a successor of the block with hash prev. It returns false
//if the data, the hash or the predecessor was tampered with. Verifying the
//genesis block is an error since it has no key to verify against.
func (b *Block) Verify(prev Hash) (ok bool, err error) {
	switch o := b.Ownership.(type) {
	case Theirs:
		return b.Hash.Verify(prev, b.Signature, b.Data, o.PK)
	case Ours:
		if len(o.SK) != ed25519.PrivateKeySize {
			return false, errors.Wrapf(ErrVerification, "private key is %d bytes", len(o.SK))
		}

		return b.Hash.Verify(prev, b.Signature, b.Data, o.SK.Public().(ed25519.PublicKey))
	case Genesis:
		return false, ErrGenesisHasNoKey
	default:
		return false, errors.Wrapf(ErrUnknownOwnership, "%T", o)
	}
}

//Public returns a copy of the block that only holds the public key, it is what
//anyone else ends up with after the block was sent to them
func (b *Block) Public() (pb *Block, err error) {
	pk, err := rawPublic(b.Ownership)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read public key")
	}

	pb = &Block{
		Hash:      b.Hash,
		Ownership: Theirs{PK: ed25519.PublicKey(pk)},
		Signature: b.Signature,
		Data:      make([]byte, len(b.Data)),
	}

	copy(pb.Data, b.Data)
	return
}

// String to a human readable short version of the block's identity
func (b *Block) String() string {
	return b.Hash.String()
}
