package blk

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

//ProtoVersion identifies the revision of the block wire format
const ProtoVersion uint8 = 1

// wireBlock is what a block looks like on the wire. Only the public key is
// written, private keys never leave the process that minted them.
type wireBlock struct {
	Version   uint8
	Hash      Hash
	Ownership []byte
	Signature [SigLen]byte
	Data      []byte
}

//MarshalBinary encodes the block in its wire form. The genesis block cannot
//be encoded since it has no key to write.
func (b *Block) MarshalBinary() (p []byte, err error) {
	pk, err := rawPublic(b.Ownership)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export ownership")
	}

	buf := bytes.NewBuffer(nil)
	if err = gob.NewEncoder(buf).Encode(&wireBlock{
		Version:   ProtoVersion,
		Hash:      b.Hash,
		Ownership: pk,
		Signature: b.Signature,
		Data:      b.Data,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to encode block")
	}

	return buf.Bytes(), nil
}

//UnmarshalBinary decodes a block from its wire form. Since only public keys
//travel, the decoded block is always Theirs, also when we minted it ourselves.
func (b *Block) UnmarshalBinary(p []byte) (err error) {
	wb := &wireBlock{}
	err = gob.NewDecoder(bytes.NewReader(p)).Decode(wb)
	if err != nil {
		return errors.Wrapf(ErrMalformedBlock, "gob: %v", err)
	}

	if wb.Version != ProtoVersion {
		return errors.Wrapf(ErrUnsupportedVersion, "got %d, want %d", wb.Version, ProtoVersion)
	}

	if len(wb.Ownership) != ed25519.PublicKeySize {
		return errors.Wrapf(ErrMalformedBlock, "public key is %d bytes", len(wb.Ownership))
	}

	b.Hash = wb.Hash
	b.Ownership = Theirs{PK: ed25519.PublicKey(wb.Ownership)}
	b.Signature = wb.Signature
	b.Data = wb.Data
	if b.Data == nil {
		b.Data = []byte{}
	}

	return nil
}
