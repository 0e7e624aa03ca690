package blk

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

//Ownership describes the key material that comes with a block. It is always
//one of Genesis, Theirs or Ours and never changes after the block is made.
type Ownership interface {

	//RawPublic exports the raw public key bytes, it fails for Genesis
	RawPublic() ([]byte, error)

	ownership()
}

//Genesis is owned by nobody, it marks the root of a chain
type Genesis struct{}

//Theirs is authored elsewhere, we only know its public key
type Theirs struct {
	PK ed25519.PublicKey
}

//Ours is authored by us, we hold the private key that signed it
type Ours struct {
	SK ed25519.PrivateKey
}

func (Genesis) ownership() {}
func (Theirs) ownership()  {}
func (Ours) ownership()    {}

//RawPublic always fails, genesis has no key
func (o Genesis) RawPublic() ([]byte, error) { return rawPublic(o) }

//RawPublic returns a copy of the public key
func (o Theirs) RawPublic() ([]byte, error) { return rawPublic(o) }

//RawPublic returns the public half of the private key
func (o Ours) RawPublic() ([]byte, error) { return rawPublic(o) }

func rawPublic(o Ownership) (raw []byte, err error) {
	pk, err := PublicKey(o)
	if err != nil {
		return nil, err
	}

	raw = make([]byte, len(pk))
	copy(raw, pk)
	return
}

//PublicKey returns the public key implied by the ownership
func PublicKey(o Ownership) (pk ed25519.PublicKey, err error) {
	switch o := o.(type) {
	case Genesis:
		return nil, ErrGenesisHasNoKey
	case Theirs:
		if len(o.PK) != ed25519.PublicKeySize {
			return nil, errors.Wrapf(ErrKeyExport, "public key is %d bytes", len(o.PK))
		}

		return o.PK, nil
	case Ours:
		if len(o.SK) != ed25519.PrivateKeySize {
			return nil, errors.Wrapf(ErrKeyExport, "private key is %d bytes", len(o.SK))
		}

		return o.SK.Public().(ed25519.PublicKey), nil
	default:
		return nil, errors.Wrapf(ErrUnknownOwnership, "%T", o)
	}
}
