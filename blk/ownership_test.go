package blk_test

import (
	"crypto/rand"
	"testing"

	"github.com/advanderveer/go-test"
	"github.com/advanderveer/onft/blk"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

func TestRawPublicExport(t *testing.T) {
	b, err := blk.New(blk.NilHash, []byte("Hello, world!"))
	test.Ok(t, err)

	ours := b.Ownership.(blk.Ours)
	raw, err := ours.RawPublic()
	test.Ok(t, err)
	test.Equals(t, ed25519.PublicKeySize, len(raw))
	test.Equals(t, []byte(ours.SK.Public().(ed25519.PublicKey)), raw)

	theirs := blk.Theirs{PK: ed25519.PublicKey(raw)}
	raw2, err := theirs.RawPublic()
	test.Ok(t, err)
	test.Equals(t, raw, raw2)

	//exported bytes are a copy
	raw2[0] ^= 0xff
	test.Assert(t, raw2[0] != theirs.PK[0], "export should not share memory")

	_, err = blk.Genesis{}.RawPublic()
	test.Equals(t, blk.ErrGenesisHasNoKey, err)
}

func TestPublicKey(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	test.Ok(t, err)

	test.OkEquals(t, pk)(blk.PublicKey(blk.Ours{SK: sk}))
	test.OkEquals(t, pk)(blk.PublicKey(blk.Theirs{PK: pk}))

	for _, c := range []struct {
		o   blk.Ownership
		err error
	}{
		{blk.Genesis{}, blk.ErrGenesisHasNoKey},
		{blk.Theirs{PK: pk[:31]}, blk.ErrKeyExport},
		{blk.Ours{SK: sk[:63]}, blk.ErrKeyExport},
		{blk.Ours{}, blk.ErrKeyExport},
		{nil, blk.ErrUnknownOwnership},
	} {
		_, err := blk.PublicKey(c.o)
		test.Equals(t, c.err, errors.Cause(err))
	}
}
