package blk

import "errors"

var (
	//ErrGenesisHasNoKey is returned when the genesis ownership is used as if it held key material
	ErrGenesisHasNoKey = errors.New("genesis ownership has no key")

	//ErrKeyGeneration is returned when no fresh keypair could be minted
	ErrKeyGeneration = errors.New("failed to generate keypair")

	//ErrKeyExport is returned when the raw public key couldn't be extracted from key material
	ErrKeyExport = errors.New("failed to export public key")

	//ErrSignatureComputation is returned when the signing primitive couldn't run
	ErrSignatureComputation = errors.New("failed to compute signature")

	//ErrVerification is returned when the signature couldn't be checked at all
	ErrVerification = errors.New("failed to run signature verification")

	//ErrUnknownOwnership is returned for an ownership that isn't one of the known variants
	ErrUnknownOwnership = errors.New("unknown ownership")

	//ErrUnsupportedVersion is returned when decoding a block of another protocol version
	ErrUnsupportedVersion = errors.New("unsupported protocol version")

	//ErrMalformedBlock is returned when encoded block data couldn't be decoded
	ErrMalformedBlock = errors.New("malformed block encoding")
)
