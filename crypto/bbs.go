package crypto

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/onionoriginals/originals/encoding"
	"github.com/onionoriginals/originals/errors"
)

// BBSFeature tags the shape of a serialized BBS proof envelope (§4.2). The
// engine does not generate BBS selective-disclosure proofs itself (§9 Open
// Questions); it round-trips whatever a caller-supplied proof-generation
// hook produces, tagged and CBOR-framed exactly as the cryptosuite expects.
type BBSFeature uint32

const (
	FeatureBaseline              BBSFeature = 0xd95d02 // base proof
	FeatureBaselineDerived       BBSFeature = 0xd95d03 // derived proof
	FeatureAnonHolderBinding     BBSFeature = 0xd95d04 // base proof, holder binding
	FeatureAnonHolderDerived     BBSFeature = 0xd95d05 // derived proof, holder binding
	FeaturePseudonymDerived      BBSFeature = 0xd95d07 // derived proof, pseudonym
	FeaturePseudonymIssuerPID    BBSFeature = 0xd95d06 // base proof, issuer-chosen pid
	FeaturePseudonymHiddenPID    BBSFeature = 0xd95d08 // base proof, hidden pid
)

// cborTagBytes returns the 3-byte CBOR tag prefix for a feature: major type
// 6 (0xd9, a 2-byte tag follows) plus the big-endian low 16 bits of the
// feature value.
func cborTagBytes(f BBSFeature) [3]byte {
	return [3]byte{0xd9, byte(f >> 8), byte(f)}
}

// BBSEnvelope is the CBOR-framed payload carried inside a BBS proofValue.
type BBSEnvelope struct {
	Feature        BBSFeature
	BBSCiphertext  []byte            // the opaque BBS signature/proof bytes
	DisclosedIndexes []int           `cbor:",omitempty"`
	Pseudonym      []byte            `cbor:",omitempty"`
	PID            []byte            `cbor:",omitempty"`
}

type bbsWireEnvelope struct {
	BBSCiphertext    []byte
	DisclosedIndexes []int  `cbor:",omitempty"`
	Pseudonym        []byte `cbor:",omitempty"`
	PID              []byte `cbor:",omitempty"`
}

// SerializeBBSEnvelope CBOR-encodes env's body, prepends the 3-byte feature
// tag, and multibase-wraps the result as base64url-nopad (prefix 'u').
func SerializeBBSEnvelope(env BBSEnvelope) (string, error) {
	body, err := cbor.Marshal(bbsWireEnvelope{
		BBSCiphertext:    env.BBSCiphertext,
		DisclosedIndexes: env.DisclosedIndexes,
		Pseudonym:        env.Pseudonym,
		PID:              env.PID,
	})
	if err != nil {
		return "", errors.New(errors.ERR_INVALID_INPUT, "bbs envelope cbor encode failed", err)
	}

	tag := cborTagBytes(env.Feature)
	framed := append(append([]byte{}, tag[:]...), body...)

	return encoding.MultibaseEncode(framed, encoding.Base64URLNoPad)
}

// DeserializeBBSEnvelope is the exact inverse of SerializeBBSEnvelope.
func DeserializeBBSEnvelope(s string) (BBSEnvelope, error) {
	data, enc, err := encoding.MultibaseDecode(s)
	if err != nil {
		return BBSEnvelope{}, err
	}
	if enc != encoding.Base64URLNoPad {
		return BBSEnvelope{}, errors.New(errors.ERR_INVALID_INPUT, "bbs envelope must use multibase prefix 'u'")
	}
	if len(data) < 3 {
		return BBSEnvelope{}, errors.New(errors.ERR_INVALID_INPUT, "bbs envelope too short")
	}
	if data[0] != 0xd9 {
		return BBSEnvelope{}, errors.New(errors.ERR_INVALID_INPUT, "bbs envelope missing CBOR tag prefix")
	}

	feature := BBSFeature(0xd90000 | uint32(data[1])<<8 | uint32(data[2]))

	var wire bbsWireEnvelope
	if err := cbor.Unmarshal(data[3:], &wire); err != nil {
		return BBSEnvelope{}, errors.New(errors.ERR_INVALID_INPUT, "bbs envelope cbor decode failed", err)
	}

	return BBSEnvelope{
		Feature:          feature,
		BBSCiphertext:    wire.BBSCiphertext,
		DisclosedIndexes: wire.DisclosedIndexes,
		Pseudonym:        wire.Pseudonym,
		PID:              wire.PID,
	}, nil
}
