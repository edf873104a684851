package inscription

import (
	"bytes"
	"crypto/rand"

	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/onionoriginals/originals/errors"
)

// envelopeTags carries the inscription's declared content type and optional
// metadata/pointer, embedded ahead of the raw content body (§4.9 step 2).
type envelopeTags struct {
	ContentType string
	Metadata    map[string]interface{}
	Pointer     *int64
}

// ord is the data-push protocol identifier used by the inscription
// envelope, following the ordinal inscription convention of tagging the
// reveal script with a recognizable magic string.
var ordProtocolID = []byte("ord")

// buildEnvelopeScript assembles the inscription envelope as an
// OP_FALSE OP_IF ... OP_ENDIF data-carrier wrapped around a taproot leaf,
// following the ord inscription envelope convention: a protocol tag, a
// content-type tag, optional metadata/pointer tags, OP_0, then the body
// split into ≤520-byte pushes.
func buildEnvelopeScript(internalKey *secp256k1.PublicKey, content []byte, tags envelopeTags) ([]byte, error) {
	b := txscript.NewScriptBuilder()
	b.AddData(schnorrXOnly(internalKey))
	b.AddOp(txscript.OP_CHECKSIG)
	b.AddOp(txscript.OP_FALSE)
	b.AddOp(txscript.OP_IF)
	b.AddData(ordProtocolID)
	b.AddOp(txscript.OP_1)
	b.AddData([]byte(tags.ContentType))

	if tags.Pointer != nil {
		b.AddOp(txscript.OP_2)
		b.AddData(encodePointer(*tags.Pointer))
	}
	if len(tags.Metadata) > 0 {
		encoded, err := encodeMetadataCBOR(tags.Metadata)
		if err != nil {
			return nil, errors.New(errors.ERR_INVALID_INPUT, "encode inscription metadata", err)
		}
		b.AddOp(txscript.OP_5)
		b.AddData(encoded)
	}

	b.AddOp(txscript.OP_0)
	for _, chunk := range chunkBytes(content, 520) {
		b.AddData(chunk)
	}
	b.AddOp(txscript.OP_ENDIF)

	return b.Script()
}

func chunkBytes(data []byte, size int) [][]byte {
	var chunks [][]byte
	for len(data) > 0 {
		n := size
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	if len(chunks) == 0 {
		chunks = [][]byte{{}}
	}
	return chunks
}

func schnorrXOnly(pub *secp256k1.PublicKey) []byte {
	return bytes.Clone(pub.SerializeCompressed()[1:])
}

func encodePointer(p int64) []byte {
	if p == 0 {
		return nil
	}
	buf := make([]byte, 0, 8)
	for p > 0 {
		buf = append(buf, byte(p))
		p >>= 8
	}
	return buf
}

// generateInternalKey produces a fresh schnorr/secp256k1 key pair for the
// Taproot commit output (§4.9 step 3).
func generateInternalKey() (*secp256k1.PrivateKey, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(rand.Reader)
	if err != nil {
		return nil, errors.New(errors.ERR_UNKNOWN, "generate taproot internal key", err)
	}
	return priv, nil
}
