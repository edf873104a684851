package inscription

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/errors"
)

// taprootCommit is the result of building the script tree and deriving the
// commit address: everything §4.9 step 3 needs before UTXO selection.
type taprootCommit struct {
	internalKey  *secp256k1.PrivateKey
	leafScript   []byte
	controlBlock []byte
	leafVersion  byte
	address      btcutil.Address
}

func buildTaprootCommit(content []byte, tags envelopeTags, network bitcoinnet.Network) (*taprootCommit, error) {
	priv, err := generateInternalKey()
	if err != nil {
		return nil, err
	}
	pub := priv.PubKey()

	leafScript, err := buildEnvelopeScript(pub, content, tags)
	if err != nil {
		return nil, err
	}

	leaf := txscript.NewBaseTapLeaf(leafScript)
	tree := txscript.AssembleTaprootScriptTree(leaf)
	rootHash := tree.RootNode.TapHash()

	outputKey := txscript.ComputeTaprootOutputKey(pub, rootHash[:])

	params, err := bitcoinnet.Params(network)
	if err != nil {
		return nil, err
	}

	addr, err := btcutil.NewAddressTaproot(schnorrXOnly(outputKey), params)
	if err != nil {
		return nil, errors.New(errors.ERR_UNKNOWN, "derive taproot commit address", err)
	}

	proof := tree.LeafMerkleProofs[0]
	controlBlock := proof.ToControlBlock(pub)
	controlBlockBytes, err := controlBlock.ToBytes()
	if err != nil {
		return nil, errors.New(errors.ERR_UNKNOWN, "serialize taproot control block", err)
	}

	return &taprootCommit{
		internalKey:  priv,
		leafScript:   leafScript,
		controlBlock: controlBlockBytes,
		leafVersion:  byte(txscript.BaseLeafVersion),
		address:      addr,
	}, nil
}
