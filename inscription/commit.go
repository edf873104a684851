package inscription

import (
	"encoding/hex"

	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/errors"
)

// CommitRequest is the input to BuildCommit (§4.9).
type CommitRequest struct {
	Content             []byte
	ContentType         string
	UTXOs               []UTXO
	ChangeAddress       string
	FeeRate             float64
	Network             bitcoinnet.Network
	MinimumCommitAmount *int64
	Metadata            map[string]interface{}
	Pointer             *int64
}

// InscriptionScript is the Taproot reveal script and its spending proof.
type InscriptionScript struct {
	Script       []byte
	ControlBlock []byte
	LeafVersion  byte
}

// CommitResult is the output of BuildCommit (§4.9 step 8).
type CommitResult struct {
	CommitAddress     string
	CommitPsbtBase64  string
	CommitAmount      int64
	SelectedUtxos     []UTXO
	CommitFee         int64
	RevealPrivateKey  string
	RevealPublicKey   string
	InscriptionScript InscriptionScript
}

// BuildCommit constructs the commit transaction per §4.9 steps 1-8: filters
// spendable UTXOs, builds the inscription envelope and Taproot script tree,
// derives the commit address, selects inputs iteratively, and assembles the
// unsigned commit PSBT (or its deterministic JSON fallback).
func BuildCommit(req CommitRequest) (CommitResult, error) {
	spendable, err := FilterSpendable(req.UTXOs)
	if err != nil {
		return CommitResult{}, err
	}

	if !isValidRate(req.FeeRate) {
		return CommitResult{}, errors.New(errors.ERR_INVALID_INPUT, "fee rate must be a finite positive number, got %v", req.FeeRate)
	}
	if req.FeeRate > MaxCallerFeeRate {
		return CommitResult{}, errors.New(errors.ERR_INVALID_INPUT, "fee rate %.2f exceeds the maximum permitted rate of %.0f sats/vB", req.FeeRate, MaxCallerFeeRate)
	}

	tags := envelopeTags{ContentType: req.ContentType, Metadata: req.Metadata, Pointer: req.Pointer}
	taproot, err := buildTaprootCommit(req.Content, tags, req.Network)
	if err != nil {
		return CommitResult{}, err
	}

	commitAmount := DustLimit
	if req.MinimumCommitAmount != nil && *req.MinimumCommitAmount > commitAmount {
		commitAmount = *req.MinimumCommitAmount
	}

	selection, err := selectUtxos(spendable, commitAmount, req.FeeRate)
	if err != nil {
		return CommitResult{}, err
	}

	if selection.total < commitAmount+selection.fee {
		return CommitResult{}, errors.New(
			errors.ERR_INSUFFICIENT_FUNDS,
			"selected utxo total %d is below the required %d (commit %d + fee %d)",
			selection.total, commitAmount+selection.fee, commitAmount, selection.fee,
		)
	}

	params, err := bitcoinnet.Params(req.Network)
	if err != nil {
		return CommitResult{}, err
	}

	psbtBase64 := buildCommitPSBT(selection.selected, taproot.address, commitAmount, req.ChangeAddress, selection.change, selection.fee, params)

	return CommitResult{
		CommitAddress:    taproot.address.EncodeAddress(),
		CommitPsbtBase64: psbtBase64,
		CommitAmount:     commitAmount,
		SelectedUtxos:    selection.selected,
		CommitFee:        selection.fee,
		RevealPrivateKey: hex.EncodeToString(taproot.internalKey.Serialize()),
		RevealPublicKey:  hex.EncodeToString(taproot.internalKey.PubKey().SerializeCompressed()),
		InscriptionScript: InscriptionScript{
			Script:       taproot.leafScript,
			ControlBlock: taproot.controlBlock,
			LeafVersion:  taproot.leafVersion,
		},
	}, nil
}
