package migration

import (
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/inscription"
)

// Plan is the caller-supplied description of one migration: which asset,
// the declared source/target layers (re-checked against the asset's
// actual currentLayer by the lifecycle validator), and the parameters
// the target layer needs.
type Plan struct {
	AssetID string
	From    did.Layer
	To      did.Layer

	// webvh
	Domain string

	// btco
	FeeRate             *float64
	UTXOs               []inscription.UTXO
	ChangeAddress       string
	MinimumCommitAmount *int64
	Metadata            map[string]interface{}
}
