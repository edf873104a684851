package lifecycle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/onionoriginals/originals/asset"
	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/credential"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
	"github.com/onionoriginals/originals/inscription"
)

// didMarker prefixes the inscription content so did:btco resolution can
// recognize it (§4.4 resolveBtco checks for this exact prefix).
const didMarker = "BTCO DID:"

// defaultConfirmationTargetBlocks is the fee-estimation horizon used when
// the caller does not otherwise specify one.
const defaultConfirmationTargetBlocks = 6

const confirmationPollInterval = 2 * time.Second
const confirmationPollAttempts = 30

// InscribeRequest is the input to InscribeOnBitcoin. The feeRate, UTXO set,
// and change address round out §4.8's single-parameter summary with the
// concrete inputs §4.9's commit construction actually requires.
type InscribeRequest struct {
	FeeRate             *float64
	UTXOs               []inscription.UTXO
	ChangeAddress       string
	MinimumCommitAmount *int64
	Metadata            map[string]interface{}
}

// InscribeOnBitcoin migrates a from {did:peer, did:webvh} to did:btco by
// constructing a commit transaction over a's DID document, broadcasting and
// confirming it, then resolving the anchored satoshi (§4.8, §4.9).
func (m *Manager) InscribeOnBitcoin(ctx context.Context, a *asset.Asset, req InscribeRequest) error {
	if a.CurrentLayer != did.LayerPeer && a.CurrentLayer != did.LayerWebVH {
		return errors.New(errors.ERR_INVALID_TRANSITION, "inscribeOnBitcoin requires currentLayer in {did:peer, did:webvh}, got %s", a.CurrentLayer)
	}
	if m.config.Broadcaster == nil {
		return errors.New(errors.ERR_INVALID_INPUT, "no Broadcaster configured: cannot inscribe on Bitcoin")
	}

	feeRate, err := inscription.ResolveFeeRate(ctx, m.config.FeeOracle, m.config.OrdinalsProvider, defaultConfirmationTargetBlocks, req.FeeRate)
	if err != nil {
		return err
	}

	content, err := didDocumentInscriptionContent(a.Document)
	if err != nil {
		return err
	}

	commit, err := inscription.BuildCommit(inscription.CommitRequest{
		Content:             content,
		ContentType:         "application/did+json",
		UTXOs:               req.UTXOs,
		ChangeAddress:       req.ChangeAddress,
		FeeRate:             feeRate,
		Network:             m.config.Network,
		MinimumCommitAmount: req.MinimumCommitAmount,
		Metadata:            req.Metadata,
	})
	if err != nil {
		return err
	}

	txid, err := m.config.Broadcaster.BroadcastTx(ctx, commit.CommitPsbtBase64)
	if err != nil {
		return errors.New(errors.ERR_UNKNOWN, "broadcast of commit transaction failed", err)
	}

	if err := m.awaitConfirmation(ctx, txid); err != nil {
		return err
	}

	sat, err := m.resolveAnchoredSatoshi(ctx, txid)
	if err != nil {
		return err
	}

	satNetwork := satoshiNetworkFor(m.config.Network)
	newDoc, err := did.MigrateToDidBtco(a.Document, sat, satNetwork)
	if err != nil {
		return err
	}

	vmID, err := assertionMethodID(a.Document)
	if err != nil {
		return err
	}
	privateKey, err := m.resolveSigningKey(ctx, vmID)
	if err != nil {
		return err
	}
	subject := map[string]interface{}{
		"id":      newDoc.ID,
		"from":    string(a.CurrentLayer),
		"to":      string(did.LayerBtco),
		"txid":    txid,
		"feeRate": feeRate,
	}
	cred, err := credential.CreateResourceCredential(credential.KindResourceMigrated, subject, newDoc.ID)
	if err != nil {
		return err
	}

	// Signed with the pre-anchor key: the did:btco verification method
	// only resolves once the ordinals indexer has caught up with the
	// reveal transaction, which has not happened yet at issuance time.
	signed, err := credential.SignCredential(ctx, cred, privateKey, vmID, m.dids, m.defaultKeyType())
	if err != nil {
		return err
	}

	m.dids.CacheDocument(newDoc)

	return a.Migrate(did.LayerBtco, newDoc, signed, asset.MigrationMeta{TxID: txid, FeeRate: &feeRate})
}

func didDocumentInscriptionContent(doc did.Document) ([]byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.New(errors.ERR_INVALID_INPUT, "marshal DID document for inscription", err)
	}
	return append([]byte(didMarker), body...), nil
}

func satoshiNetworkFor(network bitcoinnet.Network) bitcoinnet.SatoshiNetwork {
	switch network {
	case bitcoinnet.Signet:
		return bitcoinnet.SatSig
	case bitcoinnet.Regtest:
		return bitcoinnet.SatTest
	default:
		return bitcoinnet.SatMainnet
	}
}

// awaitConfirmation polls the Broadcaster for confirmation, bounded by
// confirmationPollAttempts * confirmationPollInterval. Cancellation via ctx
// is honored between polls.
func (m *Manager) awaitConfirmation(ctx context.Context, txid string) error {
	for i := 0; i < confirmationPollAttempts; i++ {
		confirmed, _, err := m.config.Broadcaster.GetConfirmation(ctx, txid)
		if err != nil {
			return errors.New(errors.ERR_UNKNOWN, "polling confirmation for %s failed", txid, err)
		}
		if confirmed {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.New(errors.ERR_UNKNOWN, "context cancelled awaiting confirmation of %s", txid, ctx.Err())
		case <-time.After(confirmationPollInterval):
		}
	}
	return errors.New(errors.ERR_UNKNOWN, "transaction %s did not confirm within %d attempts", txid, confirmationPollAttempts)
}

// resolveAnchoredSatoshi asks the ordinals provider which satoshi the
// commit/reveal pair anchored the inscription to.
func (m *Manager) resolveAnchoredSatoshi(ctx context.Context, txid string) (uint64, error) {
	if m.config.OrdinalsProvider == nil {
		return 0, errors.New(errors.ERR_ORD_PROVIDER_REQUIRED, "resolving the anchored satoshi requires an OrdinalsProvider")
	}

	info, err := m.config.OrdinalsProvider.GetInscriptionByID(ctx, txid)
	if err != nil {
		return 0, errors.New(errors.ERR_ORD_PROVIDER_INVALID_RESPONSE, "failed to resolve inscription for %s", txid, err)
	}
	if info == nil {
		return 0, errors.New(errors.ERR_ORD_PROVIDER_INVALID_RESPONSE, "ordinals provider returned no inscription for %s", txid)
	}

	return info.Satoshi, nil
}
