package lifecycle

import (
	"context"

	"github.com/onionoriginals/originals/asset"
	"github.com/onionoriginals/originals/credential"
	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
	"github.com/onionoriginals/originals/resource"
)

// ResourceInput is the caller-supplied shape of one resource to include in
// a new asset (§4.8 createAsset).
type ResourceInput struct {
	ID          string
	Type        string
	ContentType string
	Content     []byte
	Hash        string // required iff Content is nil; otherwise must equal SHA-256(Content)
}

// CreateAsset validates resources, mints a did:peer, and issues a
// ResourceCreated credential signed by the freshly generated assertion key
// (§4.8). The caller owns persisting KeyPair.PrivateKeyMultibase into
// whatever KeyStore backs subsequent lifecycle operations.
func (m *Manager) CreateAsset(ctx context.Context, inputs []ResourceInput) (*asset.Asset, crypto.KeyPair, error) {
	if len(inputs) == 0 {
		return nil, crypto.KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "createAsset requires at least one resource")
	}

	resources := make([]resource.Resource, 0, len(inputs))
	resourceHashes := make([]did.ResourceHash, 0, len(inputs))

	for _, in := range inputs {
		if in.ID == "" || in.Type == "" || in.ContentType == "" {
			return nil, crypto.KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "resource %q is missing id, type, or contentType", in.ID)
		}

		hash := in.Hash
		if in.Content != nil {
			computed := resource.HashContent(in.Content)
			if in.Hash != "" && in.Hash != computed {
				return nil, crypto.KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "resource %q hash %q does not match SHA-256(content) %q", in.ID, in.Hash, computed)
			}
			hash = computed
		}
		if hash == "" {
			return nil, crypto.KeyPair{}, errors.New(errors.ERR_INVALID_INPUT, "resource %q has neither content nor a hash", in.ID)
		}

		resources = append(resources, resource.Resource{
			ID:          in.ID,
			Type:        in.Type,
			ContentType: in.ContentType,
			Content:     in.Content,
			Hash:        hash,
		})
		resourceHashes = append(resourceHashes, did.ResourceHash{Hash: hash})
	}

	doc, keyPair, err := m.dids.CreateDidPeer(resourceHashes)
	if err != nil {
		return nil, crypto.KeyPair{}, err
	}

	a, err := asset.New(resources, doc, doc.ID)
	if err != nil {
		return nil, crypto.KeyPair{}, err
	}

	vmID, err := assertionMethodID(doc)
	if err != nil {
		return nil, crypto.KeyPair{}, err
	}

	subject := map[string]interface{}{"id": doc.ID, "resources": resourceSummaries(resources)}
	cred, err := credential.CreateResourceCredential(credential.KindResourceCreated, subject, doc.ID)
	if err != nil {
		return nil, crypto.KeyPair{}, err
	}

	signed, err := credential.SignCredential(ctx, cred, keyPair.PrivateKeyMultibase, vmID, m.dids, m.defaultKeyType())
	if err != nil {
		return nil, crypto.KeyPair{}, err
	}

	a.Credentials = append(a.Credentials, signed)

	return a, keyPair, nil
}

func resourceSummaries(resources []resource.Resource) []map[string]string {
	out := make([]map[string]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, map[string]string{"id": r.ID, "hash": r.Hash})
	}
	return out
}
