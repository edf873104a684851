package did

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/errors"
)

// ResolutionMetadata mirrors §6's DID resolution output shape.
type ResolutionMetadata struct {
	Error            string
	Message          string
	Network          string
	TotalInscriptions int
}

// InscriptionDiagnostic is one entry of a did:btco resolution's per-inscription trace.
type InscriptionDiagnostic struct {
	InscriptionID string
	Error         string
	IsValidDID    bool
	Metadata      map[string]interface{}
	DIDDocument   *Document
}

// ResolutionResult is the full output of ResolveDid.
type ResolutionResult struct {
	DIDDocument         *Document
	DIDDocumentMetadata map[string]interface{}
	ResolutionMetadata  ResolutionMetadata
	Inscriptions        []InscriptionDiagnostic
}

// WebVHResolver resolves a did:webvh by fetching and replaying its
// verifiable-history log; out of scope for this core's direct
// implementation (HTTP fetch is an external collaborator, §1), so it is
// injected.
type WebVHResolver func(ctx context.Context, did string) (*Document, error)

// PeerResolver looks up a cached did:peer document by id; returns nil if unknown.
type PeerResolver func(did string) *Document

// webVHTimeout is the §5 "5-second timeout" bound on did:webvh resolution.
const webVHTimeout = 5 * time.Second

const deactivationMarker = "\U0001F525" // fire emoji marks a btco inscription deactivated

// ResolveDid dispatches on the did:<method>: prefix (§4.4).
func ResolveDid(ctx context.Context, d string, ordinals adapters.OrdinalsProvider, webvh WebVHResolver, peer PeerResolver) (ResolutionResult, error) {
	method, err := Method(d)
	if err != nil {
		return ResolutionResult{ResolutionMetadata: ResolutionMetadata{Error: "invalidDid", Message: err.Error()}}, nil
	}

	switch method {
	case "peer":
		if peer == nil {
			return ResolutionResult{ResolutionMetadata: ResolutionMetadata{Error: "notFound"}}, nil
		}
		doc := peer(d)
		if doc == nil {
			return ResolutionResult{ResolutionMetadata: ResolutionMetadata{Error: "notFound"}}, nil
		}
		return ResolutionResult{DIDDocument: doc}, nil

	case "webvh":
		if webvh == nil {
			return ResolutionResult{ResolutionMetadata: ResolutionMetadata{Error: "notFound", Message: "no webvh resolver configured"}}, nil
		}
		timeoutCtx, cancel := context.WithTimeout(ctx, webVHTimeout)
		defer cancel()

		doc, err := webvh(timeoutCtx, d)
		if err != nil {
			return ResolutionResult{ResolutionMetadata: ResolutionMetadata{Error: "notFound", Message: err.Error()}}, nil
		}
		return ResolutionResult{DIDDocument: doc}, nil

	case "btco":
		return resolveBtco(ctx, d, ordinals)

	default:
		return ResolutionResult{}, errors.New(errors.ERR_INVALID_DID_FORMAT, "unsupported did method: %s", method)
	}
}

func resolveBtco(ctx context.Context, d string, ordinals adapters.OrdinalsProvider) (ResolutionResult, error) {
	if ordinals == nil {
		return ResolutionResult{}, errors.New(errors.ERR_ORD_PROVIDER_REQUIRED, "did:btco resolution requires an OrdinalsProvider")
	}

	sat, _, err := parseBtcoID(d)
	if err != nil {
		return ResolutionResult{ResolutionMetadata: ResolutionMetadata{Error: "invalidDid", Message: err.Error()}}, nil
	}

	infos, err := ordinals.GetInscriptionsBySatoshi(ctx, sat)
	if err != nil {
		return ResolutionResult{}, errors.New(errors.ERR_ORD_PROVIDER_INVALID_RESPONSE, "failed to fetch inscriptions for satoshi %d", sat, err)
	}

	var diagnostics []InscriptionDiagnostic
	var best *Document
	var bestDeactivated bool

	for _, info := range infos {
		diag := InscriptionDiagnostic{InscriptionID: info.InscriptionID}

		content := strings.TrimSpace(string(info.Content))
		deactivated := strings.HasSuffix(content, deactivationMarker)
		if !strings.HasPrefix(content, "BTCO DID:") {
			diag.Error = "contentNotDidMarker"
			diagnostics = append(diagnostics, diag)
			continue
		}

		meta, err := ordinals.GetMetadata(ctx, info.InscriptionID)
		if err != nil {
			diag.Error = err.Error()
			diagnostics = append(diagnostics, diag)
			continue
		}
		diag.Metadata = meta

		doc, ok, structErr := structurallyValidDIDDocument(meta, d)
		if !ok {
			if structErr != "" {
				diag.Error = structErr
			} else {
				diag.Error = "metadataNotAValidDidDocument"
			}
			diagnostics = append(diagnostics, diag)
			continue
		}

		diag.IsValidDID = true
		diag.DIDDocument = &doc
		diagnostics = append(diagnostics, diag)

		// inscriptions are returned oldest-first by convention; the latest
		// valid one wins.
		best = &doc
		bestDeactivated = deactivated
	}

	result := ResolutionResult{
		ResolutionMetadata: ResolutionMetadata{TotalInscriptions: len(infos)},
		Inscriptions:        diagnostics,
	}

	if best == nil {
		result.ResolutionMetadata.Error = "notFound"
		return result, nil
	}

	if bestDeactivated {
		result.ResolutionMetadata.Error = "Deactivated"
		result.DIDDocumentMetadata = map[string]interface{}{"deactivated": true}
		return result, nil
	}

	result.DIDDocument = best
	return result, nil
}

func parseBtcoID(d string) (uint64, string, error) {
	rest := strings.TrimPrefix(d, "did:btco:")
	if rest == d {
		return 0, "", errors.New(errors.ERR_INVALID_DID_FORMAT, "not a did:btco identifier: %s", d)
	}
	parts := strings.Split(rest, ":")
	switch len(parts) {
	case 1:
		var sat uint64
		if _, err := fmt.Sscanf(parts[0], "%d", &sat); err != nil {
			return 0, "", errors.New(errors.ERR_INVALID_DID_FORMAT, "invalid satoshi in %s", d)
		}
		return sat, "", nil
	case 2:
		var sat uint64
		if _, err := fmt.Sscanf(parts[1], "%d", &sat); err != nil {
			return 0, "", errors.New(errors.ERR_INVALID_DID_FORMAT, "invalid satoshi in %s", d)
		}
		return sat, parts[0], nil
	default:
		return 0, "", errors.New(errors.ERR_INVALID_DID_FORMAT, "malformed did:btco identifier %s", d)
	}
}

// structurallyValidDIDDocument applies the structural checks of §4.4: an
// array @context containing the W3C DID context, a string id matching
// wantID, and array-typed relationship fields when present.
func structurallyValidDIDDocument(meta map[string]interface{}, wantID string) (Document, bool, string) {
	ctxRaw, ok := meta["@context"]
	if !ok {
		return Document{}, false, "missing @context"
	}
	ctxList, ok := ctxRaw.([]interface{})
	if !ok {
		return Document{}, false, "@context is not an array"
	}
	hasW3CContext := false
	var contexts []string
	for _, c := range ctxList {
		if s, ok := c.(string); ok {
			contexts = append(contexts, s)
			if s == ContextDIDv1 {
				hasW3CContext = true
			}
		}
	}
	if !hasW3CContext {
		return Document{}, false, "@context missing W3C DID context"
	}

	idRaw, ok := meta["id"]
	if !ok {
		return Document{}, false, "missing id"
	}
	id, ok := idRaw.(string)
	if !ok || id != wantID {
		return Document{}, false, "id does not match requested DID"
	}

	for _, field := range []string{"verificationMethod", "authentication", "assertionMethod", "keyAgreement"} {
		if v, present := meta[field]; present {
			if _, ok := v.([]interface{}); !ok {
				return Document{}, false, fmt.Sprintf("%s is present but not an array", field)
			}
		}
	}

	return Document{Context: contexts, ID: id}, true, ""
}
