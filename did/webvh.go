package did

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/onionoriginals/originals/errors"
)

// MigrateToDidWebVH rewrites source into a did:webvh document published at
// domain (§4.4). The slug is a stable 16-lowercase-hex-digit digest of
// source's canonical identifier so repeated migrations of the same source
// DID are idempotent in their slug.
func MigrateToDidWebVH(source Document, domain string) (Document, error) {
	if domain == "" {
		return Document{}, errors.New(errors.ERR_INVALID_INPUT, "domain is required to migrate to did:webvh")
	}

	encodedDomain := url.PathEscape(domain)
	slug := webvhSlug(source.ID)
	newID := "did:webvh:" + encodedDomain + ":u-" + slug

	return rekeyDocument(source, newID), nil
}

func webvhSlug(sourceID string) string {
	digest := sha256.Sum256([]byte(sourceID))
	return hex.EncodeToString(digest[:8]) // 16 lowercase hex digits
}

// rekeyDocument rewrites doc's id and every verification-method/relationship
// reference that pointed at the old id, preserving key material.
func rekeyDocument(doc Document, newID string) Document {
	oldID := doc.ID
	rewrite := func(ref string) string {
		if strings.HasPrefix(ref, oldID+"#") {
			return newID + strings.TrimPrefix(ref, oldID)
		}
		return ref
	}

	out := doc
	out.ID = newID

	out.VerificationMethod = make([]VerificationMethod, len(doc.VerificationMethod))
	for i, vm := range doc.VerificationMethod {
		vm.ID = rewrite(vm.ID)
		if vm.Controller == oldID {
			vm.Controller = newID
		}
		out.VerificationMethod[i] = vm
	}

	out.Authentication = rewriteRefs(doc.Authentication, rewrite)
	out.AssertionMethod = rewriteRefs(doc.AssertionMethod, rewrite)
	out.KeyAgreement = rewriteRefs(doc.KeyAgreement, rewrite)

	return out
}

func rewriteRefs(refs []string, rewrite func(string) string) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = rewrite(r)
	}
	return out
}

// WebVHLogEntry is the first entry emitted in the verifiable-history log
// when a DID is first published.
type WebVHLogEntry struct {
	VersionID   string `json:"versionId"`
	VersionTime string `json:"versionTime"`
	Parameters  map[string]interface{} `json:"parameters"`
	State       Document `json:"state"`
}
