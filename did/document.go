// Package did implements the DID Manager of §4.4: create/resolve/migrate
// DID documents across the three identity layers (did:peer, did:webvh,
// did:btco).
package did

import (
	"regexp"
	"strings"

	"github.com/onionoriginals/originals/errors"
)

// ContextDIDv1 is the W3C DID context every DIDDocument must include.
const ContextDIDv1 = "https://www.w3.org/ns/did/v1"

// Layer is one of the three identity layers a DID/asset can occupy.
type Layer string

const (
	LayerPeer  Layer = "did:peer"
	LayerWebVH Layer = "did:webvh"
	LayerBtco  Layer = "did:btco"
)

// VerificationMethod is a single key entry in a DIDDocument.
type VerificationMethod struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Controller         string `json:"controller"`
	PublicKeyMultibase string `json:"publicKeyMultibase"`
}

// ServiceEndpoint is an optional service entry.
type ServiceEndpoint struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint string `json:"serviceEndpoint"`
}

// Document is the DID Document data model of §3.
type Document struct {
	Context            []string              `json:"@context"`
	ID                 string                 `json:"id"`
	Controller         []string               `json:"controller,omitempty"`
	VerificationMethod []VerificationMethod   `json:"verificationMethod"`
	Authentication     []string               `json:"authentication"`
	AssertionMethod    []string               `json:"assertionMethod"`
	KeyAgreement       []string               `json:"keyAgreement,omitempty"`
	Service            []ServiceEndpoint      `json:"service,omitempty"`
}

var didRe = regexp.MustCompile(`^did:(peer|webvh|btco):(.+)$`)

// ValidateDID matches did:<method>:<rest> with method in {peer, webvh, btco}.
func ValidateDID(d string) error {
	if !didRe.MatchString(d) {
		return errors.New(errors.ERR_INVALID_DID_FORMAT, "not a valid did:{peer,webvh,btco} identifier: %q", d)
	}
	return nil
}

// Method extracts the method token from a DID ("peer", "webvh", or "btco").
func Method(d string) (string, error) {
	m := didRe.FindStringSubmatch(d)
	if m == nil {
		return "", errors.New(errors.ERR_INVALID_DID_FORMAT, "not a valid did:{peer,webvh,btco} identifier: %q", d)
	}
	return m[1], nil
}

// ValidateDocument applies the strict form named in §9 Open Questions: every
// verification method must be complete, with a valid-DID controller and a
// 'z'-prefixed publicKeyMultibase; any controller list entries must also be
// valid DIDs.
func ValidateDocument(doc Document) error {
	if len(doc.Context) == 0 {
		return errors.New(errors.ERR_INVALID_INPUT, "DID document missing @context")
	}
	found := false
	for _, c := range doc.Context {
		if c == ContextDIDv1 {
			found = true
			break
		}
	}
	if !found {
		return errors.New(errors.ERR_INVALID_INPUT, "DID document @context must include %s", ContextDIDv1)
	}

	if err := ValidateDID(doc.ID); err != nil {
		return err
	}

	for _, vm := range doc.VerificationMethod {
		if vm.ID == "" || vm.Type == "" || vm.Controller == "" || vm.PublicKeyMultibase == "" {
			return errors.New(errors.ERR_INVALID_INPUT, "verification method %q is missing a required field", vm.ID)
		}
		if err := ValidateDID(vm.Controller); err != nil {
			return errors.New(errors.ERR_INVALID_INPUT, "verification method %q has invalid controller", vm.ID, err)
		}
		if !strings.HasPrefix(vm.PublicKeyMultibase, "z") {
			return errors.New(errors.ERR_INVALID_INPUT, "verification method %q publicKeyMultibase must use multibase prefix 'z'", vm.ID)
		}
	}

	for _, c := range doc.Controller {
		if err := ValidateDID(c); err != nil {
			return errors.New(errors.ERR_INVALID_INPUT, "invalid controller entry %q", c, err)
		}
	}

	return nil
}
