package canonical

// WellKnownContexts is the embedded document-loader table consulted before
// any network fetch (§4.1, §9 "document-loader safety"). Values are
// placeholders: this engine canonicalizes by structural flattening rather
// than full JSON-LD term expansion, so only the context's *presence* (not
// its term-mapping content) is load-bearing — it tells the loader "this URI
// is known, do not hit the network for it".
var WellKnownContexts = map[string]string{
	"https://www.w3.org/ns/did/v1":                                     "w3c-did-v1",
	"https://www.w3.org/2018/credentials/v1":                          "w3c-vc-v1",
	"https://www.w3.org/ns/credentials/v2":                            "w3c-vc-v2",
	"https://w3id.org/security/data-integrity/v2":                     "data-integrity-v2",
	"https://w3id.org/security/suites/ed25519-2020/v1":                "ed25519-2020",
	"https://w3id.org/security/multikey/v1":                           "multikey-v1",
	"https://w3id.org/security/bbs/v1":                                "bbs-v1",
	"https://originals.dev/contexts/asset/v1":                         "originals-asset-v1",
	"https://originals.dev/contexts/bitcoin-witness/v1":                "originals-bitcoin-witness-v1",
}

// IsWellKnown reports whether uri is present in the embedded table.
func IsWellKnown(uri string) bool {
	_, ok := WellKnownContexts[uri]
	return ok
}
