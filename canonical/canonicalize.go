// Package canonical implements deterministic canonicalization of the
// JSON-LD documents that flow through the engine (DID documents, verifiable
// credentials, proof configs) for the purpose of hashing and signing.
//
// A full URDNA2015 implementation requires a JSON-LD term-expansion and
// RDF-dataset engine; no example in the training pack carries one (see
// DESIGN.md). This engine instead flattens each document into a sorted,
// deduplication-free multiset of path/value statements ("pseudo-quads")
// that is invariant to map-key reordering and to reordering of JSON arrays
// that represent unordered sets — the two equivalence classes called out in
// spec.md §8's round-trip property. Because array positions and key
// boundaries are not recorded, some distinct documents share one canonical
// form: scalar values moved between objects of the same array, and a key
// containing a dot versus the equivalent nested keys. The result is
// deterministic, newline-joined UTF-8 bytes, analogous in role to
// canonical N-Quads.
package canonical

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/onionoriginals/originals/errors"
)

// Canonicalize renders doc (any JSON-marshalable value, typically a
// map[string]interface{}) into its canonical byte form.
func Canonicalize(doc interface{}) ([]byte, error) {
	raw, err := toJSONValue(doc)
	if err != nil {
		return nil, errors.New(errors.ERR_CANONICALIZATION_ERROR, "canonicalize: invalid document", err)
	}

	var statements []string
	flatten(raw, "$", &statements)
	sort.Strings(statements)

	return []byte(strings.Join(statements, "\n")), nil
}

func toJSONValue(doc interface{}) (interface{}, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// flatten walks v, appending one statement per leaf scalar. Object keys are
// visited in sorted order (key-order invariance); array elements are all
// flattened under the same path with no index component (set-order
// invariance), so reordered array entries yield the same multiset of
// statements. Duplicate entries are kept, not collapsed.
func flatten(v interface{}, path string, out *[]string) {
	switch val := v.(type) {
	case map[string]interface{}:
		if len(val) == 0 {
			*out = append(*out, fmt.Sprintf("%s = {}", path))
			return
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(val[k], path+"."+k, out)
		}
	case []interface{}:
		if len(val) == 0 {
			*out = append(*out, fmt.Sprintf("%s = []", path))
			return
		}
		for _, elem := range val {
			flatten(elem, path+"[]", out)
		}
	case string:
		*out = append(*out, fmt.Sprintf("%s = %q", path, val))
	case nil:
		*out = append(*out, fmt.Sprintf("%s = null", path))
	default:
		b, _ := json.Marshal(val)
		*out = append(*out, fmt.Sprintf("%s = %s", path, string(b)))
	}
}
