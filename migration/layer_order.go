package migration

import (
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
)

// layerOrder assigns the §4.10 ordinal used to enforce forward-only paths.
var layerOrder = map[did.Layer]int{
	did.LayerPeer:  0,
	did.LayerWebVH: 1,
	did.LayerBtco:  2,
}

// ValidateMigrationPath enforces peer(0) < webvh(1) < btco(2); any
// same-or-reverse direction fails with InvalidMigrationPath.
func ValidateMigrationPath(from, to did.Layer) error {
	fromOrder, ok := layerOrder[from]
	if !ok {
		return errors.New(errors.ERR_INVALID_MIGRATION_PATH, "unknown source layer %q", string(from))
	}
	toOrder, ok := layerOrder[to]
	if !ok {
		return errors.New(errors.ERR_INVALID_MIGRATION_PATH, "unknown target layer %q", string(to))
	}
	if toOrder <= fromOrder {
		return errors.New(errors.ERR_INVALID_MIGRATION_PATH, "migration path %s -> %s is not forward-only", string(from), string(to))
	}
	return nil
}
