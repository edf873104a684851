package config

import (
	"strconv"
	"strings"

	"github.com/onionoriginals/originals/errors"
)

// ValidateSemverForTier enforces §6's semver gating: pichu (prod) accepts
// only X.0.0, cleffa (staging) accepts X.Y.0, magby (dev) accepts any
// semver.
func ValidateSemverForTier(version string, tier WebVHNetwork) error {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) != 3 {
		return errors.New(errors.ERR_INVALID_INPUT, "version %q is not a valid semver X.Y.Z", version)
	}

	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return errors.New(errors.ERR_INVALID_INPUT, "version %q is not a valid semver X.Y.Z", version, err)
		}
	}

	minor, patch := parts[1], parts[2]

	switch tier {
	case WebVHProd:
		if minor != "0" || patch != "0" {
			return errors.New(errors.ERR_INVALID_INPUT, "pichu only accepts versions of shape X.0.0, got %q", version)
		}
	case WebVHStaging:
		if patch != "0" {
			return errors.New(errors.ERR_INVALID_INPUT, "cleffa only accepts versions of shape X.Y.0, got %q", version)
		}
	case WebVHDev:
		// any semver accepted
	default:
		return errors.New(errors.ERR_INVALID_INPUT, "unsupported webvh tier %q", string(tier))
	}

	return nil
}
