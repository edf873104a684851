package migration

import (
	"context"
	"time"

	"github.com/onionoriginals/originals/adapters"
	"github.com/onionoriginals/originals/asset"
	"github.com/onionoriginals/originals/bitcoinnet"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
)

// ValidationResult is the output of a single validator of §4.10 point 1.
type ValidationResult struct {
	Valid            bool
	Errors           []string
	Warnings         []string
	EstimatedCost    *float64
	EstimatedDuration *time.Duration
}

func okResult() ValidationResult { return ValidationResult{Valid: true} }

func failResult(msgs ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: msgs}
}

// PlanValidation is the composite of every individual validator's result,
// keyed by validator name, plus the overall verdict.
type PlanValidation struct {
	Valid      bool
	Validators map[string]ValidationResult
}

// allErrors collects every error string across every named validator, in a
// stable iteration order, for inclusion in a single aggregate error.
func (p PlanValidation) allErrors() []string {
	var out []string
	for _, name := range []string{"didCompatibility", "credential", "storage", "lifecycle", "bitcoin"} {
		res, ok := p.Validators[name]
		if !ok {
			continue
		}
		for _, e := range res.Errors {
			out = append(out, name+": "+e)
		}
	}
	return out
}

// ValidateDIDCompatibility enforces the forward-only path ordering of
// §4.10 point 1 and the per-target prerequisites (webvh needs a domain;
// btco's feeRate, if given, must be positive).
func ValidateDIDCompatibility(from, to did.Layer, plan Plan) ValidationResult {
	if err := ValidateMigrationPath(from, to); err != nil {
		return failResult(err.Error())
	}

	var errs []string
	switch to {
	case did.LayerWebVH:
		if plan.Domain == "" {
			errs = append(errs, "webvh migration requires a domain")
		}
	case did.LayerBtco:
		if plan.FeeRate != nil && *plan.FeeRate <= 0 {
			errs = append(errs, "btco migration feeRate must be positive when provided")
		}
	}
	if len(errs) > 0 {
		return failResult(errs...)
	}
	return okResult()
}

// ValidateCredentials confirms the source asset carries at least one
// credential, so the migration has something to supersede. Which layer
// the credentials attest is not checked.
func ValidateCredentials(a *asset.Asset) ValidationResult {
	if len(a.Credentials) == 0 {
		return failResult("source asset has no credentials to carry forward")
	}
	return okResult()
}

// ValidateStorage confirms a checkpoint store is wired, since point 2 of
// the pipeline cannot proceed without one.
func ValidateStorage(store adapters.StorageAdapter) ValidationResult {
	if store == nil {
		return failResult("no StorageAdapter configured: cannot checkpoint this migration")
	}
	return okResult()
}

// ValidateLifecycle confirms the asset's current layer matches the plan's
// declared source, catching a stale plan built against an asset that has
// since moved on.
func ValidateLifecycle(a *asset.Asset, plan Plan) ValidationResult {
	if a.CurrentLayer != plan.From {
		return failResult("asset currentLayer is " + string(a.CurrentLayer) + ", plan expects " + string(plan.From))
	}
	return okResult()
}

// ValidateBitcoin runs only when the target is btco: it requires a
// Broadcaster and at least one UTXO, and validates the change address
// against the configured network when one is supplied.
func ValidateBitcoin(ctx context.Context, plan Plan, network bitcoinnet.Network, broadcaster adapters.Broadcaster) ValidationResult {
	if plan.To != did.LayerBtco {
		return okResult()
	}

	var errs []string
	if broadcaster == nil {
		errs = append(errs, "no Broadcaster configured: cannot anchor on Bitcoin")
	}
	if len(plan.UTXOs) == 0 {
		errs = append(errs, "btco migration requires at least one UTXO")
	}
	if plan.ChangeAddress != "" {
		if err := bitcoinnet.ValidateBitcoinAddress(plan.ChangeAddress, network); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return failResult(errs...)
	}
	return okResult()
}

// Validate runs every applicable validator and aggregates the result. It
// never short-circuits: a single pass surfaces the full defect list.
func (mgr *Manager) Validate(ctx context.Context, a *asset.Asset, plan Plan) PlanValidation {
	out := PlanValidation{Valid: true, Validators: map[string]ValidationResult{}}

	record := func(name string, res ValidationResult) {
		out.Validators[name] = res
		if !res.Valid {
			out.Valid = false
		}
	}

	record("didCompatibility", ValidateDIDCompatibility(plan.From, plan.To, plan))
	record("credential", ValidateCredentials(a))
	record("storage", ValidateStorage(mgr.config.StorageAdapter))
	record("lifecycle", ValidateLifecycle(a, plan))
	if plan.To == did.LayerBtco {
		record("bitcoin", ValidateBitcoin(ctx, plan, mgr.config.Network, mgr.config.Broadcaster))
	}

	return out
}

// errorFromValidation converts a failing PlanValidation into a single
// structured error carrying every validator's messages.
func errorFromValidation(v PlanValidation) error {
	errs := v.allErrors()
	if len(errs) == 0 {
		return errors.New(errors.ERR_INVALID_MIGRATION_PATH, "migration plan failed validation")
	}
	msg := errs[0]
	for _, e := range errs[1:] {
		msg += "; " + e
	}
	return errors.New(errors.ERR_INVALID_MIGRATION_PATH, "migration plan failed validation: %s", msg)
}
