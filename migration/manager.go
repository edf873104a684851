package migration

import (
	"context"

	"github.com/onionoriginals/originals/asset"
	"github.com/onionoriginals/originals/config"
	"github.com/onionoriginals/originals/did"
	"github.com/onionoriginals/originals/errors"
	"github.com/onionoriginals/originals/lifecycle"
)

// Manager is the MigrationManager of §4.10: validate/checkpoint/execute/
// rollback, orchestrating the already-built Lifecycle Manager rather than
// duplicating its transition logic.
type Manager struct {
	config    config.OriginalsConfig
	lifecycle *lifecycle.Manager
}

// NewManager constructs a Migration Manager bound to cfg, delegating the
// actual peer/webvh/btco transitions to lifecycleMgr.
func NewManager(cfg config.OriginalsConfig, lifecycleMgr *lifecycle.Manager) *Manager {
	return &Manager{config: cfg, lifecycle: lifecycleMgr}
}

// Result is the outcome of one Execute call.
type Result struct {
	MigrationID string
	State       State
	Validation  PlanValidation
	Audit       AuditRecord
}

// Execute runs the full pipeline of §4.10: validate, checkpoint, execute
// the pair-specific transition, and roll back on failure. The returned
// error, if any, is always a structured *errors.Error; Result.State names
// where the pipeline ended up.
func (mgr *Manager) Execute(ctx context.Context, a *asset.Asset, plan Plan) (Result, error) {
	state := StatePending

	advance := func(to State) error {
		if !canTransition(state, to) {
			return errors.New(errors.ERR_INVALID_MIGRATION_STATE, "cannot advance migration from %s to %s", state, to)
		}
		state = to
		return nil
	}

	migrationID, err := newID("migration")
	if err != nil {
		return Result{}, err
	}

	if err := advance(StateValidating); err != nil {
		return Result{State: state}, err
	}
	validation := mgr.Validate(ctx, a, plan)
	if !validation.Valid {
		return mgr.fail(ctx, migrationID, a, plan, state, validation, "", errorFromValidation(validation))
	}

	cp, err := newCheckpoint(a)
	if err != nil {
		return mgr.fail(ctx, migrationID, a, plan, state, validation, "", err)
	}
	if err := saveCheckpoint(ctx, mgr.config.StorageAdapter, cp); err != nil {
		return mgr.fail(ctx, migrationID, a, plan, state, validation, "", err)
	}
	if err := advance(StateCheckpointed); err != nil {
		return mgr.fail(ctx, migrationID, a, plan, state, validation, cp.ID, err)
	}

	if err := advance(StateInProgress); err != nil {
		return mgr.fail(ctx, migrationID, a, plan, state, validation, cp.ID, err)
	}

	if plan.To == did.LayerBtco {
		if err := advance(StateAnchoring); err != nil {
			return mgr.fail(ctx, migrationID, a, plan, state, validation, cp.ID, err)
		}
	}

	if execErr := mgr.dispatch(ctx, a, plan); execErr != nil {
		return mgr.fail(ctx, migrationID, a, plan, state, validation, cp.ID, execErr)
	}

	if err := advance(StateCompleted); err != nil {
		return mgr.fail(ctx, migrationID, a, plan, state, validation, cp.ID, err)
	}

	record := AuditRecord{
		MigrationID:  migrationID,
		AssetID:      plan.AssetID,
		From:         string(plan.From),
		To:           string(plan.To),
		FinalState:   StateCompleted,
		CheckpointID: cp.ID,
		Timestamp:    nowUTC(),
	}
	if err := writeAuditRecord(ctx, mgr.config.StorageAdapter, record); err != nil {
		return Result{MigrationID: migrationID, State: StateCompleted, Validation: validation}, err
	}

	deleteCheckpoint(ctx, mgr.config.StorageAdapter, cp.ID)

	return Result{MigrationID: migrationID, State: StateCompleted, Validation: validation, Audit: record}, nil
}

// dispatch invokes the pair-specific lifecycle operation for plan.
func (mgr *Manager) dispatch(ctx context.Context, a *asset.Asset, plan Plan) error {
	switch {
	case plan.From == did.LayerPeer && plan.To == did.LayerWebVH:
		return mgr.lifecycle.PublishToWeb(ctx, a, plan.Domain)
	case plan.To == did.LayerBtco:
		return mgr.lifecycle.InscribeOnBitcoin(ctx, a, lifecycle.InscribeRequest{
			FeeRate:             plan.FeeRate,
			UTXOs:               plan.UTXOs,
			ChangeAddress:       plan.ChangeAddress,
			MinimumCommitAmount: plan.MinimumCommitAmount,
			Metadata:            plan.Metadata,
		})
	default:
		return errors.New(errors.ERR_INVALID_MIGRATION_PATH, "no dispatcher for %s -> %s", plan.From, plan.To)
	}
}

// fail transitions the migration to failed, attempts rollback exactly
// once, writes the audit record regardless of rollback's own outcome, and
// returns the original cause as the surfaced error.
func (mgr *Manager) fail(ctx context.Context, migrationID string, a *asset.Asset, plan Plan, from State, validation PlanValidation, checkpointID string, cause error) (Result, error) {
	finalState := StateFailed

	rollbackErr := error(nil)
	if checkpointID != "" {
		rollbackErr = mgr.rollback(ctx, a, checkpointID)
		if rollbackErr != nil {
			finalState = StateQuarantined
		} else {
			finalState = StateRolledBack
		}
	}

	record := AuditRecord{
		MigrationID:  migrationID,
		AssetID:      plan.AssetID,
		From:         string(plan.From),
		To:           string(plan.To),
		FinalState:   finalState,
		CheckpointID: checkpointID,
		Timestamp:    nowUTC(),
	}
	if cause != nil {
		record.Error = cause.Error()
	}
	if rollbackErr != nil {
		record.Error += "; rollback failed: " + rollbackErr.Error()
	}
	_ = writeAuditRecord(ctx, mgr.config.StorageAdapter, record)

	return Result{MigrationID: migrationID, State: finalState, Validation: validation, Audit: record}, cause
}
