package ports

import "go.trai.ch/cuprov/internal/core/domain"

// RecordStore persists the toolchain record consumed by the binding library
// at load time.
//
// The store owns the record's backup lifecycle for one provisioning run:
// Stash moves the prior record aside before reconciliation, then exactly one
// of Restore (reuse), Commit (rebuild) or Discard (failure) ends the run.
// After Discard neither record nor backup exists, so a consumer can never
// load a config describing a failed or partial build.
//
//go:generate go run go.uber.org/mock/mockgen -source=record.go -destination=mocks/mock_record.go -package=mocks
type RecordStore interface {
	// Load parses the persisted record into its bindings.
	// Returns nil, nil when no record exists.
	Load() (map[string]string, error)

	// Stash moves the current record aside as a backup. No-op without a record.
	Stash() error

	// Restore moves the stashed backup back into place. No-op without a backup.
	Restore() error

	// Commit atomically writes cfg as the new record and drops any backup.
	Commit(cfg *domain.ToolchainConfig) error

	// Discard removes the record and any backup.
	Discard() error
}
