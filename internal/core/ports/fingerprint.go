package ports

// Fingerprinter computes a content fingerprint over the native shim sources.
// The fingerprint is persisted as a record binding, so a source edit forces a
// rebuild through the same full-field reconciliation as every other field.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// SourceHash hashes the given source files in a deterministic order.
	SourceHash(paths []string) (string, error)
}
