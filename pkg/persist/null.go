package persist

import "context"

// NullKV is a no-op store that never persists anything.
// Useful for testing or when persistence should be disabled.
type NullKV struct{}

// NewNullKV creates a null store.
func NewNullKV() *NullKV {
	return &NullKV{}
}

// Get always reports a missing key.
func (*NullKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (*NullKV) Set(ctx context.Context, key string, data []byte) error {
	return nil
}

// Delete does nothing.
func (*NullKV) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (*NullKV) Close() error { return nil }

// Ensure NullKV implements KV.
var _ KV = (*NullKV)(nil)
