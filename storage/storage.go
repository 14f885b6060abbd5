package storage

import "context"

// Keys of the aggregate documents. Each holds one whole JSON blob — an array
// for foods, an array for daily logs, an object for the profile. There is no
// field-level storage.
const (
	KeyFoods     = "foods"
	KeyDailyLogs = "daily_logs"
	KeyProfile   = "user_profile"
)

// Store is the persistence port consumed by the stores: an asynchronous
// key/value blob store. Get reports found=false (not an error) for a missing
// key. Implementations are swapped at the composition root; tests use the
// in-memory one.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	MultiRemove(ctx context.Context, keys []string) error
}
