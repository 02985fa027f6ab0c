package kv

// Entry is a single key/value pair held by a store.
type Entry struct {
	Key   string
	Value string
}

// Store defines the interface for a key-value store.
// Implementations of this interface can be swapped out,
// allowing for different storage backends (e.g., in-memory, file-backed).
type Store interface {
	// Get retrieves the value associated with the given key.
	// Returns the value and true if the key exists, or empty string and false if not.
	Get(key string) (string, bool)

	// Set stores a key-value pair.
	// Returns an error if the operation fails.
	Set(key, value string) error

	// Delete removes a key from the store.
	// Reports whether the key was present before the call.
	Delete(key string) (bool, error)

	// Entries returns a snapshot of all entries, sorted by key.
	// The snapshot is detached from the store: later mutations do not
	// affect it.
	Entries() []Entry

	// Len reports the number of entries currently held.
	Len() int
}
