package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefix for post rows
	PostKeyPrefix = "post:"
)

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

// OpenDB opens the Badger store at path. An empty path (or the dedicated
// "test_db" marker) opens a unique temporary directory so tests stay
// isolated from each other and from real data.
func OpenDB(path string) (*badger.DB, error) {
	isTest := false
	if path == "" || path == "test_db" {
		tempPath, err := os.MkdirTemp("", "pulsewave_test_db_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	if isTest {
		if err := db.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to drop all keys: %v", err)
		}
	}
	return db, nil
}

// RunGC runs one round of Badger value-log garbage collection. Badger
// returns ErrNoRewrite when there was nothing to collect; that is not a
// failure.
func RunGC(db *badger.DB) error {
	err := db.RunValueLogGC(0.5)
	if err == badger.ErrNoRewrite {
		return nil
	}
	return err
}

// marshalRow marshals a post row to JSON
func marshalRow(row interface{}) ([]byte, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal row: %v", err)
	}
	return data, nil
}

// unmarshalRow unmarshals JSON data into a post row
func unmarshalRow(data []byte, row interface{}) error {
	if err := json.Unmarshal(data, row); err != nil {
		return fmt.Errorf("failed to unmarshal row: %v", err)
	}
	return nil
}
