package repo_test

import (
	"os"
	"testing"

	"github.com/pkordes/trip-planner/testutil"
)

// TestMain applies all pending migrations once for the whole package so
// individual tests never need to think about schema state. Without
// TEST_DATABASE_URL every integration test skips itself.
func TestMain(m *testing.M) {
	testutil.MigrateForMain()
	os.Exit(m.Run())
}
