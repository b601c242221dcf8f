package testflags

import (
	"os"
	"testing"
)

// IntegrationTest skips t unless XDISC_ENABLE_INTEGRATION_TESTS is set.
func IntegrationTest(t *testing.T) {
	_, ok := os.LookupEnv("XDISC_ENABLE_INTEGRATION_TESTS")
	if !ok {
		t.SkipNow()
	}
}
