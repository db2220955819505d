package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// VerifyTrace compares a rendered trace against its golden file. Run
// tests with -update to regenerate fixtures after intentional behavior
// changes.
func VerifyTrace(t *testing.T, name string, trace *Trace) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, trace.Render())
}
