package horseshoe

import (
	"expvar"
	"testing"
)

func TestMetricsSnapshotAndReset(t *testing.T) {
	m := NewMetrics()
	m.starts.Add(2)
	m.commits.Add(3)
	m.rejectedMoves.Add(1)
	m.setRunning(true)

	snap := m.Snapshot()
	if snap.Starts != 2 || snap.Commits != 3 || snap.RejectedMoves != 1 || !snap.Running {
		t.Errorf("Snapshot() = %+v", snap)
	}

	m.Reset()
	if snap := m.Snapshot(); snap != (MetricsSnapshot{}) {
		t.Errorf("Snapshot() after Reset = %+v, want zero", snap)
	}
}

func TestMetricsRegisterExpvar(t *testing.T) {
	m := NewMetrics()
	m.RegisterExpvar()
	// A second registration would panic on duplicate names.
	m.RegisterExpvar()

	m.commits.Add(7)
	v := expvar.Get("horseshoe_commits_total")
	if v == nil {
		t.Fatal("horseshoe_commits_total is not published")
	}
	if got := v.String(); got != "7" {
		t.Errorf("horseshoe_commits_total = %s, want 7", got)
	}
	if expvar.Get("horseshoe_running") == nil {
		t.Error("horseshoe_running is not published")
	}
}

func TestDefaultMetricsShared(t *testing.T) {
	if DefaultMetrics() != DefaultMetrics() {
		t.Error("DefaultMetrics() returned different collectors")
	}
}
