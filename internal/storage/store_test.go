package storage

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/faultslip/internal/friction"
)

func testSeries(t *testing.T) (*friction.Series, friction.Params) {
	t.Helper()

	p := friction.DefaultParams()
	p.Dc = 10
	p.MuTZero = 0.55
	p.NumSteps = 50

	s, err := p.Evaluate(friction.ZeroNoise)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	return s, p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	series, params := testSeries(t)

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(params.Dc, 42, params, series)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "dc10_") {
		t.Errorf("unexpected run id: %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Dc != 10 || meta.Seed != 42 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Params.MuTZero != 0.55 {
		t.Errorf("expected stored mu_t_zero 0.55, got %g", meta.Params.MuTZero)
	}

	loaded, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if loaded.Len() != series.Len() {
		t.Fatalf("expected %d samples, got %d", series.Len(), loaded.Len())
	}
	for i := range series.Acc {
		if math.Abs(loaded.Acc[i]-series.Acc[i]) > 1e-12 {
			t.Fatalf("acc[%d]: expected %g, got %g", i, series.Acc[i], loaded.Acc[i])
		}
		if math.Abs(loaded.Theta[i]-series.Theta[i]) > 1e-12 {
			t.Fatalf("theta[%d]: expected %g, got %g", i, series.Theta[i], loaded.Theta[i])
		}
	}
}

func TestListEmpty(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "does-not-exist"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListFindsSavedRuns(t *testing.T) {
	series, params := testSeries(t)

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	for _, dc := range []float64{10, 100} {
		if _, err := st.Save(dc, 1, params.WithDc(dc), series); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	series, params := testSeries(t)

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	runID, err := st.Save(params.Dc, 7, params, series)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, meta, series); err != nil {
		t.Fatalf("export failed: %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	series, _ := testSeries(t)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, series); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != series.Len()+1 {
		t.Errorf("expected %d lines, got %d", series.Len()+1, len(lines))
	}
	if lines[0] != "time,mu,theta,velocity,acc,acc_noise" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}
