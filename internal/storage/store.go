package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/faultslip/internal/friction"
)

// Store persists one directory per run under a base directory:
// metadata.json plus series.csv with the five state series.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Dc        float64         `json:"dc"`
	Seed      int64           `json:"seed"`
	Params    friction.Params `json:"params"`
}

func (s *Store) Save(dc float64, seed int64, params friction.Params, series *friction.Series) (string, error) {
	runID := fmt.Sprintf("dc%g_%d", dc, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Dc:        dc,
		Seed:      seed,
		Params:    params,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := writeSeries(w, series); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (*friction.Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &friction.Series{}, nil
	}

	n := len(records) - 1
	series := &friction.Series{
		Time:     make([]float64, 0, n),
		Mu:       make([]float64, 0, n),
		Theta:    make([]float64, 0, n),
		Velocity: make([]float64, 0, n),
		Acc:      make([]float64, 0, n),
		AccNoise: make([]float64, 0, n),
	}

	for _, record := range records[1:] {
		if len(record) != 6 {
			continue
		}
		vals := make([]float64, 6)
		ok := true
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		series.Time = append(series.Time, vals[0])
		series.Mu = append(series.Mu, vals[1])
		series.Theta = append(series.Theta, vals[2])
		series.Velocity = append(series.Velocity, vals[3])
		series.Acc = append(series.Acc, vals[4])
		series.AccNoise = append(series.AccNoise, vals[5])
	}
	return series, nil
}

func writeSeries(w *csv.Writer, series *friction.Series) error {
	if err := w.Write([]string{"time", "mu", "theta", "velocity", "acc", "acc_noise"}); err != nil {
		return err
	}
	for i := 0; i < series.Len(); i++ {
		row := []string{
			strconv.FormatFloat(series.Time[i], 'f', 6, 64),
			strconv.FormatFloat(series.Mu[i], 'g', -1, 64),
			strconv.FormatFloat(series.Theta[i], 'g', -1, 64),
			strconv.FormatFloat(series.Velocity[i], 'g', -1, 64),
			strconv.FormatFloat(series.Acc[i], 'g', -1, 64),
			strconv.FormatFloat(series.AccNoise[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
