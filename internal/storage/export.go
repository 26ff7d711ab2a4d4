package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/faultslip/internal/friction"
)

type ExportData struct {
	ID       string          `json:"id"`
	Dc       float64         `json:"dc"`
	Seed     int64           `json:"seed"`
	Params   friction.Params `json:"params"`
	Steps    int             `json:"steps"`
	Times    []float64       `json:"times"`
	Acc      []float64       `json:"acc"`
	AccNoise []float64       `json:"acc_noise"`
}

func exportData(meta *RunMetadata, series *friction.Series) ExportData {
	return ExportData{
		ID:       meta.ID,
		Dc:       meta.Dc,
		Seed:     meta.Seed,
		Params:   meta.Params,
		Steps:    series.Len(),
		Times:    series.Time,
		Acc:      series.Acc,
		AccNoise: series.AccNoise,
	}
}

func ExportJSON(path string, meta *RunMetadata, series *friction.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(meta, series))
}

func ExportJSONStdout(meta *RunMetadata, series *friction.Series) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(meta, series))
}

func ExportCSV(out io.Writer, series *friction.Series) error {
	w := csv.NewWriter(out)
	defer w.Flush()
	return writeSeries(w, series)
}
