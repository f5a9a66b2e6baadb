package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Channel   string             `json:"channel"`
	Transform string             `json:"transform"`
	LMax      int                `json:"l_max"`
	Mode      string             `json:"mode"`
	Params    map[string]float64 `json:"params"`
	Summary   map[string]float64 `json:"summary"`
	Periods   int                `json:"periods"`
	Spend     []float64          `json:"spend"`
	Adstocked []float64          `json:"adstocked"`
}

func exportData(meta *RunMetadata, spend, adstocked []float64) ExportData {
	return ExportData{
		Channel:   meta.Channel,
		Transform: meta.Transform,
		LMax:      meta.LMax,
		Mode:      meta.Mode,
		Params:    meta.Params,
		Summary:   meta.Summary,
		Periods:   len(spend),
		Spend:     spend,
		Adstocked: adstocked,
	}
}

func ExportJSON(path string, meta *RunMetadata, spend, adstocked []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, meta, spend, adstocked)
}

func ExportJSONStdout(meta *RunMetadata, spend, adstocked []float64) error {
	return writeJSON(os.Stdout, meta, spend, adstocked)
}

func writeJSON(w io.Writer, meta *RunMetadata, spend, adstocked []float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, spend, adstocked))
}
