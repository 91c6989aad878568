// Package report writes a machine-readable YAML summary of a bundle run.
package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// Status values for FileRecord.Status.
const (
	StatusWritten = "written"
	StatusFailed  = "failed"
)

// Report is the serialized form of a bundle run.
type Report struct {
	Root           string       `yaml:"root"`
	Output         string       `yaml:"output"`
	OutputChecksum string       `yaml:"output_checksum"`
	ManifestCount  int          `yaml:"manifest_count"`
	WrittenCount   int          `yaml:"written_count"`
	Files          []FileRecord `yaml:"files"`
}

// FileRecord describes one manifest entry.
type FileRecord struct {
	Path     string `yaml:"path"`
	ID       string `yaml:"id"`
	Size     int64  `yaml:"size"`
	Status   string `yaml:"status"`
	Checksum string `yaml:"checksum,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// FromSummary converts a run summary into a report, keeping manifest order.
func FromSummary(summary srcbundle.Summary) Report {
	r := Report{
		Root:           summary.Root,
		Output:         summary.Output,
		OutputChecksum: summary.OutputChecksum,
		ManifestCount:  summary.ManifestCount,
		WrittenCount:   summary.WrittenCount,
		Files:          make([]FileRecord, 0, len(summary.Outcomes)),
	}

	for _, o := range summary.Outcomes {
		rec := FileRecord{
			Path:   o.Entry.RelativePath,
			ID:     o.Entry.ID.String(),
			Size:   o.Entry.SizeBytes,
			Status: StatusWritten,
		}
		if o.Written {
			rec.Checksum = o.Checksum
		} else {
			rec.Status = StatusFailed
			if o.Err != nil {
				rec.Error = o.Err.Error()
			}
		}
		r.Files = append(r.Files, rec)
	}

	return r
}

// Marshal renders the report as YAML.
func (r Report) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteFile writes the YAML report to path.
func WriteFile(path string, summary srcbundle.Summary) error {
	data, err := FromSummary(summary).Marshal()
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Load reads a report previously written by WriteFile.
func Load(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("failed to parse report: %w", err)
	}
	return r, nil
}
