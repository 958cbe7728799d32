// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/finitediff"
	"github.com/katalvlaran/numlab/internal/exercise"
)

// ErrUnknownFormat is returned for an output format other than table, yaml or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects how results are written.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Document bundles the results of one driver run. Sections that were not
// run are nil and omitted from every output.
type Document struct {
	RunID     uuid.UUID
	Generated time.Time
	Roots     *exercise.RootsResult
	Linear    *exercise.LinearResult
	Diff      *exercise.DiffResult
}

// NewDocument stamps an empty document with a fresh run id.
func NewDocument(now time.Time) Document {
	return Document{RunID: uuid.New(), Generated: now.UTC()}
}

// Write emits doc to w in format f.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatTable:
		return WriteTables(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(exportOf(doc)); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(exportOf(doc)); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

// export is the serialized form of Document. Per-scheme arrays become maps
// keyed by scheme name so the output is self-describing.
type export struct {
	RunID     string                 `json:"run_id" yaml:"run_id"`
	Generated string                 `json:"generated" yaml:"generated"`
	Roots     *exercise.RootsResult  `json:"roots,omitempty" yaml:"roots,omitempty"`
	Linear    *exercise.LinearResult `json:"linear,omitempty" yaml:"linear,omitempty"`
	Diff      *diffExport            `json:"diff,omitempty" yaml:"diff,omitempty"`
}

type diffExport struct {
	Step       float64            `json:"step" yaml:"step"`
	Derivative string             `json:"derivative" yaml:"derivative"`
	Points     []pointExport      `json:"points" yaml:"points"`
	StudyAt    float64            `json:"study_at" yaml:"study_at"`
	Study      []studyExport      `json:"study" yaml:"study"`
	Orders     map[string]float64 `json:"orders" yaml:"orders"`
}

type pointExport struct {
	T          float64            `json:"t" yaml:"t"`
	Exact      float64            `json:"exact" yaml:"exact"`
	Estimate   map[string]float64 `json:"estimate" yaml:"estimate"`
	RelErrPct  map[string]float64 `json:"rel_err_pct" yaml:"rel_err_pct"`
	BestScheme string             `json:"best" yaml:"best"`
}

type studyExport struct {
	H      float64            `json:"h" yaml:"h"`
	AbsErr map[string]float64 `json:"abs_err" yaml:"abs_err"`
}

func exportOf(doc Document) export {
	out := export{
		RunID:     doc.RunID.String(),
		Generated: doc.Generated.Format(time.RFC3339),
		Roots:     doc.Roots,
		Linear:    doc.Linear,
	}
	if doc.Diff == nil {
		return out
	}

	d := doc.Diff
	de := &diffExport{
		Step:       d.Step,
		Derivative: d.Derivative,
		Points:     make([]pointExport, len(d.Points)),
		StudyAt:    d.StudyAt,
		Study:      make([]studyExport, len(d.Study)),
		Orders:     bySchemeName(d.Orders),
	}
	for i, p := range d.Points {
		de.Points[i] = pointExport{
			T:          p.X,
			Exact:      p.Exact,
			Estimate:   bySchemeName(p.Estimate),
			RelErrPct:  bySchemeName(p.RelErr),
			BestScheme: p.Best().String(),
		}
	}
	for i, row := range d.Study {
		de.Study[i] = studyExport{H: row.H, AbsErr: bySchemeName(row.AbsErr)}
	}
	out.Diff = de

	return out
}

func bySchemeName(v [finitediff.NumSchemes]float64) map[string]float64 {
	m := make(map[string]float64, len(v))
	for _, s := range finitediff.Schemes {
		m[s.String()] = v[s]
	}

	return m
}
