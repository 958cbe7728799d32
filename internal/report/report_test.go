// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/exercise"
	"github.com/katalvlaran/numlab/internal/report"
)

// ReportSuite runs the three default exercises once and renders them in
// every format.
type ReportSuite struct {
	suite.Suite
	doc report.Document
}

func (s *ReportSuite) SetupSuite() {
	cfg := config.Default()
	ctx := context.Background()
	nop := log.NewNopLogger()

	roots, err := exercise.Roots(ctx, cfg.Resonance, nop)
	s.Require().NoError(err)
	linear, err := exercise.Linear(cfg.Circuit, nop)
	s.Require().NoError(err)
	diff, err := exercise.Differentiate(ctx, cfg.Thermistor, nop)
	s.Require().NoError(err)

	s.doc = report.NewDocument(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s.doc.Roots, s.doc.Linear, s.doc.Diff = &roots, &linear, &diff
}

func (s *ReportSuite) TestTables() {
	var buf bytes.Buffer
	s.Require().NoError(report.Write(&buf, report.FormatTable, s.doc))
	out := buf.String()

	for _, frag := range []string{
		"bisection", "newton", "80.957031",
		"gauss-jordan", "1.928571", "adj(A)", "A⁻¹",
		"richardson", "Relative error", "order",
	} {
		s.Contains(out, frag)
	}
}

func (s *ReportSuite) TestYAML() {
	var buf bytes.Buffer
	s.Require().NoError(report.Write(&buf, report.FormatYAML, s.doc))

	var got struct {
		RunID     string `yaml:"run_id"`
		Generated string `yaml:"generated"`
		Roots     struct {
			Bisection struct {
				Root      float64 `yaml:"root"`
				Estimates int     `yaml:"estimates"`
			} `yaml:"bisection"`
		} `yaml:"roots"`
		Linear struct {
			Adjoint [][]float64 `yaml:"adjoint"`
		} `yaml:"linear"`
		Diff struct {
			Points []struct {
				T        float64            `yaml:"t"`
				Estimate map[string]float64 `yaml:"estimate"`
				Best     string             `yaml:"best"`
			} `yaml:"points"`
			Orders map[string]float64 `yaml:"orders"`
		} `yaml:"diff"`
	}
	s.Require().NoError(yaml.Unmarshal(buf.Bytes(), &got))

	_, err := uuid.Parse(got.RunID)
	s.NoError(err)
	s.Equal(s.doc.RunID.String(), got.RunID)
	s.Equal("2024-05-01T12:00:00Z", got.Generated)
	s.Equal(80.95703125, got.Roots.Bisection.Root)
	s.Equal(10, got.Roots.Bisection.Estimates)
	s.Equal([][]float64{{16, 4, 4}, {6, 19, 5}, {2, -3, 11}}, got.Linear.Adjoint)
	s.Require().Len(got.Diff.Points, 11)
	s.Equal(250.0, got.Diff.Points[0].T)
	s.Len(got.Diff.Points[0].Estimate, 4)
	s.Contains(got.Diff.Orders, "richardson")
}

func (s *ReportSuite) TestJSON() {
	var buf bytes.Buffer
	s.Require().NoError(report.Write(&buf, report.FormatJSON, s.doc))

	var got map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &got))
	for _, key := range []string{"run_id", "generated", "roots", "linear", "diff"} {
		s.Contains(got, key)
	}
}

func (s *ReportSuite) TestOmitsMissingSections() {
	doc := report.NewDocument(time.Now())
	doc.Linear = s.doc.Linear

	var buf bytes.Buffer
	s.Require().NoError(report.Write(&buf, report.FormatJSON, doc))
	var got map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &got))
	s.Contains(got, "linear")
	s.NotContains(got, "roots")
	s.NotContains(got, "diff")

	buf.Reset()
	s.Require().NoError(report.Write(&buf, report.FormatTable, doc))
	s.Contains(buf.String(), "Mesh currents")
	s.NotContains(buf.String(), "Thermistor")
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportSuite))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"table", "yaml", "json"} {
		f, err := report.ParseFormat(name)
		require.NoError(t, err)
		require.Equal(t, name, string(f))
	}
	_, err := report.ParseFormat("csv")
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	err = report.Write(&bytes.Buffer{}, report.Format("xml"), report.NewDocument(time.Now()))
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestNewDocument_UniqueRunIDs(t *testing.T) {
	t.Parallel()

	a, b := report.NewDocument(time.Now()), report.NewDocument(time.Now())
	require.NotEqual(t, a.RunID, b.RunID)
	require.Equal(t, time.UTC, a.Generated.Location())
}
