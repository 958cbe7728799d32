// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/numlab/finitediff"
	"github.com/katalvlaran/numlab/internal/exercise"
)

func num(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }
func sci(v float64) string            { return strconv.FormatFloat(v, 'e', 3, 64) }

// Roots renders the resonance exercise: a summary per method and the
// side-by-side iteration traces.
func Roots(r exercise.RootsResult) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Resonance: f(R) = %s Hz on [%s, %s] Ω", num(r.Target, 3), num(r.BracketLow, 3), num(r.BracketHi, 3))))
	b.WriteByte('\n')

	summary := [][]string{}
	for _, m := range []exercise.MethodResult{r.Bisection, r.Newton} {
		summary = append(summary, []string{m.Method, num(m.Root, 6), num(m.Frequency, 6), strconv.Itoa(m.Estimates)})
	}
	b.WriteString(newTable([]string{"method", "R (Ω)", "f(R) (Hz)", "estimates"}, summary, nil).Render())
	b.WriteByte('\n')

	n := max(len(r.Bisection.Trace), len(r.Newton.Trace))
	trace := make([][]string, n)
	for k := range trace {
		trace[k] = []string{strconv.Itoa(k), at(r.Bisection.Trace, k), at(r.Newton.Trace, k)}
	}
	b.WriteString(newTable([]string{"k", "bisection", "newton"}, trace, nil).Render())
	b.WriteByte('\n')
	b.WriteString(NoteStyle.Render(fmt.Sprintf("critical resistance %s Ω; Newton derivative: %s", num(r.Critical, 3), r.Derivative)))
	b.WriteByte('\n')

	return b.String()
}

func at(trace []float64, k int) string {
	if k < len(trace) {
		return num(trace[k], 6)
	}

	return ""
}

// Linear renders the mesh-current exercise.
func Linear(r exercise.LinearResult) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Mesh currents: A·I = V"))
	b.WriteByte('\n')

	rows := make([][]string, len(r.Gaussian))
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("I%d", i+1), num(r.Gaussian[i], 6), num(r.GaussJordan[i], 6), sci(r.Residual[i])}
	}
	b.WriteString(newTable([]string{"mesh", "gaussian (A)", "gauss-jordan (A)", "residual"}, rows, nil).Render())
	b.WriteByte('\n')

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		matrixBlock("adj(A)", r.Adjoint, 0),
		"  ",
		matrixBlock("A⁻¹", r.Inverse, 6),
	))
	b.WriteByte('\n')
	b.WriteString(NoteStyle.Render(fmt.Sprintf("det(A) = %s (%s); max |A·x − b| = %s; A·A⁻¹ = I: %t", num(r.Determinant, 6), r.Strategy, sci(r.MaxResidual), r.InverseOK)))
	b.WriteByte('\n')

	return b.String()
}

func matrixBlock(title string, m [][]float64, prec int) string {
	var headers []string
	if len(m) > 0 {
		for j := range m[0] {
			headers = append(headers, strconv.Itoa(j+1))
		}
	}
	rows := make([][]string, len(m))
	for i, row := range m {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = num(v, prec)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, newTable(headers, rows, nil).Render())
}

// Diff renders the thermistor exercise: the derivative table, the
// relative-error table with each row's best scheme highlighted, and the
// convergence study.
func Diff(r exercise.DiffResult) string {
	var b strings.Builder
	headers := []string{"T (K)", "exact"}
	for _, s := range finitediff.Schemes {
		headers = append(headers, s.String())
	}

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Thermistor dR/dT (Ω/K), h = %g, exact: %s", r.Step, r.Derivative)))
	b.WriteByte('\n')
	deriv := make([][]string, len(r.Points))
	for i, p := range r.Points {
		deriv[i] = []string{num(p.X, 1), num(p.Exact, 6)}
		for _, s := range finitediff.Schemes {
			deriv[i] = append(deriv[i], num(p.Estimate[s], 6))
		}
	}
	b.WriteString(newTable(headers, deriv, nil).Render())
	b.WriteByte('\n')

	b.WriteString(TitleStyle.Render("Relative error (%)"))
	b.WriteByte('\n')
	errs := make([][]string, len(r.Points))
	for i, p := range r.Points {
		errs[i] = []string{num(p.X, 1), num(p.Exact, 6)}
		for _, s := range finitediff.Schemes {
			errs[i] = append(errs[i], sci(p.RelErr[s]))
		}
	}
	best := func(row, col int) bool {
		return col >= 2 && row < len(r.Points) && finitediff.Scheme(col-2) == r.Points[row].Best()
	}
	b.WriteString(newTable(headers, errs, best).Render())
	b.WriteByte('\n')

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Absolute error vs h at T = %g K", r.StudyAt)))
	b.WriteByte('\n')
	studyHeaders := []string{"h"}
	for _, s := range finitediff.Schemes {
		studyHeaders = append(studyHeaders, s.String())
	}
	study := make([][]string, 0, len(r.Study)+1)
	for _, row := range r.Study {
		cells := []string{num(row.H, 4)}
		for _, s := range finitediff.Schemes {
			cells = append(cells, sci(row.AbsErr[s]))
		}
		study = append(study, cells)
	}
	orders := []string{"order"}
	for _, s := range finitediff.Schemes {
		orders = append(orders, num(r.Orders[s], 2))
	}
	study = append(study, orders)
	b.WriteString(newTable(studyHeaders, study, nil).Render())
	b.WriteByte('\n')

	return b.String()
}

// WriteTables renders every non-nil section of doc to w.
func WriteTables(w io.Writer, doc Document) error {
	var parts []string
	if doc.Roots != nil {
		parts = append(parts, Roots(*doc.Roots))
	}
	if doc.Linear != nil {
		parts = append(parts, Linear(*doc.Linear))
	}
	if doc.Diff != nil {
		parts = append(parts, Diff(*doc.Diff))
	}
	_, err := io.WriteString(w, strings.Join(parts, "\n"))

	return err
}
