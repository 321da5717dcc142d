package factory

import "math"

// simplexStatus is the outcome of a tableau solve.
type simplexStatus int

const (
	simplexOptimal simplexStatus = iota
	simplexInfeasible
	simplexUnbounded
)

// simplexResult holds the value of every recipe variable plus the
// objective value reached. Slack, surplus and artificial columns are
// unnamed and do not appear in Values.
type simplexResult struct {
	Status    simplexStatus
	Values    map[string]float64 // by column name, see tableau.colName
	Objective float64
}

const simplexEps = 1e-9

// maxSimplexIterations bounds the pivot loop; exceeding it surfaces as a
// NumericAnomaly rather than looping — it should never trigger given the
// LPs this package builds (bounded, feasible-by-construction capacity
// rows), but a runaway degenerate tableau must fail loudly, not hang.
const maxSimplexIterations = 20000

// tableau is a dense two-phase simplex tableau. Columns are, in order:
// the LP's recipe variables (VarOrder), then, walking the constraints in
// order, one slack for a Le row, a (surplus, artificial) pair for a Ge
// row, or one artificial for an Eq row — so column layout is fully
// determined by the LP alone (determinism contract, spec §5).
type tableau struct {
	rows    [][]float64 // len(constraints) rows, each len(cols)+1 (last = RHS)
	colName []string
	colKind []columnKind
	bas     []int // bas[i] = column index currently basic in row i
}

type columnKind int

const (
	colVariable columnKind = iota
	colSlack
	colSurplus
	colArtificial
)

// buildTableau lowers lp into standard form with an initial basic
// feasible solution (every row's basic variable is its own slack or
// artificial, RHS normalized to be >= 0).
func buildTableau(lp *LP) *tableau {
	n := len(lp.VarOrder)
	varIndex := make(map[string]int, n)
	for i, name := range lp.VarOrder {
		varIndex[name] = i
	}

	t := &tableau{}
	t.colName = append(t.colName, lp.VarOrder...)
	for range lp.VarOrder {
		t.colKind = append(t.colKind, colVariable)
	}

	m := len(lp.Constraints)
	t.rows = make([][]float64, m)
	t.bas = make([]int, m)

	for i, c := range lp.Constraints {
		rhs := c.RHS
		rel := c.Rel
		row := make([]float64, n) // extended with extra columns + RHS below
		for name, coeff := range c.Coeffs {
			row[varIndex[name]] = coeff
		}
		if rhs < 0 {
			rhs = -rhs
			for j := range row {
				row[j] = -row[j]
			}
			switch rel {
			case Le:
				rel = Ge
			case Ge:
				rel = Le
			}
		}

		switch rel {
		case Le:
			slackCol := t.addColumn(colSlack, "")
			row = extendTo(row, slackCol+1)
			row[slackCol] = 1
			t.bas[i] = slackCol
		case Ge:
			surplusCol := t.addColumn(colSurplus, "")
			artCol := t.addColumn(colArtificial, "")
			row = extendTo(row, artCol+1)
			row[surplusCol] = -1
			row[artCol] = 1
			t.bas[i] = artCol
		case Eq:
			artCol := t.addColumn(colArtificial, "")
			row = extendTo(row, artCol+1)
			row[artCol] = 1
			t.bas[i] = artCol
		}

		row = append(row, rhs)
		t.rows[i] = row
	}

	// Pad every row out to the final column count (+1 for RHS); later
	// constraints may have added columns after an earlier row was built.
	total := len(t.colName)
	for i, row := range t.rows {
		if len(row) < total+1 {
			rhs := row[len(row)-1]
			row = extendTo(row[:len(row)-1], total)
			row = append(row, rhs)
			t.rows[i] = row
		}
	}

	return t
}

func (t *tableau) addColumn(kind columnKind, name string) int {
	t.colName = append(t.colName, name)
	t.colKind = append(t.colKind, kind)
	return len(t.colName) - 1
}

func extendTo(row []float64, n int) []float64 {
	for len(row) < n {
		row = append(row, 0)
	}
	return row
}

// solvePhase runs the primal simplex with Bland's rule (lowest-index
// entering and leaving variable on ties) against costRow, skipping any
// column index present in excluded as a candidate to enter the basis.
// Mutates t.rows/t.bas in place; returns the reached status.
func (t *tableau) solvePhase(costRow []float64, excluded map[int]bool) simplexStatus {
	n := len(t.colName)
	// Canonicalize: zero out cost-row entries for columns currently basic.
	for i, b := range t.bas {
		if costRow[b] == 0 {
			continue
		}
		factor := costRow[b]
		for j := 0; j <= n; j++ {
			costRow[j] -= factor * t.rows[i][j]
		}
	}

	for iter := 0; iter < maxSimplexIterations; iter++ {
		entering := -1
		for j := 0; j < n; j++ {
			if excluded[j] {
				continue
			}
			if costRow[j] < -simplexEps {
				entering = j
				break
			}
		}
		if entering == -1 {
			return simplexOptimal
		}

		leaving := -1
		bestRatio := math.Inf(1)
		for i, row := range t.rows {
			if row[entering] <= simplexEps {
				continue
			}
			ratio := row[n] / row[entering]
			if ratio < bestRatio-simplexEps {
				bestRatio = ratio
				leaving = i
			} else if ratio < bestRatio+simplexEps && leaving != -1 && t.bas[i] < t.bas[leaving] {
				leaving = i
			} else if leaving == -1 {
				bestRatio = ratio
				leaving = i
			}
		}
		if leaving == -1 {
			return simplexUnbounded
		}

		t.pivot(leaving, entering, costRow)
		t.bas[leaving] = entering
	}

	return simplexUnbounded // iteration budget exhausted; caller treats as anomaly
}

func (t *tableau) pivot(leaving, entering int, costRow []float64) {
	n := len(t.colName)
	pivotRow := t.rows[leaving]
	pivotVal := pivotRow[entering]
	for j := 0; j <= n; j++ {
		pivotRow[j] /= pivotVal
	}
	for i, row := range t.rows {
		if i == leaving {
			continue
		}
		factor := row[entering]
		if factor == 0 {
			continue
		}
		for j := 0; j <= n; j++ {
			row[j] -= factor * pivotRow[j]
		}
	}
	factor := costRow[entering]
	if factor != 0 {
		for j := 0; j <= n; j++ {
			costRow[j] -= factor * pivotRow[j]
		}
	}
}

// values reads off the current value of every column from the tableau's
// basis (non-basic columns are implicitly 0).
func (t *tableau) values() map[string]float64 {
	n := len(t.colName)
	out := make(map[string]float64, n)
	for _, name := range t.colName {
		if name != "" {
			out[name] = 0
		}
	}
	for i, b := range t.bas {
		if t.colName[b] != "" {
			out[t.colName[b]] = t.rows[i][n]
		}
	}
	return out
}

// columnValue returns the value of column col regardless of whether it
// has a name (slack/surplus columns are unnamed in t.colName).
func (t *tableau) columnValue(col int) float64 {
	for i, b := range t.bas {
		if b == col {
			return t.rows[i][len(t.colName)]
		}
	}
	return 0
}

// solve runs phase 1 (feasibility: minimize Σ artificials) then, if
// feasible, phase 2 (minimize lp.Objective) on the same tableau, and
// returns the solved variable values plus per-constraint slack values
// (for bottleneck-hint extraction — slackOf[i] is NaN for Eq rows).
func solve(lp *LP) (simplexResult, []float64) {
	t := buildTableau(lp)
	n := len(t.colName)

	artCols := map[int]bool{}
	for j, kind := range t.colKind {
		if kind == colArtificial {
			artCols[j] = true
		}
	}

	phase1Cost := make([]float64, n+1)
	for j := range artCols {
		phase1Cost[j] = 1
	}
	status := t.solvePhase(phase1Cost, map[int]bool{})
	if status == simplexUnbounded {
		return simplexResult{Status: simplexUnbounded}, nil
	}
	if phase1Cost[n] < -simplexEps {
		// Phase-1 minimum (stored as -RHS of the cost row after pivoting)
		// is strictly negative, i.e. Σ artificials > 0: infeasible.
		return simplexResult{Status: simplexInfeasible}, nil
	}

	// Pivot every artificial still basic after phase 1 out of the basis
	// on a non-artificial column, so phase 2 cannot raise it again. A row
	// with no such column is redundant and its artificial stays put.
	for i, b := range t.bas {
		if !artCols[b] {
			continue
		}
		for j := 0; j < n; j++ {
			if !artCols[j] && math.Abs(t.rows[i][j]) > simplexEps {
				t.pivot(i, j, phase1Cost)
				t.bas[i] = j
				break
			}
		}
	}

	phase2Cost := make([]float64, n+1)
	for j, name := range t.colName {
		if c, ok := lp.Objective[name]; ok {
			phase2Cost[j] = c
		}
	}
	status = t.solvePhase(phase2Cost, artCols)
	if status == simplexUnbounded {
		return simplexResult{Status: simplexUnbounded}, nil
	}

	values := t.values()
	slackOf := make([]float64, len(lp.Constraints))
	colCursor := len(lp.VarOrder)
	for i, c := range lp.Constraints {
		switch c.Rel {
		case Le:
			slackOf[i] = t.columnValue(colCursor)
			colCursor++
		case Ge:
			slackOf[i] = t.columnValue(colCursor)
			colCursor += 2
		case Eq:
			slackOf[i] = math.NaN()
			colCursor++
		}
	}

	obj := 0.0
	for name, c := range lp.Objective {
		obj += c * values[name]
	}

	return simplexResult{Status: simplexOptimal, Values: values, Objective: obj}, slackOf
}
