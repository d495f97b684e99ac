// Command bench запускает колонию многократно с разными сидами на
// нескольких встроенных CSP и печатает агрегированную статистику
// (internal/statsutil) — эмпирический аналог internal/bench теста, но без
// флагов командной строки и без CSV-вывода.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/h00dieB0y/antares/internal/colony"
	"github.com/h00dieB0y/antares/internal/construct"
	"github.com/h00dieB0y/antares/internal/cspmodel"
	"github.com/h00dieB0y/antares/internal/propagate"
	"github.com/h00dieB0y/antares/internal/statsutil"
	"github.com/h00dieB0y/antares/internal/valuesel"
	"github.com/h00dieB0y/antares/internal/varsel"
)

const (
	runsPerCase = 20
	baseSeed    = int64(1000)
	maxCycles   = 200
)

type caseDef struct {
	name    string
	problem func() *cspmodel.Problem
}

func main() {
	cases := []caseDef{
		{"раскраска-графа-5-узлов", pentagonColoring},
		{"шесть-ферзей", nQueens(6)},
		{"неразрешимая-пара", unsatisfiablePair},
	}

	for _, c := range cases {
		summary, err := runCase(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", c.name, err)
			os.Exit(1)
		}
		fmt.Printf("%s (%d запусков, решено %d/%d)\n", c.name, summary.Runs, summary.Solved, summary.Runs)
		fmt.Printf("  размер присваивания: лучший=%d среднее=%.2f стандартное отклонение=%.2f\n",
			summary.SizeStats.Best, summary.SizeStats.Mean, summary.SizeStats.Std)
		fmt.Printf("  циклов до остановки: максимум=%d среднее=%.2f стандартное отклонение=%.2f\n\n",
			summary.CycleStats.Best, summary.CycleStats.Mean, summary.CycleStats.Std)
	}
}

func runCase(c caseDef) (statsutil.Summary, error) {
	outcomes := make([]statsutil.RunOutcome, 0, runsPerCase)

	for i := 0; i < runsPerCase; i++ {
		seed := baseSeed + int64(i)

		problem := c.problem()
		params := colony.DefaultParameters()
		col, err := colony.New(problem, params)
		if err != nil {
			return statsutil.Summary{}, err
		}

		ctor, err := construct.New(varsel.SmallestDomain, valuesel.New(seed, nil), params.Alpha, params.Beta)
		if err != nil {
			return statsutil.Summary{}, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		result, err := col.Solve(ctx, ctor, propagate.New(problem), maxCycles)
		cancel()
		if err != nil {
			return statsutil.Summary{}, fmt.Errorf("run %d: %w", i, err)
		}

		outcomes = append(outcomes, statsutil.RunOutcome{
			Solved:       result.Solved,
			AssignedSize: result.Assignment.Size(),
			CyclesRun:    result.CyclesRun,
		})
	}

	return statsutil.Summarize(outcomes), nil
}

func pentagonColoring() *cspmodel.Problem {
	colors := []int{1, 2, 3}
	vars := make([]*cspmodel.Variable, 5)
	for i := range vars {
		vars[i], _ = cspmodel.NewVariable(i, fmt.Sprintf("N%d", i), colors)
	}
	var constraints []cspmodel.Constraint
	for i := 0; i < len(vars); i++ {
		j := (i + 1) % len(vars)
		constraints = append(constraints, cspmodel.NewNotEqual(vars[i], vars[j]))
	}
	problem, _ := cspmodel.NewProblem(vars, constraints)
	return problem
}

func nQueens(n int) func() *cspmodel.Problem {
	return func() *cspmodel.Problem {
		domain := make([]int, n)
		for i := range domain {
			domain[i] = i + 1
		}
		vars := make([]*cspmodel.Variable, n)
		for i := range vars {
			vars[i], _ = cspmodel.NewVariable(i, fmt.Sprintf("Q%d", i), domain)
		}
		var constraints []cspmodel.Constraint
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				constraints = append(constraints, newQueenConstraint(vars[i], i, vars[j], j))
			}
		}
		problem, _ := cspmodel.NewProblem(vars, constraints)
		return problem
	}
}

// queenConstraint исключает совпадение строк и диагональные атаки между
// двумя ферзями, чьи столбцы col1 < col2 зафиксированы заранее.
type queenConstraint struct {
	v1, v2     *cspmodel.Variable
	col1, col2 int
}

func newQueenConstraint(v1 *cspmodel.Variable, col1 int, v2 *cspmodel.Variable, col2 int) *queenConstraint {
	return &queenConstraint{v1: v1, v2: v2, col1: col1, col2: col2}
}

func (q *queenConstraint) InvolvedVariables() []*cspmodel.Variable {
	return []*cspmodel.Variable{q.v1, q.v2}
}

func (q *queenConstraint) IsSatisfiedBy(assignment *cspmodel.Assignment) bool {
	r1, ok1 := assignment.Get(q.v1)
	r2, ok2 := assignment.Get(q.v2)
	if !ok1 || !ok2 {
		return true
	}
	if r1 == r2 {
		return false
	}
	colDiff := q.col2 - q.col1
	if colDiff < 0 {
		colDiff = -colDiff
	}
	rowDiff := r1 - r2
	if rowDiff < 0 {
		rowDiff = -rowDiff
	}
	return rowDiff != colDiff
}

func unsatisfiablePair() *cspmodel.Problem {
	x, _ := cspmodel.NewVariable(0, "X", []int{1})
	y, _ := cspmodel.NewVariable(1, "Y", []int{1})
	problem, _ := cspmodel.NewProblem(
		[]*cspmodel.Variable{x, y},
		[]cspmodel.Constraint{cspmodel.NewNotEqual(x, y)},
	)
	return problem
}
