// Command democsp демонстрирует Colony.Solve на трёх небольших CSP без
// флагов командной строки (третья задача — сценарий 5 spec.md §8): решаемая задача
// раскраски, решаемая задача N-ферзей малого размера и заведомо
// неразрешимая задача.
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
	"github.com/h00dieB0y/antares/internal/valuesel"
	"github.com/h00dieB0y/antares/internal/varsel"
)

func main() {
	scenarios := []struct {
		name    string
		problem func() *cspmodel.Problem
	}{
		{"раскраска-треугольника", triangleColoring},
		{"четыре-ферзя", fourQueens},
		{"неразрешимая-пара", unsatisfiablePair},
	}

	for _, s := range scenarios {
		if err := runScenario(s.name, s.problem()); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", s.name, err)
			os.Exit(1)
		}
	}
}

func runScenario(name string, problem *cspmodel.Problem) error {
	fmt.Printf("=== %s ===\n", name)

	params := colony.DefaultParameters()
	col, err := colony.New(problem, params)
	if err != nil {
		return err
	}

	ctor, err := construct.New(varsel.SmallestDomain, valuesel.New(1, nil), params.Alpha, params.Beta)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := col.Solve(ctx, ctor, propagate.New(problem), 200)
	if err != nil {
		return err
	}

	if result.Solved {
		fmt.Printf("решено за %d циклов, %d муравьёв оценено, %s\n", result.CyclesRun, result.AntsEvaluated, result.Duration)
		for _, v := range problem.Variables() {
			if value, ok := result.Assignment.Get(v); ok {
				fmt.Printf("  %s = %d\n", v.Name, value)
			}
		}
	} else {
		fmt.Printf("решение не найдено за %d циклов; лучшее частичное присваивание размера %d\n", result.CyclesRun, result.Assignment.Size())
	}
	fmt.Println()
	return nil
}

func triangleColoring() *cspmodel.Problem {
	colors := []int{1, 2, 3}
	a, _ := cspmodel.NewVariable(0, "A", colors)
	b, _ := cspmodel.NewVariable(1, "B", colors)
	c, _ := cspmodel.NewVariable(2, "C", colors)
	problem, _ := cspmodel.NewProblem(
		[]*cspmodel.Variable{a, b, c},
		[]cspmodel.Constraint{
			cspmodel.NewNotEqual(a, b),
			cspmodel.NewNotEqual(b, c),
			cspmodel.NewNotEqual(a, c),
		},
	)
	return problem
}

func fourQueens() *cspmodel.Problem {
	domain := []int{1, 2, 3, 4}
	vars := make([]*cspmodel.Variable, 4)
	for i := range vars {
		vars[i], _ = cspmodel.NewVariable(i, fmt.Sprintf("Q%d", i), domain)
	}

	var constraints []cspmodel.Constraint
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			constraints = append(constraints, newQueenConstraint(vars[i], i, vars[j], j))
		}
	}

	problem, _ := cspmodel.NewProblem(vars, constraints)
	return problem
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
