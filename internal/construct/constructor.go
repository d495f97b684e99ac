// Package construct реализует обход одного муравья (spec.md §4.2):
// чередование вероятностных решений с распространением ограничений и
// замыканием синглтонов. Никогда не паникует на условиях провала поиска —
// возвращает то частичное присваивание, которое успело построить.
package construct

import (
	"fmt"

	"github.com/h00dieB0y/antares/internal/cspmodel"
	"github.com/h00dieB0y/antares/internal/pheromone"
	"github.com/h00dieB0y/antares/internal/propagate"
	"github.com/h00dieB0y/antares/internal/valuesel"
	"github.com/h00dieB0y/antares/internal/varsel"
)

// Propagator re-exports the CSPPropagator contract (spec.md §4.5) so
// callers outside internal/propagate can depend on construct without an
// extra import; *propagate.ForwardChecker satisfies it.
type Propagator = propagate.Propagator

// Constructor собирает присваивание для одного муравья.
type Constructor struct {
	SelectVariable varsel.Strategy
	SelectValue    *valuesel.Roulette
	Alpha, Beta    float64
}

// New создаёт Constructor. selectVariable и selectValue не должны быть nil.
func New(selectVariable varsel.Strategy, selectValue *valuesel.Roulette, alpha, beta float64) (*Constructor, error) {
	if selectVariable == nil {
		return nil, fmt.Errorf("construct: selectVariable must not be nil")
	}
	if selectValue == nil {
		return nil, fmt.Errorf("construct: selectValue must not be nil")
	}
	return &Constructor{SelectVariable: selectVariable, SelectValue: selectValue, Alpha: alpha, Beta: beta}, nil
}

// Construct строит (возможно, частичное) присваивание для problem,
// опираясь на matrix для вероятностного выбора значения и propagator для
// распространения ограничений. propagator сбрасывается в начале обхода.
//
// Возвращает ошибку только для категории 3 (вырождение весов, spec.md §7)
// — все остальные условия провала поиска поглощаются и возвращают
// частичное присваивание с nil-ошибкой.
func (c *Constructor) Construct(problem *cspmodel.Problem, matrix *pheromone.Matrix) (*cspmodel.Assignment, error) {
	return c.ConstructWith(problem, matrix, propagate.New(problem))
}

// ConstructWith — вариант Construct, принимающий уже созданный propagator
// (для переиспользования одного экземпляра между муравьями цикла,
// spec.md §5 — "Propagator: reused across ants via reset()").
func (c *Constructor) ConstructWith(problem *cspmodel.Problem, matrix *pheromone.Matrix, propagator Propagator) (*cspmodel.Assignment, error) {
	assignment := cspmodel.NewAssignment()
	propagator.Reset()
	return c.construct(problem, matrix, propagator, assignment)
}

func (c *Constructor) construct(problem *cspmodel.Problem, matrix *pheromone.Matrix, propagator Propagator, assignment *cspmodel.Assignment) (*cspmodel.Assignment, error) {
	n := problem.NumVariables()

	for !assignment.IsComplete(n) {
		v, ok := c.SelectVariable(problem, assignment, propagator)
		if !ok {
			return assignment, nil
		}

		domain := propagator.CurrentDomain(v)
		if len(domain) == 0 {
			return assignment, nil
		}

		value, ok, err := c.SelectValue.Select(v, domain, matrix, c.Alpha, c.Beta)
		if err != nil {
			return nil, err
		}
		if !ok {
			return assignment, nil
		}

		assignment.Assign(v, value)
		if !propagator.Propagate(assignment) {
			return assignment, nil
		}

		if !closeSingletons(problem, propagator, assignment) {
			return assignment, nil
		}
	}

	return assignment, nil
}

// closeSingletons обязывает каждую неназначенную переменную, чей текущий
// домен сведён к одному значению, принять это значение — и распространяет
// после каждого такого назначения, до достижения неподвижной точки.
// Возвращает false, если какое-либо из принудительных распространений
// провалилось.
func closeSingletons(problem *cspmodel.Problem, propagator Propagator, assignment *cspmodel.Assignment) bool {
	for {
		forced := pendingSingletons(problem, propagator, assignment)
		if len(forced) == 0 {
			return true
		}
		for _, v := range forced {
			domain := propagator.CurrentDomain(v)
			if len(domain) != 1 {
				continue // was closed by an earlier forced assignment this round
			}
			assignment.Assign(v, domain[0])
			if !propagator.Propagate(assignment) {
				return false
			}
		}
	}
}

// pendingSingletons returns singleton, unassigned variables in problem's
// declared order — deterministic so closure order never depends on map
// iteration.
func pendingSingletons(problem *cspmodel.Problem, propagator Propagator, assignment *cspmodel.Assignment) []*cspmodel.Variable {
	singles := make(map[int]bool)
	for _, v := range propagator.SingletonVariables() {
		singles[v.ID] = true
	}
	var out []*cspmodel.Variable
	for _, v := range problem.Variables() {
		if singles[v.ID] && !assignment.IsAssigned(v) {
			out = append(out, v)
		}
	}
	return out
}
