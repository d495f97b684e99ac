// Package colony реализует внешний цикл (spec.md §4.6, §6): инициализация
// феромонов, m муравьёв за цикл, отслеживание глобального лучшего
// присваивания, обновление MMAS, завершение по решению или исчерпанию
// бюджета циклов. Управляющий цикл следует идиоме учителя
// (internal/aco/aco.go, internal/ga/ga.go, …): Config.Validate() на входе,
// ctx.Err() проверяется на границе каждого цикла, никогда внутри обхода
// одного муравья.
package colony

import (
	"context"
	"fmt"
	"time"

	"github.com/h00dieB0y/antares/internal/cspmodel"
	"github.com/h00dieB0y/antares/internal/engresult"
	"github.com/h00dieB0y/antares/internal/pheromone"
	"github.com/h00dieB0y/antares/internal/propagate"
)

// Constructor — контракт, которому должен удовлетворять конструктор
// присваивания, используемый колонией (satisfied by *construct.Constructor).
type Constructor interface {
	ConstructWith(problem *cspmodel.Problem, matrix *pheromone.Matrix, propagator Propagator) (*cspmodel.Assignment, error)
}

// Propagator — контракт CSPPropagator (spec.md §4.5), переиспользуемый
// между муравьями одного цикла через Reset.
type Propagator = propagate.Propagator

// Colony — владелец матрицы феромонов и состояния поиска на протяжении
// всего времени жизни колонии.
type Colony struct {
	problem *cspmodel.Problem
	params  Parameters
	matrix  *pheromone.Matrix
	best    *cspmodel.Assignment
}

// New строит Colony: валидирует параметры и инициализирует матрицу
// феромонов значением τ_max для problem.
func New(problem *cspmodel.Problem, params Parameters) (*Colony, error) {
	if problem == nil {
		return nil, fmt.Errorf("colony: problem must not be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	matrix, err := pheromone.Initialize(problem, params.TauMax)
	if err != nil {
		return nil, err
	}
	return &Colony{
		problem: problem,
		params:  params,
		matrix:  matrix,
		best:    cspmodel.NewAssignment(),
	}, nil
}

// Parameters возвращает параметры колонии.
func (c *Colony) Parameters() Parameters {
	return c.params
}

// Pheromones возвращает матрицу феромонов колонии (для инспекции в тестах
// и инструментах наблюдения).
func (c *Colony) Pheromones() *pheromone.Matrix {
	return c.matrix
}

// BestAssignment возвращает текущее глобально лучшее присваивание с начала
// поиска.
func (c *Colony) BestAssignment() *cspmodel.Assignment {
	return c.best
}

// Solve запускает циклы до maxCycles, ищет решение и обновляет феромоны
// после каждого цикла по правилу MMAS (spec.md §4.6). Возвращает ошибку
// для фатальных категорий (валидация, вырождение весов, аномалия разрыва)
// и при отмене ctx на границе цикла — тогда вместе с ctx.Err()
// возвращается лучшее присваивание на этот момент. Исчерпание бюджета без
// решения не является ошибкой.
func (c *Colony) Solve(ctx context.Context, constructorImpl Constructor, propagator Propagator, maxCycles int) (engresult.Result, error) {
	start := time.Now()

	if maxCycles < 1 {
		return engresult.Result{}, fmt.Errorf("colony: maxCycles must be >= 1 (got %d)", maxCycles)
	}
	if constructorImpl == nil {
		return engresult.Result{}, fmt.Errorf("colony: constructor must not be nil")
	}
	if propagator == nil {
		return engresult.Result{}, fmt.Errorf("colony: propagator must not be nil")
	}

	variables := c.problem.Variables()
	antsEvaluated := 0

	for cycle := 1; cycle <= maxCycles; cycle++ {
		if err := ctx.Err(); err != nil {
			return engresult.Result{
				Assignment:    c.best,
				Solved:        false,
				CyclesRun:     cycle - 1,
				AntsEvaluated: antsEvaluated,
				Duration:      time.Since(start),
				Meta:          map[string]any{"stopped": "context"},
			}, err
		}

		cycleAssignments := make([]*cspmodel.Assignment, 0, c.params.Ants)
		for ant := 0; ant < c.params.Ants; ant++ {
			assignment, err := constructorImpl.ConstructWith(c.problem, c.matrix, propagator)
			if err != nil {
				return engresult.Result{}, err
			}
			antsEvaluated++

			snapshot := assignment.Snapshot()
			cycleAssignments = append(cycleAssignments, snapshot)

			if snapshot.Size() >= c.best.Size() {
				c.best = snapshot
			}
		}

		if err := c.update(cycleAssignments, variables); err != nil {
			return engresult.Result{}, err
		}

		if solution := firstSolution(c.problem, bestOfCycle(cycleAssignments)); solution != nil {
			return engresult.Result{
				Assignment:    solution,
				Solved:        true,
				CyclesRun:     cycle,
				AntsEvaluated: antsEvaluated,
				Duration:      time.Since(start),
				Meta:          map[string]any{"ants": c.params.Ants},
			}, nil
		}
	}

	return engresult.Result{
		Assignment:    c.best,
		Solved:        false,
		CyclesRun:     maxCycles,
		AntsEvaluated: antsEvaluated,
		Duration:      time.Since(start),
		Meta:          map[string]any{"ants": c.params.Ants},
	}, nil
}

// update реализует evaporate → deposit → clamp (mandatory order, spec.md
// §4.6): clamping before deposit would defeat BoC reinforcement; clamping
// before evaporation would waste work.
func (c *Colony) update(cycleAssignments []*cspmodel.Assignment, variables []*cspmodel.Variable) error {
	if err := c.matrix.Evaporate(c.params.Rho); err != nil {
		return err
	}

	boc := bestOfCycle(cycleAssignments)
	if len(boc) > 0 {
		bestSize := c.best.Size()
		deltaOf := func(a *cspmodel.Assignment) float64 {
			return 1.0 / (1.0 + float64(bestSize-a.Size()))
		}
		for _, a := range boc {
			if a.Size() > bestSize {
				return fmt.Errorf("colony: best-gap anomaly — cycle assignment of size %d exceeds running best of size %d", a.Size(), bestSize)
			}
		}
		if err := c.matrix.DepositMultiple(boc, variables, deltaOf); err != nil {
			return err
		}
	}

	return c.matrix.Clamp(c.params.TauMin, c.params.TauMax)
}

// bestOfCycle возвращает assignments чей размер равен максимуму размера
// по циклу (spec.md §4.6's BoC). Пустой цикл → пустой BoC.
func bestOfCycle(cycleAssignments []*cspmodel.Assignment) []*cspmodel.Assignment {
	maxSize := -1
	for _, a := range cycleAssignments {
		if a.Size() > maxSize {
			maxSize = a.Size()
		}
	}
	if maxSize <= 0 {
		return nil
	}
	var boc []*cspmodel.Assignment
	for _, a := range cycleAssignments {
		if a.Size() == maxSize {
			boc = append(boc, a)
		}
	}
	return boc
}

// firstSolution returns the first BoC member that is a full solution to
// problem, or nil if none qualifies.
func firstSolution(problem *cspmodel.Problem, boc []*cspmodel.Assignment) *cspmodel.Assignment {
	for _, a := range boc {
		if problem.IsSolution(a) {
			return a
		}
	}
	return nil
}
