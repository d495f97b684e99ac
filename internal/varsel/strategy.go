// Package varsel содержит стратегии выбора следующей переменной для
// обхода муравья (spec.md §4.4). Стратегии — чистые функции без состояния
// между вызовами; статическая диспетчеризация через func-значение
// предпочтена виртуальным вызовам, т.к. стратегия вызывается m·n раз за
// цикл (spec.md §9).
package varsel

import (
	"math/rand"

	"github.com/h00dieB0y/antares/internal/cspmodel"
)

// DomainSource — источник текущего (пропагированного) домена переменной,
// реализуемый CSPPropagator.
type DomainSource interface {
	CurrentDomain(v *cspmodel.Variable) []int
}

// Strategy выбирает следующую неназначенную переменную, либо сообщает, что
// выбора нет (все переменные уже назначены).
type Strategy func(problem *cspmodel.Problem, assignment *cspmodel.Assignment, domains DomainSource) (*cspmodel.Variable, bool)

// unassigned возвращает неназначенные переменные задачи в порядке
// объявления — детерминированный порядок для воспроизводимости.
func unassigned(problem *cspmodel.Problem, assignment *cspmodel.Assignment) []*cspmodel.Variable {
	var out []*cspmodel.Variable
	for _, v := range problem.Variables() {
		if !assignment.IsAssigned(v) {
			out = append(out, v)
		}
	}
	return out
}

// SmallestDomain — fail-first: среди неназначенных переменных выбирает ту,
// чей текущий редуцированный домен наименьший; ничьи разрешаются порядком
// обхода.
func SmallestDomain(problem *cspmodel.Problem, assignment *cspmodel.Assignment, domains DomainSource) (*cspmodel.Variable, bool) {
	candidates := unassigned(problem, assignment)
	if len(candidates) == 0 {
		return nil, false
	}
	best := candidates[0]
	bestSize := len(domains.CurrentDomain(best))
	for _, v := range candidates[1:] {
		size := len(domains.CurrentDomain(v))
		if size < bestSize {
			best = v
			bestSize = size
		}
	}
	return best, true
}

// UniformRandom выбирает равномерно случайную неназначенную переменную,
// используя rng, предоставленный вызывающей стороной (ни одна стратегия не
// владеет собственным генератором — детерминизм целиком во владении
// вызывающего колонии/селектора значений).
func UniformRandom(rng *rand.Rand) Strategy {
	return func(problem *cspmodel.Problem, assignment *cspmodel.Assignment, domains DomainSource) (*cspmodel.Variable, bool) {
		candidates := unassigned(problem, assignment)
		if len(candidates) == 0 {
			return nil, false
		}
		return candidates[rng.Intn(len(candidates))], true
	}
}
