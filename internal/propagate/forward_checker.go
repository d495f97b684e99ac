// Package propagate реализует контракт CSPPropagator (spec.md §4.5):
// forward checking с редукцией доменов. При назначении переменной из
// домена каждого ещё неназначенного вовлечённого соседа удаляются
// значения, которые вместе с текущим присваиванием нарушили бы любое
// ограничение, в котором участвуют обе переменные.
package propagate

import "github.com/h00dieB0y/antares/internal/cspmodel"

// Propagator — контракт CSPPropagator, требуемый конструктором
// присваивания и колонией (spec.md §4.5). *ForwardChecker реализует его.
type Propagator interface {
	Reset()
	Propagate(assignment *cspmodel.Assignment) bool
	CurrentDomain(v *cspmodel.Variable) []int
	HasFailed() bool
	SingletonVariables() []*cspmodel.Variable
}

// ForwardChecker хранит текущий (редуцированный) домен каждой переменной
// задачи и флаг неудачи.
type ForwardChecker struct {
	problem  *cspmodel.Problem
	original map[int][]int
	current  map[int][]int
	failed   bool
}

// New создаёт пропагатор для problem и сразу вызывает Reset.
func New(problem *cspmodel.Problem) *ForwardChecker {
	fc := &ForwardChecker{
		problem:  problem,
		original: make(map[int][]int),
	}
	for _, v := range problem.Variables() {
		fc.original[v.ID] = v.Domain()
	}
	fc.Reset()
	return fc
}

// Reset восстанавливает текущие домены к исходным доменам задачи и снимает
// флаг неудачи.
func (fc *ForwardChecker) Reset() {
	fc.current = make(map[int][]int, len(fc.original))
	for id, dom := range fc.original {
		d := make([]int, len(dom))
		copy(d, dom)
		fc.current[id] = d
	}
	fc.failed = false
}

// HasFailed сообщает, провалилась ли пропагация с последнего Reset.
func (fc *ForwardChecker) HasFailed() bool {
	return fc.failed
}

// CurrentDomain возвращает текущий редуцированный домен переменной.
func (fc *ForwardChecker) CurrentDomain(v *cspmodel.Variable) []int {
	d := fc.current[v.ID]
	out := make([]int, len(d))
	copy(out, d)
	return out
}

// Propagate редуцирует домены неназначенных вовлечённых переменных по
// ограничениям задачи, для значения которых присваивание (с кандидатом
// value, временно вставленным) нарушило бы ограничение. Возвращает false
// и защёлкивает флаг неудачи при опустошении домена или несогласованности;
// до следующего Reset пропагатор остаётся провалившимся.
func (fc *ForwardChecker) Propagate(assignment *cspmodel.Assignment) bool {
	if fc.failed {
		return false
	}

	for _, c := range fc.problem.Constraints() {
		involved := c.InvolvedVariables()
		for _, v := range involved {
			if assignment.IsAssigned(v) {
				continue
			}
			domain := fc.current[v.ID]
			var kept []int
			for _, candidate := range domain {
				assignment.Assign(v, candidate)
				ok := c.IsSatisfiedBy(assignment)
				assignment.Unassign(v)
				if ok {
					kept = append(kept, candidate)
				}
			}
			fc.current[v.ID] = kept
			if len(kept) == 0 {
				fc.failed = true
				return false
			}
		}
	}

	if !fc.problem.IsConsistent(assignment) {
		fc.failed = true
		return false
	}
	return true
}

// SingletonVariables возвращает переменные задачи чей текущий домен имеет
// размер 1, вне зависимости от того, назначены ли они уже — вызывающий
// код (конструктор присваивания) сам отфильтровывает уже назначенные.
func (fc *ForwardChecker) SingletonVariables() []*cspmodel.Variable {
	var out []*cspmodel.Variable
	for _, v := range fc.problem.Variables() {
		if len(fc.current[v.ID]) == 1 {
			out = append(out, v)
		}
	}
	return out
}
