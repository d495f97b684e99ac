package cspmodel

// Constraint — предикат над переменными. Интерпретация оптимистична:
// ограничение с ещё неназначенными вовлечёнными переменными считается
// удовлетворённым.
type Constraint interface {
	// InvolvedVariables возвращает переменные, за присваиванием которых
	// следит ограничение.
	InvolvedVariables() []*Variable
	// IsSatisfiedBy возвращает false только если ограничение определённо
	// нарушено текущим (возможно, частичным) присваиванием.
	IsSatisfiedBy(a *Assignment) bool
}

// AllDifferent — ограничение "все значения различны" над набором переменных.
type AllDifferent struct {
	vars []*Variable
}

// NewAllDifferent создаёт ограничение AllDifferent над заданными переменными.
func NewAllDifferent(vars ...*Variable) *AllDifferent {
	vs := make([]*Variable, len(vars))
	copy(vs, vars)
	return &AllDifferent{vars: vs}
}

func (c *AllDifferent) InvolvedVariables() []*Variable {
	out := make([]*Variable, len(c.vars))
	copy(out, c.vars)
	return out
}

func (c *AllDifferent) IsSatisfiedBy(a *Assignment) bool {
	seen := make(map[int]bool)
	for _, v := range c.vars {
		val, ok := a.Get(v)
		if !ok {
			continue // оптимистично: неназначенные переменные не нарушают ограничение
		}
		if seen[val] {
			return false
		}
		seen[val] = true
	}
	return true
}

// NotEqual — бинарное ограничение X ≠ Y.
type NotEqual struct {
	x, y *Variable
}

// NewNotEqual создаёт ограничение X ≠ Y.
func NewNotEqual(x, y *Variable) *NotEqual {
	return &NotEqual{x: x, y: y}
}

func (c *NotEqual) InvolvedVariables() []*Variable {
	return []*Variable{c.x, c.y}
}

func (c *NotEqual) IsSatisfiedBy(a *Assignment) bool {
	xv, xok := a.Get(c.x)
	yv, yok := a.Get(c.y)
	if !xok || !yok {
		return true
	}
	return xv != yv
}
