// Package cspmodel содержит модель данных CSP: переменные, ограничения,
// задачу и присваивание. Значения переменных монoморфизированы до int —
// этого достаточно для всех задач в пакете примеров (судоку, AllDifferent,
// X≠Y), и это устраняет небезопасные приведения типов исходника.
package cspmodel

import "fmt"

// Variable — именованная сущность с непустым конечным доменом значений.
// Идентичность по ID: два Variable с одинаковым ID считаются одной
// сущностью. Domain не меняется после создания.
type Variable struct {
	ID     int
	Name   string
	domain []int
}

// NewVariable создаёт переменную с заданным ID, именем и доменом.
// Возвращает ошибку, если домен пуст.
func NewVariable(id int, name string, domain []int) (*Variable, error) {
	if len(domain) == 0 {
		return nil, fmt.Errorf("variable %q: domain must be non-empty", name)
	}
	d := make([]int, len(domain))
	copy(d, domain)
	return &Variable{ID: id, Name: name, domain: d}, nil
}

// Domain возвращает копию исходного домена объявления переменной.
// Текущий (пропагированный) домен отслеживается отдельно пропагатором.
func (v *Variable) Domain() []int {
	d := make([]int, len(v.domain))
	copy(d, v.domain)
	return d
}

// Contains сообщает, принадлежит ли value исходному домену переменной.
func (v *Variable) Contains(value int) bool {
	for _, x := range v.domain {
		if x == value {
			return true
		}
	}
	return false
}

func (v *Variable) String() string {
	return v.Name
}
