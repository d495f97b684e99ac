package cspmodel

// Assignment — изменяемое отображение переменная → значение. Создаётся
// пустым, мутируется одним муравьём во время его обхода, снимок (Snapshot)
// сохраняется в истории цикла, затем отбрасывается.
type Assignment struct {
	values map[int]int
	order  []int // порядок назначения, для детерминированного обхода
}

// NewAssignment возвращает пустое присваивание.
func NewAssignment() *Assignment {
	return &Assignment{values: make(map[int]int)}
}

// Assign записывает значение value для переменной v. Требует, чтобы value
// принадлежал домену v — нарушение этого инварианта является программной
// ошибкой и не проверяется здесь повторно (ответственность пропагатора и
// селектора значений, которые обязаны предлагать только значения из
// текущего домена).
func (a *Assignment) Assign(v *Variable, value int) {
	if _, ok := a.values[v.ID]; !ok {
		a.order = append(a.order, v.ID)
	}
	a.values[v.ID] = value
}

// Unassign удаляет переменную из присваивания, если она была назначена.
func (a *Assignment) Unassign(v *Variable) {
	if _, ok := a.values[v.ID]; !ok {
		return
	}
	delete(a.values, v.ID)
	for i, id := range a.order {
		if id == v.ID {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Get возвращает значение переменной и флаг его присутствия.
func (a *Assignment) Get(v *Variable) (int, bool) {
	val, ok := a.values[v.ID]
	return val, ok
}

// IsAssigned сообщает, назначена ли переменная.
func (a *Assignment) IsAssigned(v *Variable) bool {
	_, ok := a.values[v.ID]
	return ok
}

// Size возвращает количество назначенных переменных.
func (a *Assignment) Size() int {
	return len(a.values)
}

// IsComplete сообщает, назначены ли все n переменных задачи.
func (a *Assignment) IsComplete(n int) bool {
	return a.Size() == n
}

// Snapshot возвращает независимую копию присваивания — она не делит
// внутреннее состояние с оригиналом и переживает дальнейшие мутации ant'а.
func (a *Assignment) Snapshot() *Assignment {
	values := make(map[int]int, len(a.values))
	for k, v := range a.values {
		values[k] = v
	}
	order := make([]int, len(a.order))
	copy(order, a.order)
	return &Assignment{values: values, order: order}
}

// ForEach вызывает fn для каждой назначенной переменной в порядке
// назначения — детерминированный обход, требуемый spec'ом для
// воспроизводимости.
func (a *Assignment) ForEach(fn func(variableID, value int)) {
	for _, id := range a.order {
		fn(id, a.values[id])
	}
}

// VariableIDs возвращает назначенные ID переменных в порядке назначения.
func (a *Assignment) VariableIDs() []int {
	ids := make([]int, len(a.order))
	copy(ids, a.order)
	return ids
}
