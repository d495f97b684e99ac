// Package engresult определяет запись об исходе работы колонии —
// адаптация паттерна opt.Result учителя (internal/opt/opt.go) на домен CSP.
package engresult

import (
	"time"

	"github.com/h00dieB0y/antares/internal/cspmodel"
)

// Result — итог запуска Colony.Solve.
type Result struct {
	Assignment    *cspmodel.Assignment
	Solved        bool
	CyclesRun     int
	AntsEvaluated int
	Duration      time.Duration
	Meta          map[string]any
}
