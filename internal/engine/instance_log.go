package engine

import (
	"github.com/sirupsen/logrus"

	"squad-sim/internal/domain"
)

// logAction пишет результат действия ввода в лог инстанса
func (i *Instance) logAction(action domain.ActionType, text string) {
	i.log.WithFields(logrus.Fields{
		"component": "game_log",
		"action":    action,
		"tick":      i.CurrentTick,
	}).Debug(text)
}

// LogSummary пишет итог прогона.
func (i *Instance) LogSummary() {
	i.log.WithFields(logrus.Fields{
		"component": "instance",
		"seed":      i.Seed,
		"ticks":     i.CurrentTick,
		"alive":     i.Agents.Len(),
		"dead":      len(i.Agents.Dead()),
		"messages":  i.Coordinator.Processed(),
		"dropped":   i.Clock.Dropped(),
	}).Info("Run summary")
}
