package game

import (
	"github.com/sirupsen/logrus"
	"time"
)

type Observer interface {
	/**
	 * Called after every externally visible change to the engine
	 */
	StateChanged(*Engine)

	/**
	 * Called on each timer tick while the game is running
	 */
	Ticked(*Engine, time.Duration)
}

// LogObserver logs every phase change it sees, and each tick at debug level
type LogObserver struct {
	Logger logrus.FieldLogger

	lastPhase Phase
	lastBoard *Board
}

func (observer *LogObserver) logger() logrus.FieldLogger {
	if observer.Logger == nil {
		return Log
	}
	return observer.Logger
}

func (observer *LogObserver) StateChanged(engine *Engine) {
	board := engine.Board()
	if board == observer.lastBoard && engine.Phase() == observer.lastPhase {
		return
	}

	observer.logger().WithFields(logrus.Fields{
		"phase":          engine.Phase(),
		"minesRemaining": board.MinesRemaining(),
		"opened":         board.OpenedCount(),
	}).Info("game state")

	observer.lastBoard = board
	observer.lastPhase = engine.Phase()
}

func (observer *LogObserver) Ticked(engine *Engine, elapsed time.Duration) {
	observer.logger().WithField("elapsed", elapsed).Debug("tick")
}
