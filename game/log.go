package game

import "github.com/sirupsen/logrus"

// Log is the logger used by the game package. Callers may change its level
// or output.
var Log = logrus.New()
