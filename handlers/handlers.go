package handlers

import (
	"risk-analysis/session"
)

var (
	sess     *session.Session
	analyzer session.Analyzer
)

// Setup wires the shared session and analysis client used by all
// handlers.
func Setup(s *session.Session, a session.Analyzer) {
	sess = s
	analyzer = a
}
