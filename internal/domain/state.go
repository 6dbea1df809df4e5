package domain

// CycleState is the only mutable state of a run. It is never persisted; a
// fresh process always starts from the zero value.
type CycleState struct {
	CompletedWorkSessions uint
	LastCompleted         SessionType
}

// NextSession decides which session follows the given state. The first
// session of a run, and every session after a break, is Work. After a Work
// session the break is long when the completed count is a multiple of
// PomodorosPerCycle. The config must have passed Validate.
func (c PomodoroConfig) NextSession(state CycleState) (SessionType, int) {
	next := SessionTypeWork
	if state.LastCompleted == SessionTypeWork {
		next = SessionTypeShortBreak
		if state.CompletedWorkSessions%uint(c.PomodorosPerCycle) == 0 {
			next = SessionTypeLongBreak
		}
	}
	return next, c.Minutes(next)
}

// Complete records a session that ran to expiry. Cancelled sessions must not
// be passed here.
func (s CycleState) Complete(t SessionType) CycleState {
	if t == SessionTypeWork {
		s.CompletedWorkSessions++
	}
	s.LastCompleted = t
	return s
}

// SessionsUntilLongBreak returns how many more work sessions must complete
// before the next long break.
func (c PomodoroConfig) SessionsUntilLongBreak(state CycleState) int {
	n := uint(c.PomodorosPerCycle)
	return int(n - state.CompletedWorkSessions%n)
}
