package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/emtprep/emtdrill/internal/engine"
)

// EventMsg carries a scheduled engine event back into the update loop once
// its delay has passed. The app model dispatches it.
type EventMsg struct {
	Event engine.Command
}

// OutcomeMsg is forwarded to the active screen after the app model has
// dispatched a scheduled event, so the screen can react to the new state.
type OutcomeMsg struct {
	Event   engine.Command
	Outcome engine.Outcome
}

// Schedule turns engine tasks into tea commands that deliver EventMsg after
// each task's delay.
func Schedule(tasks []engine.Task) tea.Cmd {
	if len(tasks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, t := range tasks {
		ev := t.Event
		cmds = append(cmds, tea.Tick(t.After, func(time.Time) tea.Msg {
			return EventMsg{Event: ev}
		}))
	}
	return tea.Batch(cmds...)
}
