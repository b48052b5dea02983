package editor

// History returns the History view of the model, containing methods to
// manipulate the undo/redo history of track edits.
func (m *Model) History() *HistoryModel { return (*HistoryModel)(m) }

type HistoryModel Model

// Undo returns an Action to undo the last change.
func (m *HistoryModel) Undo() Action { return MakeAction((*historyUndo)(m)) }

// Redo returns an Action to redo the last undone change.
func (m *HistoryModel) Redo() Action { return MakeAction((*historyRedo)(m)) }

func (m *HistoryModel) UndoCount() int { return len(m.undoStack) }
func (m *HistoryModel) RedoCount() int { return len(m.redoStack) }

type historyUndo HistoryModel

func (m *historyUndo) Enabled() bool { return len(m.undoStack) > 0 }
func (m *historyUndo) Do() {
	m.redoStack = pushBounded(m.redoStack, m.d.Copy())
	m.d = m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.prevUndoKind = ""
	m.tracksVersion++
}

type historyRedo HistoryModel

func (m *historyRedo) Enabled() bool { return len(m.redoStack) > 0 }
func (m *historyRedo) Do() {
	m.undoStack = pushBounded(m.undoStack, m.d.Copy())
	m.d = m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.prevUndoKind = ""
	m.tracksVersion++
}

// pushBounded appends d to stack, dropping the oldest entries so that at most
// maxUndo remain.
func pushBounded(stack []modelData, d modelData) []modelData {
	stack = append(stack, d)
	if len(stack) > maxUndo {
		copy(stack, stack[len(stack)-maxUndo:])
		stack = stack[:maxUndo]
	}
	return stack
}
