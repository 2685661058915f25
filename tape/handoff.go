// SPDX-License-Identifier: EPL-2.0

package tape

// BlockID identifies the block type the scheduler is currently processing.
type BlockID uint8

const (
	IDNone BlockID = iota
	IDMZF
	IDCAQ
	// IDEOF asks the scheduler to run its end-of-file handling.
	IDEOF
)

func (id BlockID) String() string {
	switch id {
	case IDNone:
		return "none"
	case IDMZF:
		return "mzf"
	case IDCAQ:
		return "caq"
	case IDEOF:
		return "eof"
	}
	return "unknown"
}

// Task is the next job the scheduler should run.
type Task uint8

const (
	TaskIdle Task = iota
	TaskProcessID
)

func (t Task) String() string {
	switch t {
	case TaskIdle:
		return "idle"
	case TaskProcessID:
		return "process-id"
	}
	return "unknown"
}

// Handoff is the state an encoder shares with its scheduler. Encoders set it
// when a session starts and when it reaches its terminal state.
type Handoff struct {
	ID   BlockID
	Task Task
}

// Start marks id as the active block.
func (h *Handoff) Start(id BlockID) {
	h.ID = id
	h.Task = TaskProcessID
}

// EOF requests the generic end-of-file behaviour.
func (h *Handoff) EOF() {
	h.ID = IDEOF
	h.Task = TaskProcessID
}

// Finished reports whether end-of-file handling was requested.
func (h *Handoff) Finished() bool {
	return h.ID == IDEOF
}
