// SPDX-License-Identifier: EPL-2.0

package tape

// Settings exposes the configuration shared between the scheduler and the
// encoders. Only the baud rate is mutable, and only under a save/restore
// discipline.
type Settings interface {
	BaudRate() int
	SetBaudRate(baud int)
}

// MemSettings keeps settings in memory.
type MemSettings struct {
	baud int
}

func NewMemSettings(baud int) *MemSettings {
	return &MemSettings{baud: baud}
}

func (s *MemSettings) BaudRate() int        { return s.baud }
func (s *MemSettings) SetBaudRate(baud int) { s.baud = baud }
