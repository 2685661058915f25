// SPDX-License-Identifier: EPL-2.0

package player

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/ik5/tapepbx/formats/caq"
	"github.com/ik5/tapepbx/formats/mzf"
	"github.com/ik5/tapepbx/tape"
	"go.uber.org/zap"
)

// DefaultStallLimit is the number of consecutive empty ticks tolerated
// before a session is considered stuck.
const DefaultStallLimit = 16

// DefaultRegistry returns a registry with every built-in encoder.
func DefaultRegistry() *tape.Registry {
	reg := tape.NewRegistry()
	reg.Register("mzf", mzf.Factory)
	reg.Register("m12", mzf.Factory)
	reg.Register("mzt", mzf.Factory)
	reg.Register("caq", caq.Factory)
	return reg
}

// Stats summarises a played session.
type Stats struct {
	HalfPeriods int
	Duration    time.Duration
}

// positioner is implemented by images that know their position, such as
// *tape.Stream.
type positioner interface {
	Pos() int64
	Size() int64
}

// Player schedules one encoder session at a time. It owns the hand-off state
// and drives the active encoder one tick per half-period.
type Player struct {
	reg      *tape.Registry
	settings tape.Settings
	log      *zap.Logger

	handoff tape.Handoff
	enc     tape.Encoder
	img     tape.Image
	name    string

	stallLimit int
	ended      bool
	stats      Stats
}

// New creates a player. A nil registry uses DefaultRegistry and a nil logger
// discards output.
func New(reg *tape.Registry, settings tape.Settings, log *zap.Logger) *Player {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		reg:        reg,
		settings:   settings,
		log:        log,
		stallLimit: DefaultStallLimit,
		ended:      true,
	}
}

// SetStallLimit changes the number of consecutive empty ticks allowed.
func (p *Player) SetStallLimit(n int) {
	if n > 0 {
		p.stallLimit = n
	}
}

// Load starts a session for img, choosing the encoder from the extension of
// name. Any session still running is aborted first.
//
// When the encoder cannot start, the error is returned and the player is
// left at end-of-file.
func (p *Player) Load(name string, img tape.Image) error {
	format := filepath.Ext(name)
	factory, ok := p.reg.Get(format)
	if !ok {
		return fmt.Errorf("%w: %q", tape.ErrUnknownFormat, format)
	}

	p.Stop()

	p.handoff = tape.Handoff{}
	p.img = img
	p.name = name
	p.ended = false
	p.stats = Stats{}
	p.enc = factory(tape.Env{
		Image:    img,
		Settings: p.settings,
		Handoff:  &p.handoff,
		Log:      p.log,
	})

	if err := p.enc.Begin(); err != nil {
		p.log.Warn("session aborted", zap.String("image", name), zap.Error(err))
		p.end()
		return fmt.Errorf("%s: %w", name, err)
	}

	p.log.Info("session started",
		zap.String("image", name),
		zap.Stringer("block", p.handoff.ID))
	return nil
}

// Tick runs exactly one encoder tick. It returns tape.NoPeriod once the
// session has ended.
func (p *Player) Tick() tape.Period {
	if p.enc == nil || p.ended {
		return tape.NoPeriod
	}

	per := p.enc.Tick()
	if p.handoff.Finished() {
		p.end()
	}
	return per
}

// Next ticks until the encoder produces a half-period. It returns io.EOF
// once the session reached its end.
func (p *Player) Next() (tape.Period, error) {
	for range p.stallLimit {
		if p.ended {
			return tape.NoPeriod, io.EOF
		}

		if per := p.Tick(); per != tape.NoPeriod {
			p.stats.HalfPeriods++
			p.stats.Duration += per.Duration()
			return per, nil
		}
	}

	if p.ended {
		return tape.NoPeriod, io.EOF
	}
	return tape.NoPeriod, fmt.Errorf("%s: %w", p.name, tape.ErrStalled)
}

// NextPeriod implements audio.PeriodReader.
func (p *Player) NextPeriod() (time.Duration, error) {
	per, err := p.Next()
	return per.Duration(), err
}

// Stop abandons the running session.
func (p *Player) Stop() {
	if p.enc == nil || p.ended {
		return
	}

	p.enc.Abort()
	p.ended = true
	p.log.Info("session stopped",
		zap.String("image", p.name),
		zap.Int("half_periods", p.stats.HalfPeriods))
}

// Measure plays the rest of the session without output and returns its
// totals.
func (p *Player) Measure(ctx context.Context) (Stats, error) {
	for i := 0; ; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				p.Stop()
				return p.stats, fmt.Errorf("%w", err)
			}
		}

		if _, err := p.Next(); err != nil {
			if err == io.EOF {
				return p.stats, nil
			}
			return p.stats, err
		}
	}
}

// Progress returns the fraction of the image consumed, or -1 when the image
// cannot report its position.
func (p *Player) Progress() float64 {
	pos, ok := p.img.(positioner)
	if !ok || pos.Size() == 0 {
		return -1
	}
	return float64(pos.Pos()) / float64(pos.Size())
}

// Handoff returns the current hand-off state.
func (p *Player) Handoff() tape.Handoff { return p.handoff }

// Stats returns the totals of the half-periods produced so far.
func (p *Player) Stats() Stats { return p.stats }

// Ended reports whether the session reached end-of-file or was stopped.
func (p *Player) Ended() bool { return p.ended }

func (p *Player) end() {
	if p.ended {
		return
	}
	p.ended = true
	p.log.Info("end of tape",
		zap.String("image", p.name),
		zap.Int("half_periods", p.stats.HalfPeriods),
		zap.Duration("duration", p.stats.Duration))
}
