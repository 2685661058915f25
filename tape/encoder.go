// SPDX-License-Identifier: EPL-2.0

package tape

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Encoder turns a tape image into half-periods, one per tick.
type Encoder interface {
	// Begin starts a new session. On failure the hand-off is already set to
	// end-of-file and the returned error only describes what went wrong.
	Begin() error
	// Tick produces the next half-period, or NoPeriod when the current state
	// produced nothing. It never blocks.
	Tick() Period
	// Abort abandons the session and releases anything Begin overrode.
	Abort()
}

// Env holds the collaborators an encoder session works with.
type Env struct {
	Image    Image
	Settings Settings
	Handoff  *Handoff
	Log      *zap.Logger
}

// Logger returns the configured logger, or a no-op one.
func (e Env) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Factory creates an encoder bound to env.
type Factory func(env Env) Encoder

// Registry for encoders by format key (file extension without the dot).
type Registry struct {
	factories map[string]Factory
	mtx       *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[normalizeFormat(format)] = f
}

func (r *Registry) Get(format string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[normalizeFormat(format)]
	return f, ok
}

// Formats lists the registered format keys.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	return out
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
