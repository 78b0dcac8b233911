package walkthrough

import (
	"fmt"

	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/seq"
)

// Handler applies one validated step to the state held in snap.Before and
// fills in snap.After (and Found/Popped where the op reports them).
type Handler func(snap *Snapshot) error

// Handlers maps each operation to the Go function that performs it.
type Handlers struct {
	all map[config.Op]Handler
}

// NewHandlers creates an empty handler table.
func NewHandlers() *Handlers {
	return &Handlers{all: make(map[config.Op]Handler)}
}

// Register binds fn to op. Registering the same op twice is a programmer
// error and panics.
func (h *Handlers) Register(op config.Op, fn Handler) {
	if _, exists := h.all[op]; exists {
		panic(fmt.Sprintf("handler for op '%s' already registered", op))
	}
	h.all[op] = fn
}

// Lookup returns the handler bound to op.
func (h *Handlers) Lookup(op config.Op) (Handler, bool) {
	fn, ok := h.all[op]
	return fn, ok
}

// DefaultHandlers returns a table with every operation in config.Ops bound
// to its seq implementation.
func DefaultHandlers() *Handlers {
	h := NewHandlers()
	h.Register(config.OpAppend, func(s *Snapshot) error {
		s.After = seq.Append(s.Before, s.Step.Values...)
		return nil
	})
	h.Register(config.OpExtend, func(s *Snapshot) error {
		s.After = seq.Extend(s.Before, s.Step.Values)
		return nil
	})
	h.Register(config.OpInsert, func(s *Snapshot) error {
		var err error
		s.After, err = seq.Insert(s.Before, *s.Step.Index, *s.Step.Value)
		return err
	})
	h.Register(config.OpPop, func(s *Snapshot) error {
		var err error
		s.After, s.Popped, err = seq.Pop(s.Before)
		return err
	})
	h.Register(config.OpDropLast, func(s *Snapshot) error {
		s.After = seq.DropLast(s.Before)
		return nil
	})
	sortFn := func(s *Snapshot) error {
		s.After = seq.Sort(s.Before)
		return nil
	}
	h.Register(config.OpSort, sortFn)
	h.Register(config.OpSorted, sortFn)
	h.Register(config.OpIndex, func(s *Snapshot) error {
		var err error
		s.Found, err = seq.Index(s.Before, *s.Step.Value)
		s.After = s.Before
		return err
	})
	return h
}
