package walkthrough

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/seq"
)

// NotAnIndex marks a snapshot whose step did not look anything up.
const NotAnIndex = -1

// Snapshot is the recorded state of one executed step.
type Snapshot struct {
	Number int // 1-based position in the walkthrough
	Step   *config.Step
	Before []int
	After  []int
	// Found is the position reported by an index step, NotAnIndex otherwise.
	Found int
	// Popped is the element removed by a pop step.
	Popped int
}

// String renders the snapshot as a single output line.
func (s Snapshot) String() string {
	call := fmt.Sprintf("%d. %s(%s)", s.Number, s.Step.Op, args(s.Step))
	if s.Step.Op == config.OpIndex {
		return call + " => " + strconv.Itoa(s.Found)
	}
	return call + " => " + seq.Format(s.After)
}

func args(st *config.Step) string {
	var parts []string
	for _, v := range st.Values {
		parts = append(parts, strconv.Itoa(v))
	}
	if st.Index != nil {
		parts = append(parts, strconv.Itoa(*st.Index))
	}
	if st.Value != nil {
		parts = append(parts, strconv.Itoa(*st.Value))
	}
	return strings.Join(parts, ", ")
}

// Run executes steps with DefaultHandlers.
func Run(ctx context.Context, steps []*config.Step) ([]Snapshot, error) {
	return RunWith(ctx, DefaultHandlers(), steps)
}

// RunWith executes steps in order starting from an empty sequence. It stops
// at the first failing step and returns the snapshots recorded so far
// together with an error that wraps the seq sentinel.
func RunWith(ctx context.Context, handlers *Handlers, steps []*config.Step) ([]Snapshot, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Walkthrough started.", "steps", len(steps))

	state := seq.New()
	snapshots := make([]Snapshot, 0, len(steps))

	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return snapshots, err
		}

		snap, err := apply(handlers, state, st)
		snap.Number = i + 1
		if err != nil {
			logger.Debug("Walkthrough step failed.", "step", snap.Number, "op", st.Op, "error", err)
			return snapshots, fmt.Errorf("step %d (%s): %w", snap.Number, st.Op, err)
		}
		logger.Debug("Walkthrough step applied.", "step", snap.Number, "op", st.Op, "before", snap.Before, "after", snap.After)

		snapshots = append(snapshots, snap)
		state = snap.After
	}

	logger.Debug("Walkthrough finished.", "final", state)
	return snapshots, nil
}

// apply runs a single step against state.
func apply(handlers *Handlers, state []int, st *config.Step) (Snapshot, error) {
	snap := Snapshot{Step: st, Before: state, Found: NotAnIndex}
	if err := st.Validate(); err != nil {
		return snap, err
	}
	fn, ok := handlers.Lookup(st.Op)
	if !ok {
		return snap, fmt.Errorf("no handler registered: %w %q", config.ErrUnknownOp, st.Op)
	}
	err := fn(&snap)
	return snap, err
}

// Final returns the sequence after the last snapshot, or an empty sequence.
func Final(snapshots []Snapshot) []int {
	if len(snapshots) == 0 {
		return seq.New()
	}
	return snapshots[len(snapshots)-1].After
}
