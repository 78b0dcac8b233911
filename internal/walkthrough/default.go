package walkthrough

import "github.com/specialistvlad/coursegrid/internal/config"

func intPtr(v int) *int { return &v }

// Default returns the canonical list walkthrough.
func Default() []*config.Step {
	return []*config.Step{
		{Op: config.OpAppend, Values: []int{10, 20, 30, 40}},
		{Op: config.OpInsert, Index: intPtr(1), Value: intPtr(15)},
		{Op: config.OpExtend, Values: []int{50, 60, 70}},
		{Op: config.OpPop},
		{Op: config.OpSort},
		{Op: config.OpIndex, Value: intPtr(30)},
	}
}
