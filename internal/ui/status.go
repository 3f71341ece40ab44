package ui

import (
	"fmt"
	"strings"

	"pixlife/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var keyHelp = []string{
	"space  pause",
	"n      step",
	"r      reset",
	"s      reseed",
	"c      clear",
	"1      neighbours",
	"h      panel",
	"click  toggle cell",
}

// statusLines builds the text shown in the HUD panel.
func statusLines(sim core.Sim, paused bool) []string {
	if sim == nil {
		return nil
	}
	lines := []string{strings.ToUpper(sim.Name())}
	state := "running"
	if paused {
		state = "paused"
	}
	lines = append(lines, "state: "+state)
	if stats, ok := sim.(core.Stats); ok {
		lines = append(lines,
			fmt.Sprintf("generation: %d", stats.Generation()),
			fmt.Sprintf("population: %d", stats.Population()),
		)
	}
	if provider, ok := sim.(parameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			lines = append(lines, "", group.Name)
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("%s: %s", strings.ToLower(p.Label), p.Value))
			}
		}
	}
	lines = append(lines, "")
	return append(lines, keyHelp...)
}
