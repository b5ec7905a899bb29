package strategy

import (
	"fmt"
	"strings"
)

// Known strategy names, as they appear in settings and requests.
const (
	NameStandard     = "standard"
	NameParallel     = "parallel"
	NameRapid        = "rapid"
	NameSourceBased  = "source-based"
	NameFocused      = "focused-iteration"
	NameIterDRAG     = "iterdrag"
	NameEntitySource = "source-based-entity"
)

// New builds the named strategy. Unknown names fall back to standard so a
// stale setting never blocks research.
func New(name string, deps Deps) (Strategy, error) {
	switch normalizeName(name) {
	case NameStandard, "":
		return NewStandard(deps)
	case NameParallel:
		return NewParallel(deps)
	case NameRapid:
		return NewRapid(deps)
	case NameSourceBased:
		return NewSourceBased(deps)
	case "source-based-atomic":
		return NewSourceBased(deps, WithAtomicFacts())
	case NameFocused:
		return NewFocused(deps)
	case NameIterDRAG:
		return NewIterDRAG(deps)
	case NameEntitySource:
		return NewEntitySource(deps)
	default:
		if deps.Logger != nil {
			deps.Logger.Warn("unknown strategy, using standard", "strategy", name)
		}
		return NewStandard(deps)
	}
}

// Names lists the selectable strategies.
func Names() []string {
	return []string{
		NameStandard, NameParallel, NameRapid, NameSourceBased,
		NameFocused, NameIterDRAG, NameEntitySource,
	}
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	if n == "iter-drag" {
		return NameIterDRAG
	}
	return n
}

// Describe returns a one-line summary for the API's strategy listing.
func Describe(name string) string {
	switch name {
	case NameStandard:
		return "iterative question-search-analyze loop with knowledge accumulation"
	case NameParallel:
		return "single iteration, concurrent searches, one synthesis pass"
	case NameRapid:
		return "snippet-only single round optimized for latency"
	case NameSourceBased:
		return "concurrent searches without relevance filtering"
	case NameFocused:
		return "progressive entity-driven loop with early termination"
	case NameIterDRAG:
		return "decomposes the query and reconciles per-part answers"
	case NameEntitySource:
		return "source-based with entity-aware question generation"
	default:
		return fmt.Sprintf("unknown strategy %q", name)
	}
}
