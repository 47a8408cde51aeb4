// Package plan turns duplicate groups into an ordered action list.
package plan

import (
	"sort"
	"strings"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
)

// Options configure action planning.
type Options struct {
	// ActionKind is the action emitted for every non-canonical member.
	ActionKind domain.ActionKind
	// CanonicalByLexicalPath selects the case-insensitively smallest path
	// as the canonical member. Deterministic and path-based; it makes no
	// claim about which copy is "better".
	CanonicalByLexicalPath bool
}

// Planner emits one PlannedAction per non-canonical group member, with
// point-in-time snapshots of both files. Planning only stats files; it
// never mutates the filesystem.
type Planner struct {
	snapshotter ports.Snapshotter
}

// NewPlanner creates a Planner.
func NewPlanner(snapshotter ports.Snapshotter) *Planner {
	return &Planner{snapshotter: snapshotter}
}

// PlanActions produces the ordered action list for the given groups.
// A group of N members yields exactly N-1 actions; the canonical member
// never appears as a target.
func (p *Planner) PlanActions(groups []domain.DuplicateGroup, opts Options) ([]domain.PlannedAction, error) {
	var actions []domain.PlannedAction

	for _, group := range groups {
		if len(group.Members) < 2 {
			continue
		}

		members := orderMembers(group.Members, opts.CanonicalByLexicalPath)
		canonical := members[0]

		canonicalSnapshot, err := p.snapshotter.Take(canonical.Path)
		if err != nil {
			return nil, err
		}

		for _, target := range members[1:] {
			targetSnapshot, err := p.snapshotter.Take(target.Path)
			if err != nil {
				return nil, err
			}

			actions = append(actions, domain.PlannedAction{
				Kind:              opts.ActionKind,
				CanonicalPath:     canonical.Path,
				TargetPath:        target.Path,
				GroupSize:         group.Size,
				CanonicalSnapshot: canonicalSnapshot,
				TargetSnapshot:    targetSnapshot,
			})
		}
	}

	return actions, nil
}

func orderMembers(members []domain.FileEntry, lexical bool) []domain.FileEntry {
	ordered := make([]domain.FileEntry, len(members))
	copy(ordered, members)

	if lexical {
		sort.SliceStable(ordered, func(i, j int) bool {
			a, b := strings.ToLower(ordered[i].Path), strings.ToLower(ordered[j].Path)
			if a != b {
				return a < b
			}
			return ordered[i].Path < ordered[j].Path
		})
	}
	return ordered
}
