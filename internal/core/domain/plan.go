package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// PlanVersion is the current plan document version written by the planner.
const PlanVersion = 1

// ActionKind identifies what the applier does to a non-canonical member.
type ActionKind string

const (
	// ActionQuarantine moves the duplicate into the quarantine directory.
	ActionQuarantine ActionKind = "quarantine"
	// ActionDelete removes the duplicate outright.
	ActionDelete ActionKind = "delete"
	// ActionHardlink replaces the duplicate with a hard link to the canonical file.
	ActionHardlink ActionKind = "hardlink"
)

// ParseActionKind converts a user-supplied string into an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(s) {
	case ActionQuarantine, ActionDelete, ActionHardlink:
		return ActionKind(s), nil
	default:
		return "", zerr.With(ErrUnknownActionKind, "kind", s)
	}
}

// ExactMode selects the duplicate-confirmation strategy.
type ExactMode string

const (
	// ModeBinaryForPairs compares two-member buckets byte for byte and
	// falls back to hash grouping for larger buckets. This is the default.
	ModeBinaryForPairs ExactMode = "binary-for-pairs"
	// ModeHashOnly groups every bucket by full content digest.
	ModeHashOnly ExactMode = "hash-only"
	// ModeHashVerify groups by digest, then re-confirms every member
	// against the group's first member with a full byte comparison.
	ModeHashVerify ExactMode = "hash-verify"
)

// ParseExactMode converts a user-supplied string into an ExactMode.
func ParseExactMode(s string) (ExactMode, error) {
	switch ExactMode(s) {
	case ModeBinaryForPairs, ModeHashOnly, ModeHashVerify:
		return ExactMode(s), nil
	default:
		return "", zerr.With(ErrUnknownExactMode, "mode", s)
	}
}

// Snapshot is the point-in-time size and modification time of a file,
// captured at planning time. A nil *Snapshot means the file was absent
// when the plan was created, never "empty file".
type Snapshot struct {
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mtime"`
}

// PlannedAction is one mutation the applier should perform. The canonical
// member of a group never gets an action.
type PlannedAction struct {
	Kind              ActionKind `json:"kind"`
	CanonicalPath     string     `json:"canonical"`
	TargetPath        string     `json:"target"`
	GroupSize         int64      `json:"groupSize"`
	CanonicalSnapshot *Snapshot  `json:"canonicalSnapshot,omitempty"`
	TargetSnapshot    *Snapshot  `json:"targetSnapshot,omitempty"`
}

// HasSnapshots reports whether any snapshot was recorded at planning time.
// Actions without snapshots (legacy or foreign plans) bypass drift checking.
func (a PlannedAction) HasSnapshots() bool {
	return a.CanonicalSnapshot != nil || a.TargetSnapshot != nil
}

// PlanMetadata echoes the scan configuration that produced a plan, plus
// the identity of the host that ran the scan.
type PlanMetadata struct {
	Paths        []string   `json:"paths"`
	Recursive    bool       `json:"recursive"`
	UsePreScan   bool       `json:"usePreScan"`
	MinSizeBytes int64      `json:"minSizeBytes"`
	ExactMode    ExactMode  `json:"exactMode"`
	ActionKind   ActionKind `json:"actionKind"`
	Hostname     string     `json:"hostname,omitempty"`
	Username     string     `json:"username,omitempty"`
}

// Plan is the persistable unit of work connecting a scan to a later apply.
type Plan struct {
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"createdAtUtc"`
	Metadata  PlanMetadata    `json:"metadata"`
	Actions   []PlannedAction `json:"actions"`
}
