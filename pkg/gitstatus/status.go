// Package gitstatus interprets the porcelain v1 output of git status
// and folds it into the compact summary line consumed by shell prompts.
package gitstatus

import "strings"

// Entry is one classified line of porcelain status output.
type Entry struct {
	Index    byte // staging area status code
	Worktree byte // working tree status code
	Path     string
}

// Kind is the category a porcelain line falls into.
type Kind int

const (
	// KindNone marks lines that are dropped (blank or malformed).
	KindNone Kind = iota
	// KindHeader marks the "##" branch summary line.
	KindHeader
	// KindUntracked marks paths unknown to the index.
	KindUntracked
	// KindChanged marks paths modified in the working tree.
	KindChanged
	// KindDeleted marks paths deleted in the working tree.
	KindDeleted
	// KindConflict marks unmerged paths.
	KindConflict
	// KindStaged marks paths with changes recorded in the index.
	KindStaged
)

// ParseLine classifies a single line of porcelain status output. The
// line is trimmed first; anything shorter than three bytes after that
// is dropped. The first two bytes are the index and worktree status
// codes, the remainder is the path payload.
//
// The match order below is a fixed precedence and must not be
// reordered: a worktree modification wins over any index state, a
// worktree deletion wins over anything but modification, and only then
// do conflict and index codes get a say.
func ParseLine(line string) (Entry, Kind) {
	line = strings.TrimSpace(line)
	if len(line) < 3 {
		return Entry{}, KindNone
	}

	entry := Entry{
		Index:    line[0],
		Worktree: line[1],
		Path:     line[2:],
	}

	switch {
	case entry.Index == '#' && entry.Worktree == '#':
		return entry, KindHeader
	case entry.Index == '?' && entry.Worktree == '?':
		return entry, KindUntracked
	case entry.Worktree == 'M':
		return entry, KindChanged
	case entry.Worktree == 'D':
		return entry, KindDeleted
	case entry.Index == 'U':
		return entry, KindConflict
	case entry.Index != ' ':
		return entry, KindStaged
	}

	return entry, KindNone
}
