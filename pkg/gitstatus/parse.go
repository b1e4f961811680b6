package gitstatus

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultSeparator joins the summary fields unless configured otherwise.
const DefaultSeparator = " "

// Result holds the classified state of one status query. Entries keep
// the order in which git reported them.
type Result struct {
	Branch string
	Ahead  int
	Behind int

	Untracked []Entry
	Staged    []Entry
	Changed   []Entry
	Deleted   []Entry
	Conflicts []Entry
}

// Parse classifies every line of porcelain status output into a Result.
// The resolver is consulted only when the branch header reports a
// detached HEAD; it may be nil, in which case the branch stays empty.
func Parse(raw string, resolve RefResolver) *Result {
	result := &Result{}

	for _, line := range strings.Split(raw, "\n") {
		entry, kind := ParseLine(line)

		switch kind {
		case KindHeader:
			result.Branch, result.Ahead, result.Behind = parseBranchHeader(entry.Path, resolve)
		case KindUntracked:
			result.Untracked = append(result.Untracked, entry)
		case KindChanged:
			result.Changed = append(result.Changed, entry)
		case KindDeleted:
			result.Deleted = append(result.Deleted, entry)
		case KindConflict:
			result.Conflicts = append(result.Conflicts, entry)
		case KindStaged:
			result.Staged = append(result.Staged, entry)
		}
	}

	return result
}

// Clean reports whether every category is empty.
func (r *Result) Clean() bool {
	return len(r.Changed) == 0 &&
		len(r.Deleted) == 0 &&
		len(r.Staged) == 0 &&
		len(r.Conflicts) == 0 &&
		len(r.Untracked) == 0
}

// Format renders the ten prompt fields joined by the separator:
// branch, ahead, behind, staged, conflicts, changed, untracked,
// stashed, clean, deleted. A missing branch renders as an empty field.
func (r *Result) Format(stashed int, separator string) string {
	fields := []string{
		r.Branch,
		strconv.Itoa(r.Ahead),
		strconv.Itoa(r.Behind),
		strconv.Itoa(len(r.Staged)),
		strconv.Itoa(len(r.Conflicts)),
		strconv.Itoa(len(r.Changed)),
		strconv.Itoa(len(r.Untracked)),
		strconv.Itoa(stashed),
		strconv.Itoa(lo.Ternary(r.Clean(), 1, 0)),
		strconv.Itoa(len(r.Deleted)),
	}

	return strings.Join(fields, separator)
}
