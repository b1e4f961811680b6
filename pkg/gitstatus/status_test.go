package gitstatus

import (
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		input    string
		expected Entry
		kind     Kind
	}{
		{
			input:    "## main...origin/main",
			expected: Entry{Index: '#', Worktree: '#', Path: " main...origin/main"},
			kind:     KindHeader,
		},
		{
			input:    "?? newfile.txt",
			expected: Entry{Index: '?', Worktree: '?', Path: " newfile.txt"},
			kind:     KindUntracked,
		},
		{
			input:    "MM staged_then_changed.go",
			expected: Entry{Index: 'M', Worktree: 'M', Path: " staged_then_changed.go"},
			kind:     KindChanged,
		},
		{
			// worktree modification outranks the conflict code
			input:    "UM conflicted_then_changed.go",
			expected: Entry{Index: 'U', Worktree: 'M', Path: " conflicted_then_changed.go"},
			kind:     KindChanged,
		},
		{
			input:    "AM added_then_changed.go",
			expected: Entry{Index: 'A', Worktree: 'M', Path: " added_then_changed.go"},
			kind:     KindChanged,
		},
		{
			input:    "AD added_then_deleted.go",
			expected: Entry{Index: 'A', Worktree: 'D', Path: " added_then_deleted.go"},
			kind:     KindDeleted,
		},
		{
			input:    "UU both_modified.go",
			expected: Entry{Index: 'U', Worktree: 'U', Path: " both_modified.go"},
			kind:     KindConflict,
		},
		{
			input:    "UD deleted_by_them.go",
			expected: Entry{Index: 'U', Worktree: 'D', Path: " deleted_by_them.go"},
			kind:     KindDeleted,
		},
		{
			input:    "A  added.go",
			expected: Entry{Index: 'A', Worktree: ' ', Path: " added.go"},
			kind:     KindStaged,
		},
		{
			input:    "R  renamed.go -> moved.go",
			expected: Entry{Index: 'R', Worktree: ' ', Path: " renamed.go -> moved.go"},
			kind:     KindStaged,
		},
		{
			input: "",
			kind:  KindNone,
		},
		{
			input: "ab",
			kind:  KindNone,
		},
		{
			input: "   ",
			kind:  KindNone,
		},
	}

	for _, test := range tests {
		entry, kind := ParseLine(test.input)
		if kind != test.kind {
			t.Errorf("ParseLine(%q) kind = %v; want %v", test.input, kind, test.kind)
			continue
		}
		if kind != KindNone && entry != test.expected {
			t.Errorf("ParseLine(%q) = %+v; want %+v", test.input, entry, test.expected)
		}
	}
}

func TestParseLineWorktreeModifiedAlwaysChanged(t *testing.T) {
	// any index code loses to worktree 'M'
	for _, index := range []byte{'A', 'D', 'M', 'R', 'C', 'U'} {
		line := string([]byte{index, 'M'}) + " file.go"
		_, kind := ParseLine(line)
		if kind != KindChanged {
			t.Errorf("ParseLine(%q) kind = %v; want KindChanged", line, kind)
		}
	}
}
