package gitstatus

import (
	"strconv"
	"strings"
)

// Marker phrases in the porcelain branch header. These are
// compatibility constants tied to the English text git emits for the
// v1 branch summary; a wording change in a future git release breaks
// them, so keep them in one place.
const (
	markerInitialCommit = "Initial commit on"
	markerNoCommits     = "No commits yet on"
	markerNoBranch      = "no branch"
)

const upstreamSeparator = "..."

// RefResolver produces a display label for a detached HEAD, typically a
// tag name or an abbreviated commit hash. An empty result means no
// label could be resolved.
type RefResolver func() string

// parseBranchHeader interprets the payload of the "##" branch summary
// line and returns the branch name together with the ahead/behind
// commit counts relative to the upstream.
func parseBranchHeader(payload string, resolve RefResolver) (branch string, ahead, behind int) {
	payload = strings.TrimSpace(payload)

	switch {
	case strings.Contains(payload, markerInitialCommit) || strings.Contains(payload, markerNoCommits):
		// "No commits yet on main": the branch name is the last token.
		fields := strings.Fields(payload)
		if len(fields) > 0 {
			branch = fields[len(fields)-1]
		}
	case strings.Contains(payload, markerNoBranch):
		if resolve != nil {
			branch = resolve()
		}
	case !strings.Contains(payload, upstreamSeparator):
		// No upstream configured, the payload is the bare branch name.
		branch = payload
	default:
		// "main...origin/main [ahead 2, behind 1]"
		parts := strings.Split(payload, upstreamSeparator)
		branch = parts[0]

		fields := strings.Fields(parts[1])
		if len(fields) > 1 {
			divergence := strings.Join(fields[1:], " ")
			divergence = strings.TrimPrefix(divergence, "[")
			divergence = strings.TrimSuffix(divergence, "]")

			for _, segment := range strings.Split(divergence, ", ") {
				switch {
				case strings.HasPrefix(segment, "ahead"):
					ahead = parseDivergence(segment, "ahead")
				case strings.HasPrefix(segment, "behind"):
					behind = parseDivergence(segment, "behind")
				}
			}
		}
	}

	return branch, ahead, behind
}

// DetachedLabel picks the display label for a detached HEAD. tags is
// the version-sorted list of tags pointing at the commit, capped at two
// by the caller's query: the first tag wins and a second one only adds
// the "+" multiplicity marker, so two and twenty co-located tags look
// the same. With no tags the abbreviated commit hash is used, and an
// empty result means no identity could be resolved.
func DetachedLabel(tags []string, hash string) string {
	if len(tags) > 0 {
		label := tags[0]
		if len(tags) > 1 {
			label += "+"
		}
		return label
	}

	return strings.TrimSpace(hash)
}

// parseDivergence extracts the commit count from a divergence segment
// like "ahead 2". A segment that does not parse counts as zero.
func parseDivergence(segment, prefix string) int {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(segment, prefix)))
	if err != nil {
		return 0
	}
	return n
}
