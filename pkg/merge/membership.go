package merge

import (
	"strings"

	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

// MembershipChange is the reconciliation plan for one canonical membership on
// one brewery: rows to delete because they are stale or duplicate spellings,
// and whether the single canonical row still needs to be appended.
type MembershipChange struct {
	Stale  []model.Membership
	Append bool
}

// Empty reports whether the plan requires no writes at all.
func (c MembershipChange) Empty() bool {
	return len(c.Stale) == 0 && !c.Append
}

// ReconcileMembership plans the canonicalization of one membership badge.
// Any existing entry whose name matches the canonical name or one of its
// known aliases (case-insensitive substring, either direction) is considered
// the same badge; all such entries except an exact canonical one are removed,
// and the canonical entry is appended when missing. Reconciling an
// already-canonical list is a no-op, keeping repeated runs idempotent.
func ReconcileMembership(existing []model.Membership, canonical string, aliases []string) MembershipChange {
	tokens := make([]string, 0, len(aliases)+1)
	tokens = append(tokens, strings.ToLower(canonical))

	for _, alias := range aliases {
		tokens = append(tokens, strings.ToLower(alias))
	}

	change := MembershipChange{Append: true}
	haveCanonical := false

	for index := range existing {
		entry := existing[index]
		if !matchesToken(strings.ToLower(entry.Name), tokens) {
			continue
		}

		if entry.Name == canonical && !haveCanonical {
			haveCanonical = true
			change.Append = false

			continue
		}

		change.Stale = append(change.Stale, entry)
	}

	return change
}

func matchesToken(name string, tokens []string) bool {
	for _, token := range tokens {
		if token == "" {
			continue
		}

		if strings.Contains(name, token) || strings.Contains(token, name) {
			return true
		}
	}

	return false
}
