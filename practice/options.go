package practice

import (
	"sort"
	"strings"

	"github.com/advocatehq/advocate-practice-api/models"
)

// DefaultDraftingOptions returns the initial drafting type list written to a
// user's preferences on first read
func DefaultDraftingOptions() []string {
	return []string{
		"Opinion",
		"Particulars of Claim",
		"Plea",
		"Replication",
		"Application Papers",
		"Answering Affidavit",
		"Replying Affidavit",
		models.OtherOption,
	}
}

// NormalizeDraftingOptions trims, deduplicates and alphabetizes the drafting
// type list, keeping the "Other" sentinel at the end where the UI expects it
func NormalizeDraftingOptions(options []string) []string {
	seen := make(map[string]struct{}, len(options))
	normalized := make([]string, 0, len(options))
	hasOther := false
	for _, option := range options {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		if option == models.OtherOption {
			hasOther = true
			continue
		}
		if _, dup := seen[option]; dup {
			continue
		}
		seen[option] = struct{}{}
		normalized = append(normalized, option)
	}
	sort.Strings(normalized)
	if hasOther {
		normalized = append(normalized, models.OtherOption)
	}
	return normalized
}

// AddDraftingOption inserts a new drafting type into the list, returning the
// normalized result and whether the list changed
func AddDraftingOption(options []string, option string) ([]string, bool) {
	option = strings.TrimSpace(option)
	if option == "" {
		return NormalizeDraftingOptions(options), false
	}
	for _, existing := range options {
		if strings.EqualFold(strings.TrimSpace(existing), option) {
			return NormalizeDraftingOptions(options), false
		}
	}
	return NormalizeDraftingOptions(append(options, option)), true
}
