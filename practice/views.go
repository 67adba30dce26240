package practice

import (
	"sort"
	"strings"
	"time"

	"github.com/advocatehq/advocate-practice-api/models"
)

// Matter sort keys for the dashboard list
const (
	SortByName     = "name"
	SortByAttorney = "attorney"
	SortByDueDate  = "dueDate"

	SortAscending  = "asc"
	SortDescending = "desc"
)

// farFuture is the sentinel due date for matters with no dated briefs; they
// sort after every real date in both directions.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// MatterWithBriefs annotates a matter with its briefs for dashboard display
type MatterWithBriefs struct {
	models.Matter
	Briefs []models.Brief `json:"briefs"`
}

// AttachBriefs pairs each matter with the briefs that reference it
func AttachBriefs(matters []models.Matter, briefs []models.Brief) []MatterWithBriefs {
	combined := make([]MatterWithBriefs, 0, len(matters))
	for _, matter := range matters {
		entry := MatterWithBriefs{Matter: matter}
		id := matter.ID.Hex()
		for _, brief := range briefs {
			if brief.MatterID == id {
				entry.Briefs = append(entry.Briefs, brief)
			}
		}
		combined = append(combined, entry)
	}
	return combined
}

func parseDay(value string) (time.Time, bool) {
	day, err := time.Parse(dayLayout, value)
	return day, err == nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar day,
// time-of-day ignored
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sortBriefsByDate(briefs []models.Brief) {
	sort.SliceStable(briefs, func(i, j int) bool {
		di, oki := parseDay(briefs[i].Date)
		dj, okj := parseDay(briefs[j].Date)
		if !oki {
			return false
		}
		if !okj {
			return true
		}
		return di.Before(dj)
	})
}

func filterBriefs(briefs []models.Brief, keep func(day time.Time) bool) []models.Brief {
	out := make([]models.Brief, 0)
	for _, brief := range briefs {
		if brief.Completed {
			continue
		}
		day, ok := parseDay(brief.Date)
		if !ok {
			continue
		}
		if keep(day) {
			out = append(out, brief)
		}
	}
	sortBriefsByDate(out)
	return out
}

// BriefsForToday returns the incomplete briefs dated on now's calendar day
func BriefsForToday(briefs []models.Brief, now time.Time) []models.Brief {
	today := startOfDay(now)
	return filterBriefs(briefs, func(day time.Time) bool {
		return day.Equal(today)
	})
}

// PastDueBriefs returns the incomplete briefs dated strictly before now's
// calendar day, oldest first
func PastDueBriefs(briefs []models.Brief, now time.Time) []models.Brief {
	today := startOfDay(now)
	return filterBriefs(briefs, func(day time.Time) bool {
		return day.Before(today)
	})
}

// UpcomingBriefs returns the incomplete briefs from today onwards, or, when
// a dashboard filter date other than today is set, exactly the briefs on
// that date
func UpcomingBriefs(briefs []models.Brief, now time.Time, filterDate *time.Time) []models.Brief {
	today := startOfDay(now)
	if filterDate != nil && !SameDay(*filterDate, now) {
		target := startOfDay(*filterDate)
		return filterBriefs(briefs, func(day time.Time) bool {
			return day.Equal(target)
		})
	}
	return filterBriefs(briefs, func(day time.Time) bool {
		return !day.Before(today)
	})
}

// earliestBriefDate finds the nearest dated brief of a matter, or the
// far-future sentinel when it has none
func earliestBriefDate(entry MatterWithBriefs) time.Time {
	earliest := farFuture
	for _, brief := range entry.Briefs {
		if day, ok := parseDay(brief.Date); ok && day.Before(earliest) {
			earliest = day
		}
	}
	return earliest
}

// SortMatters orders the annotated matter list by name, assigned firm name
// or nearest brief due date, ascending or descending. Matters without a firm
// sort as an empty firm name; matters without briefs sort last on due date
// in both directions.
func SortMatters(entries []MatterWithBriefs, firms []models.AttorneyFirm, sortBy, direction string) []MatterWithBriefs {
	firmNames := make(map[string]string, len(firms))
	for _, firm := range firms {
		firmNames[firm.ID.Hex()] = firm.FirmName
	}

	sorted := make([]MatterWithBriefs, len(entries))
	copy(sorted, entries)

	descending := direction == SortDescending
	less := func(i, j int) bool {
		switch sortBy {
		case SortByAttorney:
			if descending {
				return firmNames[sorted[j].AssignedFirmID] < firmNames[sorted[i].AssignedFirmID]
			}
			return firmNames[sorted[i].AssignedFirmID] < firmNames[sorted[j].AssignedFirmID]
		case SortByDueDate:
			di := earliestBriefDate(sorted[i])
			dj := earliestBriefDate(sorted[j])
			// Reversing the direction never moves briefless matters off the end.
			if di.Equal(farFuture) || dj.Equal(farFuture) {
				return dj.Equal(farFuture) && !di.Equal(farFuture)
			}
			if descending {
				return dj.Before(di)
			}
			return di.Before(dj)
		default:
			if descending {
				return sorted[j].Name < sorted[i].Name
			}
			return sorted[i].Name < sorted[j].Name
		}
	}
	sort.SliceStable(sorted, less)
	return sorted
}

// CalendarDayContent lists the descriptions of briefs falling on the given
// day, truncated to the text before the first "-" separator
func CalendarDayContent(briefs []models.Brief, day time.Time) []string {
	target := startOfDay(day)
	content := make([]string, 0)
	for _, brief := range briefs {
		briefDay, ok := parseDay(brief.Date)
		if !ok || !briefDay.Equal(target) {
			continue
		}
		content = append(content, strings.TrimSpace(strings.SplitN(brief.Description, "-", 2)[0]))
	}
	return content
}
