package practice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/advocatehq/advocate-practice-api/models"
)

// Fixed option lists for court locations
var (
	HighCourtLocations        = []string{"Durban", "Pietermaritzburg"}
	MagistratesCourtLocations = []string{"Pinetown", "Durban", "Verulam", "Pietermaritzburg", "Scottburgh", models.OtherOption}
)

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

// ResetDependentFields enforces the category union: any field that does not
// belong to the brief's current selections is cleared. Switching category
// discards the previous category's payload entirely; changing appearType away
// from Application drops the subtype; changing courtType drops the other
// branch's locations. Applying it twice yields the same brief.
func ResetDependentFields(brief models.Brief) models.Brief {
	out := brief

	if out.Category != models.CategoryAppear {
		out.AppearType = ""
		out.ApplicationSubtype = ""
		out.CourtType = ""
		out.HighCourtLocation = ""
		out.MagistratesCourtLocation = ""
		out.CustomMagistratesCourtLocation = ""
	}
	if out.Category != models.CategoryDraft {
		out.DraftType = ""
		out.CustomDraftType = ""
	}
	if out.AppearType != models.AppearTypeApplication {
		out.ApplicationSubtype = ""
	}
	if out.CourtType != models.CourtHigh {
		out.HighCourtLocation = ""
	}
	if out.CourtType != models.CourtMagistrates {
		out.MagistratesCourtLocation = ""
		out.CustomMagistratesCourtLocation = ""
	}
	if out.MagistratesCourtLocation != models.OtherOption {
		out.CustomMagistratesCourtLocation = ""
	}
	return out
}

// ValidateBrief rejects a brief whose category-specific fields are missing
// or outside their fixed option lists. Call after ResetDependentFields so
// stale cross-category fields cannot fail validation.
func ValidateBrief(brief models.Brief) error {
	if strings.TrimSpace(brief.Date) == "" || brief.Category == "" {
		return errors.New("brief date and category are required")
	}
	if _, err := time.Parse(dayLayout, brief.Date); err != nil {
		return errors.New("brief date must be in YYYY-MM-DD form")
	}

	switch brief.Category {
	case models.CategoryAppear:
		if brief.AppearType != models.AppearTypeApplication && brief.AppearType != models.AppearTypeAction {
			return errors.New("an appearance type of Application or Action is required")
		}
		if brief.AppearType == models.AppearTypeApplication &&
			brief.ApplicationSubtype != models.SubtypeUnopposed && brief.ApplicationSubtype != models.SubtypeOpposed {
			return errors.New("an application subtype of Unopposed or Opposed is required")
		}
		switch brief.CourtType {
		case models.CourtHigh:
			if !contains(HighCourtLocations, brief.HighCourtLocation) {
				return errors.New("a High Court location is required")
			}
		case models.CourtMagistrates:
			if !contains(MagistratesCourtLocations, brief.MagistratesCourtLocation) {
				return errors.New("a Magistrates Court location is required")
			}
			if brief.MagistratesCourtLocation == models.OtherOption && strings.TrimSpace(brief.CustomMagistratesCourtLocation) == "" {
				return errors.New("the Magistrates Court location must be specified")
			}
		default:
			return errors.New("a court type of High Court or Magistrates Court is required")
		}
	case models.CategoryConsult:
		// nothing beyond the free-text description
	case models.CategoryDraft:
		if brief.DraftType == "" {
			return errors.New("a drafting type is required")
		}
		if brief.DraftType == models.OtherOption && strings.TrimSpace(brief.CustomDraftType) == "" {
			return errors.New("the custom drafting type must be specified")
		}
	default:
		return fmt.Errorf("unknown brief category %q", brief.Category)
	}
	return nil
}

// ComposeDescription derives the brief's human-readable description from its
// category fields. It is recomputed from scratch on every change, never
// edited incrementally.
func ComposeDescription(brief models.Brief) string {
	original := strings.TrimSpace(brief.OriginalDescription)

	switch brief.Category {
	case models.CategoryAppear:
		description := "Appear: " + brief.AppearType
		if brief.AppearType == models.AppearTypeApplication {
			description += fmt.Sprintf(" (%s)", brief.ApplicationSubtype)
		}
		description += courtSuffix(brief)
		if original != "" {
			description += " - " + original
		}
		return description
	case models.CategoryConsult:
		return "Consult: " + original
	case models.CategoryDraft:
		description := "Draft: " + brief.DraftType
		if brief.DraftType == models.OtherOption {
			description += fmt.Sprintf(" (%s)", strings.TrimSpace(brief.CustomDraftType))
		}
		if original != "" {
			description += " - " + original
		}
		return description
	}
	return original
}
