// Package practice holds the pure domain logic of the advocate practice
// manager: the fee decision table, brief category rules, work record
// synthesis, dashboard view derivations and the CSV export layout. Nothing
// in this package touches the database.
package practice

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/advocatehq/advocate-practice-api/models"
)

// FullDayThresholdHours is the point at which a trial appearance bills as a
// full day instead of hourly.
const FullDayThresholdHours = 7

const dayLayout = "2006-01-02"

// ErrInvalidTimeSpent rejects a reported time that is not a positive, finite
// number of hours
var ErrInvalidTimeSpent = errors.New("time spent must be a positive number of hours")

// ValidateTimeSpent checks the reported hours before any fee is computed or
// any store call is made
func ValidateTimeSpent(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return ErrInvalidTimeSpent
	}
	return nil
}

// ComputeFee resolves the fee due for a completed brief. Court applications
// bill at the fixed motion fees, trial appearances of a full day at the day
// fee, and everything else at the hourly rate. Unknown categories fall back
// to hourly billing.
func ComputeFee(brief models.Brief, settings models.Settings, timeSpent float64) float64 {
	hourly := timeSpent * settings.HourlyRate

	if brief.Category != models.CategoryAppear {
		return hourly
	}

	switch brief.AppearType {
	case models.AppearTypeApplication:
		switch brief.ApplicationSubtype {
		case models.SubtypeUnopposed:
			return settings.UnopposedMotionCourtFee
		case models.SubtypeOpposed:
			return settings.OpposedMotionCourtFee
		default:
			return hourly
		}
	case models.AppearTypeAction:
		if timeSpent >= FullDayThresholdHours {
			return settings.DayFee
		}
		return hourly
	default:
		return hourly
	}
}

// courtSuffix renders " at <court> (<location>)" for a brief with a resolved
// court location, " at <court>" without one, and nothing when no court type
// is set. The magistrates-court "Other" choice resolves to the free-text
// location.
func courtSuffix(brief models.Brief) string {
	if brief.CourtType == "" {
		return ""
	}
	location := ""
	switch brief.CourtType {
	case models.CourtHigh:
		location = brief.HighCourtLocation
	case models.CourtMagistrates:
		location = brief.MagistratesCourtLocation
		if location == models.OtherOption {
			location = brief.CustomMagistratesCourtLocation
		}
	}
	if location != "" {
		return fmt.Sprintf(" at %s (%s)", brief.CourtType, location)
	}
	return " at " + brief.CourtType
}

// SynthesizeDescription builds the work record wording for a completed
// brief. The brief's own free text is appended only when it adds detail
// beyond the generated phrase.
func SynthesizeDescription(brief models.Brief, timeSpent float64) string {
	description := ""
	switch brief.Category {
	case models.CategoryAppear:
		suffix := courtSuffix(brief)
		switch brief.AppearType {
		case models.AppearTypeApplication:
			description = fmt.Sprintf("On appearance in application (%s)%s", strings.ToLower(brief.ApplicationSubtype), suffix)
		case models.AppearTypeAction:
			description = "On trial" + suffix
		}
	case models.CategoryConsult:
		description = fmt.Sprintf("On consultation for %.2f hours", timeSpent)
	case models.CategoryDraft:
		docType := brief.DraftType
		if docType == models.OtherOption {
			docType = brief.CustomDraftType
		}
		description = fmt.Sprintf("On drawing %s for %.2f hours", docType, timeSpent)
	}

	original := strings.TrimSpace(brief.OriginalDescription)
	if original != "" && !strings.Contains(description, original) {
		description += " - " + original
	}
	return description
}

// EffectiveRecordDate picks the date a work record carries: the brief's own
// date for appearances and consultations, the completion date for drafting
// (the day the document was finished, not the due date).
func EffectiveRecordDate(brief models.Brief, now time.Time) string {
	if brief.Category == models.CategoryDraft {
		return now.Format(dayLayout)
	}
	return brief.Date
}
