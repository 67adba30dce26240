package practice

import (
	"time"

	"github.com/advocatehq/advocate-practice-api/models"
)

const notAvailable = "N/A"

// BuildWorkRecord converts a completed brief into its billing record. The
// matter and firm may be nil when they have since been deleted; the record
// then carries placeholder names. Everything on the record is a snapshot:
// later edits to the matter or firm never touch it.
func BuildWorkRecord(brief models.Brief, matter *models.Matter, firm *models.AttorneyFirm,
	settings models.Settings, timeSpent float64, now time.Time) (models.WorkRecord, error) {

	if err := ValidateTimeSpent(timeSpent); err != nil {
		return models.WorkRecord{}, err
	}

	record := models.WorkRecord{
		UserID:              brief.UserID,
		BriefID:             brief.ID.Hex(),
		Description:         SynthesizeDescription(brief, timeSpent),
		OriginalDescription: brief.OriginalDescription,
		TimeSpent:           timeSpent,
		FeeDue:              ComputeFee(brief, settings, timeSpent),
		Date:                EffectiveRecordDate(brief, now),

		MatterID:          brief.MatterID,
		MatterName:        "Unknown Matter",
		FirmID:            brief.FirmID,
		FirmName:          notAvailable,
		FirmAddress:       notAvailable,
		AttorneyReference: notAvailable,
		ContactPersons:    snapshotContacts(brief, firm),

		Category:                       fallback(brief.Category),
		AppearType:                     fallback(brief.AppearType),
		ApplicationSubtype:             fallback(brief.ApplicationSubtype),
		DraftType:                      fallback(brief.DraftType),
		CustomDraftType:                fallback(brief.CustomDraftType),
		CourtType:                      brief.CourtType,
		HighCourtLocation:              brief.HighCourtLocation,
		MagistratesCourtLocation:       brief.MagistratesCourtLocation,
		CustomMagistratesCourtLocation: brief.CustomMagistratesCourtLocation,

		InvoiceNumber: "",
		CompletedAt:   now,
	}

	if matter != nil {
		record.MatterName = matter.Name
		if matter.AttorneyReference != "" {
			record.AttorneyReference = matter.AttorneyReference
		}
	}
	if firm != nil {
		record.FirmName = firm.FirmName
		record.FirmAddress = FormatFirmAddress(firm.Address)
	}
	return record, nil
}

// snapshotContacts resolves the brief's selected contact names against the
// firm's contact list, recording N/A for details no longer resolvable
func snapshotContacts(brief models.Brief, firm *models.AttorneyFirm) []models.ContactDetail {
	var firmContacts []models.ContactPerson
	if firm != nil {
		firmContacts = firm.Contacts()
	}

	details := make([]models.ContactDetail, 0, len(brief.SelectedContactPersonNames))
	for _, name := range brief.SelectedContactPersonNames {
		detail := models.ContactDetail{Name: name, Phone: notAvailable, Email: notAvailable}
		for _, contact := range firmContacts {
			if contact.Name == name {
				if contact.Phone != "" {
					detail.Phone = contact.Phone
				}
				if contact.Email != "" {
					detail.Email = contact.Email
				}
				break
			}
		}
		details = append(details, detail)
	}
	return details
}

func fallback(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
