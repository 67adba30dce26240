package practice

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/advocatehq/advocate-practice-api/models"
)

// Display date formats selectable in settings
const (
	DateFormatISO = "YYYY-MM-DD"
	DateFormatZA  = "DD/MM/YYYY"
	DateFormatUS  = "MM/DD/YYYY"
)

// ExportHeaders is the fixed column layout of the work record CSV export
var ExportHeaders = []string{
	"Attorneys' Firm",
	"Matter",
	"Attorney's Reference",
	"Date",
	"Description",
	"Fee (R)",
	"Contact Person Names",
	"Contact Person Phones",
	"Contact Person Emails",
	"Completed At (UTC)",
	"Invoice No.",
	"Brief Category",
	"Appear Type",
	"Application Subtype",
	"Draft Type",
	"Custom Draft Type",
	"Court Type",
	"High Court Location",
	"Magistrates Court Location",
	"Custom Magistrates Court Location",
	"Time Spent (Hours)",
}

// FormatDate renders a stored YYYY-MM-DD date in the user's chosen display
// format. Unparseable input renders as an empty cell rather than failing the
// whole export.
func FormatDate(value, format string) string {
	day, err := time.Parse(dayLayout, value)
	if err != nil {
		return ""
	}
	switch format {
	case DateFormatZA:
		return day.Format("02/01/2006")
	case DateFormatUS:
		return day.Format("01/02/2006")
	default:
		return day.Format(dayLayout)
	}
}

// FormatFirmAddress joins the non-empty address parts with commas
func FormatFirmAddress(address models.FirmAddress) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{address.Building, address.Street, address.City, address.Province} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func joinContactField(contacts []models.ContactDetail, pick func(models.ContactDetail) string) string {
	values := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		values = append(values, pick(contact))
	}
	return strings.Join(values, "; ")
}

// WorkRecordsCSV renders the records as a CSV document in the export column
// layout, dates in the user's display format
func WorkRecordsCSV(records []models.WorkRecord, dateFormat string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(ExportHeaders); err != nil {
		return nil, err
	}
	for _, record := range records {
		row := []string{
			record.FirmName,
			record.MatterName,
			record.AttorneyReference,
			FormatDate(record.Date, dateFormat),
			record.Description,
			fmt.Sprintf("%.2f", record.FeeDue),
			joinContactField(record.ContactPersons, func(c models.ContactDetail) string { return c.Name }),
			joinContactField(record.ContactPersons, func(c models.ContactDetail) string { return c.Phone }),
			joinContactField(record.ContactPersons, func(c models.ContactDetail) string { return c.Email }),
			record.CompletedAt.UTC().Format("2006-01-02 15:04:05"),
			record.InvoiceNumber,
			record.Category,
			record.AppearType,
			record.ApplicationSubtype,
			record.DraftType,
			record.CustomDraftType,
			record.CourtType,
			record.HighCourtLocation,
			record.MagistratesCourtLocation,
			record.CustomMagistratesCourtLocation,
			fmt.Sprintf("%.2f", record.TimeSpent),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename names the download after the day it was generated
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("work_records_%s.csv", now.Format(dayLayout))
}
