package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brief categories. The category tags which of the category-specific field
// groups below is populated; switching category discards the other groups.
const (
	CategoryAppear  = "Appear"
	CategoryConsult = "Consult"
	CategoryDraft   = "Draft"
)

// Appear types and application subtypes
const (
	AppearTypeApplication = "Application"
	AppearTypeAction      = "Action"

	SubtypeUnopposed = "Unopposed"
	SubtypeOpposed   = "Opposed"
)

// Court types
const (
	CourtHigh        = "High Court"
	CourtMagistrates = "Magistrates Court"
)

// OtherOption marks the free-text escape hatch in the magistrates-court
// location and drafting-type option lists
const OtherOption = "Other"

// Brief holds the structure for the briefs collection in mongo. A brief is a
// discrete dated task on a matter; completing it converts it into a
// WorkRecord and deletes the brief.
type Brief struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID string             `json:"userId" bson:"userId"`

	MatterID string `json:"matterId" bson:"matterId"`
	// FirmID and SelectedContactPersonNames are copied from the matter at
	// creation time and never re-synced.
	FirmID                     string   `json:"attorneysFirmId" bson:"attorneysFirmId"`
	SelectedContactPersonNames []string `json:"selectedContactPersonNames" bson:"selectedContactPersonNames"`

	Category string `json:"briefCategory" bson:"briefCategory"`

	// Appear fields
	AppearType                     string `json:"appearType" bson:"appearType"`
	ApplicationSubtype             string `json:"applicationSubtype" bson:"applicationSubtype"`
	CourtType                      string `json:"courtType" bson:"courtType"`
	HighCourtLocation              string `json:"highCourtLocation" bson:"highCourtLocation"`
	MagistratesCourtLocation       string `json:"magistratesCourtLocation" bson:"magistratesCourtLocation"`
	CustomMagistratesCourtLocation string `json:"customMagistratesCourtLocation" bson:"customMagistratesCourtLocation"`

	// Draft fields
	DraftType       string `json:"draftType" bson:"draftType"`
	CustomDraftType string `json:"customDraftType" bson:"customDraftType"`

	// Description is composed from the category fields; OriginalDescription
	// is the user's own free text.
	Description         string `json:"description" bson:"description"`
	OriginalDescription string `json:"originalDescription" bson:"originalDescription"`

	// Date is the due/appearance/consultation date in YYYY-MM-DD form.
	Date string `json:"date" bson:"date"`

	// Completed stays false for the lifetime of a brief; completion deletes
	// the document instead of flipping it. Kept for wire compatibility.
	Completed bool      `json:"completed" bson:"completed"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
