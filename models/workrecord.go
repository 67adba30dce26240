package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkRecord holds the structure for the workRecords collection in mongo.
// It is the billing-ready record produced when a brief is completed. All
// matter/firm/contact fields are snapshots taken at completion time so the
// record stays meaningful if its sources are later edited or deleted.
type WorkRecord struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID string             `json:"userId" bson:"userId"`

	BriefID             string `json:"briefId" bson:"briefId"`
	Description         string `json:"description" bson:"description"`
	OriginalDescription string `json:"originalDescription" bson:"originalDescription"`

	TimeSpent float64 `json:"timeSpent" bson:"timeSpent"`
	FeeDue    float64 `json:"feeDue" bson:"feeDue"`
	Date      string  `json:"date" bson:"date"`

	MatterID          string          `json:"matterId" bson:"matterId"`
	MatterName        string          `json:"matterName" bson:"matterName"`
	FirmID            string          `json:"attorneysFirmId" bson:"attorneysFirmId"`
	FirmName          string          `json:"attorneysFirmName" bson:"attorneysFirmName"`
	FirmAddress       string          `json:"attorneysFirmAddress" bson:"attorneysFirmAddress"`
	AttorneyReference string          `json:"attorneyReference" bson:"attorneyReference"`
	ContactPersons    []ContactDetail `json:"attorneyContactPersonsDetails" bson:"attorneyContactPersonsDetails"`

	Category                       string `json:"briefCategory" bson:"briefCategory"`
	AppearType                     string `json:"appearType" bson:"appearType"`
	ApplicationSubtype             string `json:"applicationSubtype" bson:"applicationSubtype"`
	DraftType                      string `json:"draftType" bson:"draftType"`
	CustomDraftType                string `json:"customDraftType" bson:"customDraftType"`
	CourtType                      string `json:"courtType" bson:"courtType"`
	HighCourtLocation              string `json:"highCourtLocation" bson:"highCourtLocation"`
	MagistratesCourtLocation       string `json:"magistratesCourtLocation" bson:"magistratesCourtLocation"`
	CustomMagistratesCourtLocation string `json:"customMagistratesCourtLocation" bson:"customMagistratesCourtLocation"`

	// InvoiceNumber is written empty at completion and assigned later by the
	// invoice endpoint; no other field of a work record is ever updated.
	InvoiceNumber string    `json:"invoiceNumber" bson:"invoiceNumber"`
	CompletedAt   time.Time `json:"completedAt" bson:"completedAt"`
}

// ContactDetail is the snapshot of a firm contact taken at completion time
type ContactDetail struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}
