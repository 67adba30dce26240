package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttorneyFirm holds the structure for the attorneys collection in mongo.
// A firm instructs the advocate on one or more matters.
type AttorneyFirm struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID         string             `json:"userId" bson:"userId"`
	FirmName       string             `json:"firmName" bson:"firmName"`
	Address        FirmAddress        `json:"address" bson:"address"`
	GeneralPhone   string             `json:"generalPhone" bson:"generalPhone"`
	GeneralEmail   string             `json:"generalEmail" bson:"generalEmail"`
	ContactPersons []ContactPerson    `json:"contactPersons" bson:"contactPersons"`
	// LegacyContactPerson carries the single-contact field written by early
	// versions of the firm documents. Readers fold it into ContactPersons.
	LegacyContactPerson string    `json:"contactPerson,omitempty" bson:"contactPerson,omitempty"`
	CreatedAt           time.Time `json:"createdAt" bson:"createdAt"`
}

// FirmAddress holds the postal address of a firm, all parts optional
type FirmAddress struct {
	Building string `json:"building" bson:"building"`
	Street   string `json:"street" bson:"street"`
	City     string `json:"city" bson:"city"`
	Province string `json:"province" bson:"province"`
}

// ContactPerson holds a single named contact at a firm
type ContactPerson struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// Contacts returns the contact persons, folding in the legacy single-contact
// field when the list is empty
func (a AttorneyFirm) Contacts() []ContactPerson {
	if len(a.ContactPersons) > 0 {
		return a.ContactPersons
	}
	if a.LegacyContactPerson != "" {
		return []ContactPerson{{Name: a.LegacyContactPerson, Phone: a.GeneralPhone}}
	}
	return nil
}
