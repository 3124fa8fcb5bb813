package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserLogin is one external-provider login reference embedded in a User.
type UserLogin struct {
	LoginProvider string `bson:"login_provider" json:"login_provider"`
	ProviderKey   string `bson:"provider_key" json:"provider_key"`
}

// UserClaim is one (type, value) claim embedded in a User.
type UserClaim struct {
	ClaimType  string `bson:"claim_type" json:"claim_type"`
	ClaimValue string `bson:"claim_value" json:"claim_value"`
}

// User is the account aggregate. Roles, logins, and claims live inside
// the user document as arrays; they have no identity of their own and
// are only ever persisted by replacing the whole document.
//
// Because persistence is whole-document replace, two concurrent edits
// to different embedded fields of the same user race: the later
// write-back wins and silently drops the earlier change. Callers that
// need atomicity must serialize writes per user id.
type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName             string             `bson:"user_name" json:"user_name"`
	Email                string             `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber          string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	PhoneNumberConfirmed bool               `bson:"phone_number_confirmed" json:"phone_number_confirmed"`
	TwoFactorEnabled     bool               `bson:"two_factor_enabled" json:"two_factor_enabled"`

	PasswordHash  string `bson:"password_hash,omitempty" json:"-"`
	SecurityStamp string `bson:"security_stamp,omitempty" json:"-"`

	AccessFailedCount int        `bson:"access_failed_count" json:"-"`
	LockoutEndDateUTC *time.Time `bson:"lockout_end_date_utc,omitempty" json:"-"`

	Roles  []string    `bson:"roles" json:"roles"`
	Logins []UserLogin `bson:"logins" json:"logins"`
	Claims []UserClaim `bson:"claims" json:"claims"`
}

// GetID returns the document id.
func (u *User) GetID() primitive.ObjectID { return u.ID }

// SetID sets the document id.
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }
