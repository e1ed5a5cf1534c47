package models

import "time"

// Participant is one registered attendee. UID and Email are unique at the
// store level; CheckedIn flips to true at most once and CheckinTime keeps
// the timestamp of that first transition.
type Participant struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"  json:"-"`
	UID         string     `gorm:"uniqueIndex;not null"      json:"uid"`
	Name        string     `gorm:"not null"                  json:"name"`
	Email       string     `gorm:"uniqueIndex;not null"      json:"email"`
	Phone       string     `json:"phone"`
	College     string     `json:"college"`
	Role        string     `gorm:"not null"                  json:"role"`
	CheckedIn   bool       `gorm:"not null;default:false"    json:"checked_in"`
	CheckinTime *time.Time `json:"checkin_time"`
	QRPath      string     `json:"qr_path,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// User is a staff account. Accounts are provisioned out of band; there is
// no self-service signup.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
	Active       bool   `gorm:"not null;default:true"    json:"active"`
}

const (
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)
