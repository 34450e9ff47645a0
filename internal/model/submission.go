package model

import "time"

// AppStatus is the review state of a registration. It is set to
// StatusWaiting when the form is submitted and only changed by the
// organizer review tooling, never by the submission path.
type AppStatus string

const (
	StatusWaiting       AppStatus = "waiting"
	StatusDeclined      AppStatus = "declined"
	StatusWaitlist      AppStatus = "waitlist"
	StatusAccepted      AppStatus = "accepted"
	StatusUserAccepted  AppStatus = "userAccepted"
	StatusFullyAccepted AppStatus = "fullyAccepted"
)

// FormSubmission is a participant's registration record. The verified
// account email is the key: one submission per user.
type FormSubmission struct {
	Email     string `gorm:"primaryKey;size:254" json:"email"`
	FirstName string `gorm:"size:128;not null" json:"firstName"`
	LastName  string `gorm:"size:128;not null" json:"lastName"`
	UIN       int    `gorm:"not null" json:"uin"`

	Gender             string `gorm:"size:64;not null" json:"gender"`
	Year               string `gorm:"size:64;not null" json:"year"`
	Availability       string `gorm:"size:64;not null" json:"availability"`
	MoreAvailability   string `json:"moreAvailability"`
	DietaryRestriction string `gorm:"size:64;not null" json:"dietaryRestriction"`
	ShirtSize          string `gorm:"size:16;not null" json:"shirtSize"`
	HackathonPlan      string `gorm:"size:64;not null" json:"hackathonPlan"`

	PreWorkshops []string `gorm:"serializer:json" json:"preWorkshops"`
	Workshops    []string `gorm:"serializer:json" json:"workshops"`

	JobType       string `gorm:"size:64" json:"jobType"`
	ResumeLink    string `json:"resumeLink"`
	OtherQuestion string `json:"otherQuestion"`

	AppStatus AppStatus `gorm:"size:32;not null" json:"appStatus"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
