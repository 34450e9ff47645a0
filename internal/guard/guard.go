package guard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/form"
	"hackathon-registration-backend/internal/model"
	"hackathon-registration-backend/internal/store"
)

// Terminal, user-facing outcomes of a submission attempt.
var (
	// ErrNoSession means the request carried no usable session credential.
	ErrNoSession = errors.New("no session token")
	// ErrSessionExpired means the credential was once valid and the user
	// must sign in again.
	ErrSessionExpired = errors.New("session expired")
	// ErrAlreadySubmitted means a registration already exists for the user.
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// PersistenceError is an infrastructure failure while checking for or
// writing the registration record. It is surfaced, never retried.
type PersistenceError struct {
	Email string
	Step  string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s for %s: %v", e.Step, e.Email, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Identity verifies a session credential and yields the account email.
type Identity interface {
	Verify(ctx context.Context, token string) (email string, err error)
}

// SubmissionStore is the narrow persistence surface the guard needs.
// CreateSubmission must be a conditional create: it fails with
// store.ErrAlreadyExists rather than overwriting an existing record.
type SubmissionStore interface {
	HasSubmission(ctx context.Context, email string) (bool, error)
	CreateSubmission(ctx context.Context, sub *model.FormSubmission) error
}

// Notifier dispatches the confirmation for a stored registration.
type Notifier interface {
	Notify(email string) error
}

// SubmissionGuard turns an authenticated form post into a single,
// validated registration record followed by a best-effort confirmation.
type SubmissionGuard struct {
	identity Identity
	store    SubmissionStore
	notifier Notifier
}

// New creates a SubmissionGuard over its three collaborators.
func New(identity Identity, st SubmissionStore, notifier Notifier) *SubmissionGuard {
	return &SubmissionGuard{identity: identity, store: st, notifier: notifier}
}

// Submit runs the full sequence: verify identity, check for an existing
// record, validate, persist, notify. It returns the verified email on
// success. Notification failures are logged and do not affect the result:
// once the record is written the submission has succeeded.
func (g *SubmissionGuard) Submit(ctx context.Context, token string, fields form.Fields) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}

	email, err := g.identity.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			return "", ErrSessionExpired
		}
		return "", ErrNoSession
	}

	// Early exit only. The conditional create below is what actually
	// guarantees at most one record per email under concurrent submits.
	exists, err := g.store.HasSubmission(ctx, email)
	if err != nil {
		perr := &PersistenceError{Email: email, Step: "duplicate check", Err: err}
		log.Printf("Error: %v", perr)
		return "", perr
	}
	if exists {
		return "", ErrAlreadySubmitted
	}

	if verr := form.Validate(fields); verr != nil {
		return "", verr
	}

	sub := buildSubmission(email, fields)
	if err := g.store.CreateSubmission(ctx, sub); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrAlreadySubmitted
		}
		perr := &PersistenceError{Email: email, Step: "create", Err: err}
		log.Printf("Error: %v", perr)
		return "", perr
	}

	if err := g.notifier.Notify(email); err != nil {
		log.Printf("Error dispatching confirmation for %s: %v", email, err)
	}

	return email, nil
}

// buildSubmission constructs the record from validated fields. The UIN
// parse cannot fail here; validation already checked it.
func buildSubmission(email string, fields form.Fields) *model.FormSubmission {
	uin, _ := form.ParseUIN(fields.First("uin"))

	return &model.FormSubmission{
		Email:              email,
		FirstName:          fields.First("firstName"),
		LastName:           fields.First("lastName"),
		UIN:                uin,
		Gender:             fields.First("gender"),
		Year:               fields.First("year"),
		Availability:       fields.First("availability"),
		MoreAvailability:   fields.First("moreAvailability"),
		DietaryRestriction: fields.First("dietaryRestriction"),
		ShirtSize:          fields.First("shirtSize"),
		HackathonPlan:      fields.First("hackathonPlan"),
		PreWorkshops:       valuesOrEmpty(fields.All("preWorkshops")),
		Workshops:          valuesOrEmpty(fields.All("workshops")),
		JobType:            fields.First("jobType"),
		ResumeLink:         fields.First("resumeLink"),
		OtherQuestion:      fields.First("otherQuestion"),
		AppStatus:          model.StatusWaiting,
		CreatedAt:          time.Now().UTC(),
	}
}

func valuesOrEmpty(vs []string) []string {
	if vs == nil {
		return []string{}
	}
	return vs
}
