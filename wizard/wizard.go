// Package wizard implements the three-step bootcamp registration flow:
// Personal Info -> Experience -> Payment -> Submitted. Each forward
// transition is gated by that step's validation; going back never
// validates; Submitted is terminal.
package wizard

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Step int

const (
	StepPersonalInfo Step = 1
	StepExperience   Step = 2
	StepPayment      Step = 3
	StepSubmitted    Step = 4
)

// MaxProofSize is the payment proof size ceiling (5 MiB).
const MaxProofSize = 5 << 20

var (
	// ErrSubmitted is returned for any transition attempted on a terminal draft.
	ErrSubmitted = errors.New("registration already submitted")
	// ErrWrongStep is returned when an operation does not match the current step.
	ErrWrongStep = errors.New("operation not allowed at this step")
)

var validate = validator.New()

type PersonalInfo struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
}

type Background struct {
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=beginner intermediate advanced"`
	ReferredBy      string `json:"referred_by"`
	Motivation      string `json:"motivation"`
}

// Proof is a payment screenshot accepted into the draft. It is only ever
// set through AttachProof, which enforces the image-type and size checks.
type Proof struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// StepError carries per-field validation messages for the current step.
type StepError struct {
	Fields map[string]string
}

func (e *StepError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// Draft is the in-progress registration. Not safe for concurrent use;
// callers serialise access per draft.
type Draft struct {
	Step       Step
	Personal   PersonalInfo
	Background Background
	Proof      *Proof
}

// New returns a draft positioned at the first step.
func New() *Draft {
	return &Draft{Step: StepPersonalInfo}
}

// SetPersonalInfo records step-1 fields. Values are trimmed; validation
// happens on Next, not here.
func (d *Draft) SetPersonalInfo(p PersonalInfo) error {
	if d.Step == StepSubmitted {
		return ErrSubmitted
	}
	if d.Step != StepPersonalInfo {
		return ErrWrongStep
	}
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	d.Personal = p
	return nil
}

// SetBackground records step-2 fields.
func (d *Draft) SetBackground(b Background) error {
	if d.Step == StepSubmitted {
		return ErrSubmitted
	}
	if d.Step != StepExperience {
		return ErrWrongStep
	}
	b.ExperienceLevel = strings.TrimSpace(b.ExperienceLevel)
	d.Background = b
	return nil
}

// Next validates the current step and advances. Advancing past the
// payment step happens through Complete, never Next.
func (d *Draft) Next() error {
	switch d.Step {
	case StepPersonalInfo:
		if err := checkStruct(d.Personal); err != nil {
			return err
		}
		d.Step = StepExperience
	case StepExperience:
		if err := checkStruct(d.Background); err != nil {
			return err
		}
		d.Step = StepPayment
	case StepSubmitted:
		return ErrSubmitted
	default:
		return ErrWrongStep
	}
	return nil
}

// Prev steps back without validating. At the first step it is a no-op.
func (d *Draft) Prev() error {
	switch d.Step {
	case StepExperience:
		d.Step = StepPersonalInfo
	case StepPayment:
		d.Step = StepExperience
	case StepSubmitted:
		return ErrSubmitted
	}
	return nil
}

// AttachProof accepts a payment screenshot into the draft. A file failing
// the image-type or size check is rejected and the draft's proof is left
// unchanged; the wizard neither advances nor resets.
func (d *Draft) AttachProof(p Proof) error {
	if d.Step == StepSubmitted {
		return ErrSubmitted
	}
	if d.Step != StepPayment {
		return ErrWrongStep
	}
	if !strings.HasPrefix(p.ContentType, "image/") {
		return &StepError{Fields: map[string]string{"payment_proof": "Payment proof must be an image file!"}}
	}
	if p.Size > MaxProofSize {
		return &StepError{Fields: map[string]string{"payment_proof": "Payment proof must not exceed 5 MB!"}}
	}
	d.Proof = &p
	return nil
}

// Submittable reports whether the terminal submit transition is reachable:
// payment step, all earlier steps valid, proof attached.
func (d *Draft) Submittable() error {
	if d.Step == StepSubmitted {
		return ErrSubmitted
	}
	if d.Step != StepPayment {
		return ErrWrongStep
	}
	if err := checkStruct(d.Personal); err != nil {
		return err
	}
	if err := checkStruct(d.Background); err != nil {
		return err
	}
	if d.Proof == nil {
		return &StepError{Fields: map[string]string{"payment_proof": "Payment proof is required!"}}
	}
	return nil
}

// Complete moves the draft to its terminal state. Callers invoke it only
// after the upload and insert both succeeded.
func (d *Draft) Complete() {
	d.Step = StepSubmitted
}

func checkStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fieldKey(fe.Field())] = fieldMessage(fe)
		}
	} else {
		fields["request"] = "Invalid input!"
	}
	return &StepError{Fields: fields}
}

func fieldKey(name string) string {
	switch name {
	case "FullName":
		return "full_name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "ExperienceLevel":
		return "experience_level"
	}
	return strings.ToLower(name)
}

func fieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Email" && fe.Tag() == "email":
		return "Invalid email!"
	case fe.Tag() == "oneof":
		return "Experience level must be beginner, intermediate or advanced!"
	}
	return "This field is required!"
}
