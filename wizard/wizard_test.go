package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPersonal() PersonalInfo {
	return PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com", Phone: "0812345678"}
}

func validBackground() Background {
	return Background{ExperienceLevel: "beginner"}
}

// advance walks a fresh draft to the payment step with valid inputs.
func advanceToPayment(t *testing.T) *Draft {
	t.Helper()
	d := New()
	require.NoError(t, d.SetPersonalInfo(validPersonal()))
	require.NoError(t, d.Next())
	require.NoError(t, d.SetBackground(validBackground()))
	require.NoError(t, d.Next())
	require.Equal(t, StepPayment, d.Step)
	return d
}

func TestHappyPath(t *testing.T) {
	d := advanceToPayment(t)

	err := d.AttachProof(Proof{Filename: "proof.png", ContentType: "image/png", Size: 1024, Data: []byte("png")})
	require.NoError(t, err)
	require.NoError(t, d.Submittable())

	d.Complete()
	assert.Equal(t, StepSubmitted, d.Step)

	// Submitted is terminal
	assert.ErrorIs(t, d.Next(), ErrSubmitted)
	assert.ErrorIs(t, d.Prev(), ErrSubmitted)
	assert.ErrorIs(t, d.SetPersonalInfo(validPersonal()), ErrSubmitted)
	assert.ErrorIs(t, d.AttachProof(Proof{ContentType: "image/png"}), ErrSubmitted)
}

func TestNextGatesOnStepValidation(t *testing.T) {
	d := New()

	err := d.Next()
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Fields, "full_name")
	assert.Contains(t, stepErr.Fields, "email")
	assert.Contains(t, stepErr.Fields, "phone")
	assert.Equal(t, StepPersonalInfo, d.Step)

	// A malformed email is rejected even with everything else present
	require.NoError(t, d.SetPersonalInfo(PersonalInfo{FullName: "Ada", Email: "not-an-email", Phone: "0812"}))
	err = d.Next()
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Fields, "email")
	assert.Equal(t, StepPersonalInfo, d.Step)
}

func TestExperienceLevelEnum(t *testing.T) {
	d := New()
	require.NoError(t, d.SetPersonalInfo(validPersonal()))
	require.NoError(t, d.Next())

	require.NoError(t, d.SetBackground(Background{ExperienceLevel: "wizard"}))
	err := d.Next()
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Fields, "experience_level")
	assert.Equal(t, StepExperience, d.Step)
}

func TestPrevNeverValidates(t *testing.T) {
	d := advanceToPayment(t)

	require.NoError(t, d.Prev())
	assert.Equal(t, StepExperience, d.Step)
	require.NoError(t, d.Prev())
	assert.Equal(t, StepPersonalInfo, d.Step)

	// Cannot go below the first step
	require.NoError(t, d.Prev())
	assert.Equal(t, StepPersonalInfo, d.Step)
}

func TestAttachProofRejectsNonImage(t *testing.T) {
	d := advanceToPayment(t)

	err := d.AttachProof(Proof{Filename: "proof.pdf", ContentType: "application/pdf", Size: 1024})
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Fields, "payment_proof")
	assert.Nil(t, d.Proof)
	assert.Equal(t, StepPayment, d.Step)
}

func TestAttachProofRejectsOversize(t *testing.T) {
	d := advanceToPayment(t)

	// 6 MB PNG: rejected, draft proof stays unset, wizard neither advances nor resets
	err := d.AttachProof(Proof{Filename: "big.png", ContentType: "image/png", Size: 6 << 20})
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Fields, "payment_proof")
	assert.Nil(t, d.Proof)
	assert.Equal(t, StepPayment, d.Step)

	// Exactly at the limit is accepted
	require.NoError(t, d.AttachProof(Proof{Filename: "ok.png", ContentType: "image/png", Size: MaxProofSize}))
	assert.NotNil(t, d.Proof)
}

func TestAttachProofWrongStep(t *testing.T) {
	d := New()
	err := d.AttachProof(Proof{ContentType: "image/png", Size: 10})
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestSubmitRequiresProof(t *testing.T) {
	d := advanceToPayment(t)

	err := d.Submittable()
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, stepErr.Fields, "payment_proof")

	// Submit is unreachable before the payment step
	d2 := New()
	assert.ErrorIs(t, d2.Submittable(), ErrWrongStep)
}

func TestSetFieldsTrimsInput(t *testing.T) {
	d := New()
	require.NoError(t, d.SetPersonalInfo(PersonalInfo{FullName: "  Ada  ", Email: " ada@example.com ", Phone: " 0812 "}))
	assert.Equal(t, "Ada", d.Personal.FullName)
	assert.Equal(t, "ada@example.com", d.Personal.Email)
	require.NoError(t, d.Next())
}
