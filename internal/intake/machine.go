// Package intake models the proposal intake form: its fields, its four UI
// states, and the single network call made on submit.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/revvit/proposal/internal/model"
)

// State is the UI state of the form.
type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Field names match the JSON and form field names.
const (
	FieldName         = "name"
	FieldTitle        = "title"
	FieldEmail        = "email"
	FieldOrganization = "organization"
	FieldMessage      = "message"
	FieldAgreed       = "agreed"
)

const (
	fallbackError  = "Request failed"
	genericProblem = "There was a problem. Please try again."
	successNotice  = "Sent! Check your email for a copy."
	sendingNotice  = "Sending..."
)

// Submitter sends a submission to the acceptance endpoint.
type Submitter interface {
	Submit(ctx context.Context, sub model.AcceptanceSubmission) error
}

// SubmitError is a non-ok response from the acceptance endpoint.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit failed (%d): %s", e.StatusCode, e.Message)
}

// Machine holds the form data and drives the idle/sending/success/error
// transitions. A Machine is not safe for concurrent use.
type Machine struct {
	form      model.AcceptanceSubmission
	state     State
	errMsg    string
	submitter Submitter

	// OnTransition, when set, is called on every state change.
	OnTransition func(from, to State)
}

// NewMachine returns a Machine in the idle state.
func NewMachine(submitter Submitter) *Machine {
	return &Machine{state: StateIdle, submitter: submitter}
}

func (m *Machine) State() State                     { return m.state }
func (m *Machine) ErrorMessage() string             { return m.errMsg }
func (m *Machine) Form() model.AcceptanceSubmission { return m.form }

// Edit updates one field. Editing while in success or error resets the form to
// idle and clears the stored error message.
func (m *Machine) Edit(field, value string) error {
	switch field {
	case FieldName:
		m.form.Name = value
	case FieldTitle:
		m.form.Title = value
	case FieldEmail:
		m.form.Email = value
	case FieldOrganization:
		m.form.Organization = value
	case FieldMessage:
		m.form.Message = value
	case FieldAgreed:
		m.form.Agreed = checked(value)
	default:
		return fmt.Errorf("intake: unknown field %q", field)
	}
	if m.state == StateSuccess || m.state == StateError {
		m.transition(StateIdle)
		m.errMsg = ""
	}
	return nil
}

// Submit runs local validation and, if it passes, makes exactly one call to the
// submitter. It returns the resulting state. Nothing is retried.
func (m *Machine) Submit(ctx context.Context) State {
	if !m.form.HasRequired() {
		m.transition(StateError)
		return m.state
	}

	m.transition(StateSending)
	err := m.submitter.Submit(ctx, m.form)
	if err != nil {
		m.errMsg = errorMessage(err)
		m.transition(StateError)
		return m.state
	}
	m.errMsg = ""
	m.transition(StateSuccess)
	return m.state
}

// Notice is the status text shown next to the submit button.
func (m *Machine) Notice() string {
	switch m.state {
	case StateSending:
		return sendingNotice
	case StateSuccess:
		return successNotice
	case StateError:
		if m.errMsg != "" {
			return m.errMsg
		}
		return genericProblem
	}
	return ""
}

func (m *Machine) transition(to State) {
	from := m.state
	m.state = to
	if m.OnTransition != nil && from != to {
		m.OnTransition(from, to)
	}
}

func errorMessage(err error) string {
	var se *SubmitError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return fallbackError
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackError
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
