// Package faults defines the closed set of error kinds the scheduling
// operations return. Callers branch with errors.As instead of matching
// message strings.
package faults

import (
	"fmt"

	"github.com/hireloop/interviewd/pkg/timeslot"
)

// ConflictInfo describes one existing session that overlaps a probed
// slot. Produced for diagnostics and suggestion payloads.
type ConflictInfo struct {
	Type        string        `json:"type"`
	Slot        timeslot.Slot `json:"conflictingSlot"`
	Description string        `json:"description"`
	InterviewID string        `json:"interviewId"`
}

type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func Invalid(field string, value any, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

type AuthorizationError struct {
	UserID string
	Action string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %q is not allowed to %s", e.UserID, e.Action)
}

func Denied(userID, action string) error {
	return &AuthorizationError{UserID: userID, Action: action}
}

// ConflictError reports a state clash: a duplicate active session for
// the same candidate and job, or a mutation of a booked record.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// SchedulingError is terminal for the request but carries enough
// structure for the caller to retry with adjusted input.
type SchedulingError struct {
	Conflicts   []ConflictInfo
	Suggestions []timeslot.Slot
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("no mutual availability (%d conflicts, %d suggestions)",
		len(e.Conflicts), len(e.Suggestions))
}

type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("storage failure during %s: %s", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// Database wraps a persistence failure, or returns nil if err is nil.
func Database(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}
