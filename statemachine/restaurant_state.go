package statemachine

import (
	"errors"

	"qr-menu-api/models"
)

// Transition defines a valid restaurant status change and who can perform it
type Transition struct {
	From  models.Status
	To    models.Status
	Actor string // "admin" or "system" (webhook)
}

// validTransitions is the authoritative lifecycle definition. Registration
// creates restaurants in pending; only the admin surface (direct endpoint or
// CMS webhook) moves them from there.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusActive, Actor: "admin"},
	{From: models.StatusPending, To: models.StatusActive, Actor: "system"},
	{From: models.StatusActive, To: models.StatusDisabled, Actor: "admin"},
	{From: models.StatusActive, To: models.StatusDisabled, Actor: "system"},
	// Re-enable is a plain field overwrite with no side effects
	{From: models.StatusDisabled, To: models.StatusActive, Actor: "admin"},
}

type transitionKey struct {
	From  models.Status
	To    models.Status
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.Status) []models.Status {
	var nexts []models.Status
	seen := map[models.Status]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.Status, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.Status) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
