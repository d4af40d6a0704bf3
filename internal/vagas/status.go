// Package vagas holds the posting lifecycle rules and the store-backed
// operations of the vagas collection.
//
// Lifecycle:
//
//	pendente ──► aprovada
//
// The transition is one-way. Every vaga created from the public board enters
// as pendente; only an explicit approval moves it to aprovada, and nothing
// moves it back.
package vagas

import "fmt"

type Status string

const (
	StatusPendente Status = "pendente"
	StatusAprovada Status = "aprovada"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPendente, StatusAprovada:
		return st, nil
	}
	return "", fmt.Errorf("status de vaga desconhecido %q", s)
}

// ResolveEditStatus decides the status written by the edit save path.
// An already approved vaga stays approved no matter what the edit form
// submitted; a pending vaga takes whatever the form selected. The asymmetry
// is intentional: the edit form must never silently revert an approval.
func ResolveEditStatus(preEdit, submitted Status) Status {
	if preEdit == StatusAprovada {
		return StatusAprovada
	}
	return submitted
}
