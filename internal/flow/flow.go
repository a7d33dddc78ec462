// Package flow models the credential-and-selection progression as an
// explicit state machine: token saved, organization chosen, project chosen,
// repository chosen, list fetched. Transitions happen through discrete
// events; an event that is not valid in the current state is an error
// instead of a silently ignored cascade.
package flow

import (
	"errors"
	"fmt"
)

type State string

const (
	StateNoCredential       State = "no_credential"
	StateCredentialResolved State = "credential_resolved"
	StateOrganizationChosen State = "organization_chosen"
	StateProjectChosen      State = "project_chosen"
	StateRepositoryChosen   State = "repository_chosen"
	StateListFetched        State = "list_fetched"
)

type EventKind string

const (
	EventTokenSaved         EventKind = "token_saved"
	EventOrganizationChosen EventKind = "organization_chosen"
	EventProjectChosen      EventKind = "project_chosen"
	EventRepositoryChosen   EventKind = "repository_chosen"
	EventPullRequestsLoaded EventKind = "pull_requests_loaded"
	EventCredentialCleared  EventKind = "credential_cleared"
)

type Event struct {
	Kind EventKind
	// Value carries the selected identifier for the selection events.
	Value string
}

var ErrInvalidTransition = errors.New("invalid transition")

// Selection is the set of identifiers accumulated so far. Re-selecting an
// earlier step clears everything downstream of it.
type Selection struct {
	Organization string
	Project      string
	Repository   string
}

type Machine struct {
	state     State
	selection Selection
}

func NewMachine() *Machine {
	return &Machine{state: StateNoCredential}
}

func (m *Machine) State() State         { return m.state }
func (m *Machine) Selection() Selection { return m.selection }

// transitions lists, per state, which events are accepted and where they
// lead. Selection events are also accepted from any later state: choosing a
// different organization while a list is showing drops back to
// organization_chosen.
var transitions = map[State]map[EventKind]State{
	StateNoCredential: {
		EventTokenSaved: StateCredentialResolved,
	},
	StateCredentialResolved: {
		EventOrganizationChosen: StateOrganizationChosen,
	},
	StateOrganizationChosen: {
		EventOrganizationChosen: StateOrganizationChosen,
		EventProjectChosen:      StateProjectChosen,
	},
	StateProjectChosen: {
		EventOrganizationChosen: StateOrganizationChosen,
		EventProjectChosen:      StateProjectChosen,
		EventRepositoryChosen:   StateRepositoryChosen,
	},
	StateRepositoryChosen: {
		EventOrganizationChosen: StateOrganizationChosen,
		EventProjectChosen:      StateProjectChosen,
		EventRepositoryChosen:   StateRepositoryChosen,
		EventPullRequestsLoaded: StateListFetched,
	},
	StateListFetched: {
		EventOrganizationChosen: StateOrganizationChosen,
		EventProjectChosen:      StateProjectChosen,
		EventRepositoryChosen:   StateRepositoryChosen,
		EventPullRequestsLoaded: StateListFetched,
	},
}

// Apply runs one event through the machine, updating state and selection.
func (m *Machine) Apply(event Event) error {
	// Clearing the credential resets everything from any state.
	if event.Kind == EventCredentialCleared {
		m.state = StateNoCredential
		m.selection = Selection{}
		return nil
	}

	next, ok := transitions[m.state][event.Kind]
	if !ok {
		return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, event.Kind, m.state)
	}

	switch event.Kind {
	case EventOrganizationChosen:
		m.selection = Selection{Organization: event.Value}
	case EventProjectChosen:
		m.selection.Project = event.Value
		m.selection.Repository = ""
	case EventRepositoryChosen:
		m.selection.Repository = event.Value
	}

	m.state = next
	return nil
}
