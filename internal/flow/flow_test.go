package flow_test

import (
	"testing"

	"pr-dashboard-service/internal/flow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advance(t *testing.T, m *flow.Machine, events ...flow.Event) {
	t.Helper()
	for _, e := range events {
		require.NoError(t, m.Apply(e))
	}
}

func TestHappyPathProgression(t *testing.T) {
	m := flow.NewMachine()
	assert.Equal(t, flow.StateNoCredential, m.State())

	advance(t, m,
		flow.Event{Kind: flow.EventTokenSaved},
		flow.Event{Kind: flow.EventOrganizationChosen, Value: "Acme"},
		flow.Event{Kind: flow.EventProjectChosen, Value: "WebApp"},
		flow.Event{Kind: flow.EventRepositoryChosen, Value: "core"},
		flow.Event{Kind: flow.EventPullRequestsLoaded},
	)

	assert.Equal(t, flow.StateListFetched, m.State())
	assert.Equal(t, flow.Selection{
		Organization: "Acme",
		Project:      "WebApp",
		Repository:   "core",
	}, m.Selection())
}

func TestSelectionBeforeCredentialIsInvalid(t *testing.T) {
	m := flow.NewMachine()

	err := m.Apply(flow.Event{Kind: flow.EventOrganizationChosen, Value: "Acme"})
	assert.ErrorIs(t, err, flow.ErrInvalidTransition)
	assert.Equal(t, flow.StateNoCredential, m.State())
}

func TestSkippingStepsIsInvalid(t *testing.T) {
	m := flow.NewMachine()
	advance(t, m, flow.Event{Kind: flow.EventTokenSaved})

	err := m.Apply(flow.Event{Kind: flow.EventRepositoryChosen, Value: "core"})
	assert.ErrorIs(t, err, flow.ErrInvalidTransition)
}

func TestReselectingOrganizationClearsDownstream(t *testing.T) {
	m := flow.NewMachine()
	advance(t, m,
		flow.Event{Kind: flow.EventTokenSaved},
		flow.Event{Kind: flow.EventOrganizationChosen, Value: "Acme"},
		flow.Event{Kind: flow.EventProjectChosen, Value: "WebApp"},
		flow.Event{Kind: flow.EventRepositoryChosen, Value: "core"},
	)

	advance(t, m, flow.Event{Kind: flow.EventOrganizationChosen, Value: "Globex"})

	assert.Equal(t, flow.StateOrganizationChosen, m.State())
	assert.Equal(t, flow.Selection{Organization: "Globex"}, m.Selection())
}

func TestReselectingProjectClearsRepository(t *testing.T) {
	m := flow.NewMachine()
	advance(t, m,
		flow.Event{Kind: flow.EventTokenSaved},
		flow.Event{Kind: flow.EventOrganizationChosen, Value: "Acme"},
		flow.Event{Kind: flow.EventProjectChosen, Value: "WebApp"},
		flow.Event{Kind: flow.EventRepositoryChosen, Value: "core"},
		flow.Event{Kind: flow.EventProjectChosen, Value: "Mobile"},
	)

	assert.Equal(t, flow.StateProjectChosen, m.State())
	assert.Equal(t, flow.Selection{Organization: "Acme", Project: "Mobile"}, m.Selection())
}

func TestCredentialClearedResetsFromAnyState(t *testing.T) {
	m := flow.NewMachine()
	advance(t, m,
		flow.Event{Kind: flow.EventTokenSaved},
		flow.Event{Kind: flow.EventOrganizationChosen, Value: "Acme"},
		flow.Event{Kind: flow.EventProjectChosen, Value: "WebApp"},
		flow.Event{Kind: flow.EventRepositoryChosen, Value: "core"},
		flow.Event{Kind: flow.EventPullRequestsLoaded},
	)

	advance(t, m, flow.Event{Kind: flow.EventCredentialCleared})

	assert.Equal(t, flow.StateNoCredential, m.State())
	assert.Equal(t, flow.Selection{}, m.Selection())
}

func TestRefreshingListStaysFetched(t *testing.T) {
	m := flow.NewMachine()
	advance(t, m,
		flow.Event{Kind: flow.EventTokenSaved},
		flow.Event{Kind: flow.EventOrganizationChosen, Value: "Acme"},
		flow.Event{Kind: flow.EventProjectChosen, Value: "WebApp"},
		flow.Event{Kind: flow.EventRepositoryChosen, Value: "core"},
		flow.Event{Kind: flow.EventPullRequestsLoaded},
		flow.Event{Kind: flow.EventPullRequestsLoaded},
	)

	assert.Equal(t, flow.StateListFetched, m.State())
}
