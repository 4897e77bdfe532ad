package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdl/panemux/internal/infrastructure/persistence/memory"
	"github.com/avdl/panemux/internal/parts"
	"github.com/avdl/panemux/internal/parts/parttest"
)

func TestEvents_PartLifecycle(t *testing.T) {
	factory := parttest.NewFactory()
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	var added, removed []parts.Part
	c.Events().PartAdded.Subscribe(func(p parts.Part) { added = append(added, p) })
	c.Events().PartRemoved.Subscribe(func(p parts.Part) { removed = append(removed, p) })

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	require.NoError(t, c.RemovePart(aux.ID()))

	require.Len(t, added, 1)
	assert.Same(t, aux, added[0])
	require.Len(t, removed, 1)
	assert.Same(t, aux, removed[0])
}

func TestEvents_FocusChangedFollowsPartFocus(t *testing.T) {
	factory := parttest.NewFactory()
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})

	var focused []parts.Part
	c.Events().FocusChanged.Subscribe(func(p parts.Part) { focused = append(focused, p) })

	factory.Auxiliaries()[0].Focus()
	factory.Main().Focus()

	require.Len(t, focused, 2)
	assert.Same(t, aux, focused[0])
	assert.Same(t, c.MainPart(), focused[1])
}

func TestEvents_ActiveGroupRebroadcastOnlyWithMultipleParts(t *testing.T) {
	factory := parttest.NewFactory()
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	changes := 0
	c.Events().ActiveGroupChanged.Subscribe(func(parts.Group) { changes++ })

	// Single part: the part's own stream already covers the change, so the
	// focus handler must not duplicate it.
	factory.Main().Focus()
	assert.Equal(t, 0, changes)

	addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	factory.Auxiliaries()[0].Focus()
	assert.Equal(t, 1, changes)
}

func TestEvents_GroupStreamsAreForwarded(t *testing.T) {
	factory := parttest.NewFactory()
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	var addedGroups []parts.Group
	c.Events().GroupAdded.Subscribe(func(g parts.Group) { addedGroups = append(addedGroups, g) })

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	g := factory.Auxiliaries()[0].AddGroup()

	require.Len(t, addedGroups, 1)
	assert.Equal(t, g.ID(), addedGroups[0].ID())
	assert.True(t, aux.HasGroup(g.ID()))
}

func TestEvents_RemovedPartStopsForwarding(t *testing.T) {
	factory := parttest.NewFactory()
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	auxPart := factory.Auxiliaries()[0]

	events := 0
	c.Events().GroupAdded.Subscribe(func(parts.Group) { events++ })
	c.Events().FocusChanged.Subscribe(func(parts.Part) { events++ })

	require.NoError(t, c.RemovePart(aux.ID()))

	auxPart.AddGroup()
	auxPart.Focus()

	assert.Equal(t, 0, events)
}
