package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdl/panemux/internal/domain/entity"
	"github.com/avdl/panemux/internal/infrastructure/persistence/memory"
	"github.com/avdl/panemux/internal/parts"
	"github.com/avdl/panemux/internal/parts/parttest"
)

func TestGroups_CreationOrderConcatenatesParts(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 2
	factory.AuxGroups = 3
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})

	groups := c.Groups(entity.GroupOrderCreation)

	require.Len(t, groups, c.MainPart().GroupCount()+aux.GroupCount())
	// Part registration order first, then per-part creation order.
	mainGroups := c.MainPart().Groups(entity.GroupOrderCreation)
	for i, g := range mainGroups {
		assert.Equal(t, g.ID(), groups[i].ID())
	}
	auxGroups := aux.Groups(entity.GroupOrderCreation)
	for i, g := range auxGroups {
		assert.Equal(t, g.ID(), groups[len(mainGroups)+i].ID())
	}
}

func TestGroups_MostRecentlyActiveFollowsPartRecency(t *testing.T) {
	factory := parttest.NewFactory()
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	factory.Auxiliaries()[0].Focus()

	groups := c.Groups(entity.GroupOrderMostRecentlyActive)

	require.Len(t, groups, 2)
	assert.Equal(t, aux.Groups(entity.GroupOrderCreation)[0].ID(), groups[0].ID())
	assert.Equal(t, c.MainPart().Groups(entity.GroupOrderCreation)[0].ID(), groups[1].ID())
}

func TestGroupCount_SumsAllParts(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 2
	factory.AuxGroups = 3
	c := startCoordinator(t, factory, memory.NewPartStateRepository())
	addAuxiliary(t, c, parts.AuxiliaryPartOptions{})

	assert.Equal(t, 5, c.GroupCount())
}

func TestFindGroup_FirstIsGlobalRegardlessOfSource(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 2
	factory.AuxGroups = 3
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	sourceInAux := aux.Groups(entity.GroupOrderGridAppearance)[1]
	globalFirst := c.Groups(entity.GroupOrderGridAppearance)[0]

	g, ok := c.FindGroup(entity.FindScope{Location: entity.FindFirst}, sourceInAux.ID(), false)

	require.True(t, ok)
	assert.Equal(t, globalFirst.ID(), g.ID())
	// The first part owns the global first group in grid-appearance order.
	assert.Equal(t, c.MainPart().Groups(entity.GroupOrderGridAppearance)[0].ID(), g.ID())
}

func TestFindGroup_LastIsGlobal(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 2
	factory.AuxGroups = 3
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	source := c.MainPart().Groups(entity.GroupOrderGridAppearance)[0]

	g, ok := c.FindGroup(entity.FindScope{Location: entity.FindLast}, source.ID(), false)

	require.True(t, ok)
	auxGroups := aux.Groups(entity.GroupOrderGridAppearance)
	assert.Equal(t, auxGroups[len(auxGroups)-1].ID(), g.ID())
}

func TestFindGroup_NextAtBoundarySinglePart(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 3
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	grid := c.MainPart().Groups(entity.GroupOrderGridAppearance)
	last := grid[len(grid)-1]

	_, ok := c.FindGroup(entity.FindScope{Location: entity.FindNext}, last.ID(), false)
	assert.False(t, ok, "no wrap: stepping past the last group yields nothing")

	g, ok := c.FindGroup(entity.FindScope{Location: entity.FindNext}, last.ID(), true)
	require.True(t, ok)
	assert.Equal(t, grid[0].ID(), g.ID(), "wrap returns the first group of the same part")
}

func TestFindGroup_NextCrossesPartBoundary(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 2
	factory.AuxGroups = 2
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	mainGrid := c.MainPart().Groups(entity.GroupOrderGridAppearance)
	lastOfMain := mainGrid[len(mainGrid)-1]

	// The part-local search fails at the part boundary, so the step happens
	// in the global grid-appearance list.
	g, ok := c.FindGroup(entity.FindScope{Location: entity.FindNext}, lastOfMain.ID(), false)

	require.True(t, ok)
	assert.Equal(t, aux.Groups(entity.GroupOrderGridAppearance)[0].ID(), g.ID())
}

func TestFindGroup_GlobalWrapOnlyAtGlobalBoundary(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 2
	factory.AuxGroups = 2
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	auxGrid := aux.Groups(entity.GroupOrderGridAppearance)
	lastGlobal := auxGrid[len(auxGrid)-1]

	_, ok := c.FindGroup(entity.FindScope{Location: entity.FindNext}, lastGlobal.ID(), false)
	assert.False(t, ok)

	g, ok := c.FindGroup(entity.FindScope{Location: entity.FindNext}, lastGlobal.ID(), true)
	require.True(t, ok)
	assert.Equal(t, c.Groups(entity.GroupOrderGridAppearance)[0].ID(), g.ID())
}

func TestFindGroup_DirectionalStaysPartLocal(t *testing.T) {
	factory := parttest.NewFactory()
	factory.MainConfig.Groups = 3
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	grid := c.MainPart().Groups(entity.GroupOrderGridAppearance)

	g, ok := c.FindGroup(entity.FindScope{Direction: entity.DirectionRight}, grid[0].ID(), false)
	require.True(t, ok)
	assert.Equal(t, grid[1].ID(), g.ID())

	_, ok = c.FindGroup(entity.FindScope{Direction: entity.DirectionLeft}, grid[0].ID(), false)
	assert.False(t, ok)
}

func TestRouter_DelegatesToOwningPart(t *testing.T) {
	factory := parttest.NewFactory()
	factory.AuxGroups = 2
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	auxGroups := aux.Groups(entity.GroupOrderGridAppearance)

	c.ActivateGroup(auxGroups[1].ID())
	assert.Equal(t, auxGroups[1].ID(), aux.ActiveGroup().ID())

	require.NoError(t, c.SetGroupSize(auxGroups[1].ID(), entity.Size{Width: 300, Height: 200}))
	size, err := c.GroupSize(auxGroups[1].ID())
	require.NoError(t, err)
	assert.Equal(t, entity.Size{Width: 300, Height: 200}, size)

	moved, ok := c.MoveGroup(auxGroups[1].ID(), auxGroups[0].ID(), entity.DirectionLeft)
	require.True(t, ok)
	assert.Equal(t, auxGroups[1].ID(), moved.ID())
	assert.Equal(t, 0, moved.Index())
}

func TestRouter_PartlessOperationsTargetActivePart(t *testing.T) {
	factory := parttest.NewFactory()
	c := startCoordinator(t, factory, memory.NewPartStateRepository())

	aux := addAuxiliary(t, c, parts.AuxiliaryPartOptions{})
	factory.Auxiliaries()[0].Focus()

	c.SetOrientation(parts.OrientationVertical)

	assert.Equal(t, parts.OrientationVertical, aux.Orientation())
	assert.Equal(t, parts.OrientationHorizontal, c.MainPart().Orientation(),
		"partless operations go to the active part, not every part")
	assert.Equal(t, parts.OrientationVertical, c.Orientation())
}
