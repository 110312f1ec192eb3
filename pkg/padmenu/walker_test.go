package padmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func visibilityStore(hidden ...int) RAMItems {
	items := make(RAMItems, 6)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('a' + i))}
	}
	for _, i := range hidden {
		items[i].Flags |= FlagHidden
	}
	return items
}

func TestNextVisibleSkipsHiddenAndWraps(t *testing.T) {
	store := visibilityStore(1, 2, 5)

	assert.Equal(t, 0, NextVisible(store, -1))
	assert.Equal(t, 3, NextVisible(store, 0))
	assert.Equal(t, 4, NextVisible(store, 3))
	assert.Equal(t, 0, NextVisible(store, 4))
}

func TestPrevVisibleSkipsHiddenAndWraps(t *testing.T) {
	store := visibilityStore(0, 4)

	assert.Equal(t, 5, PrevVisible(store, 1))
	assert.Equal(t, 3, PrevVisible(store, 5))
	assert.Equal(t, 1, PrevVisible(store, 2))
}

func TestPrevVisibleUndoesNextVisible(t *testing.T) {
	for _, hidden := range [][]int{nil, {0}, {1, 2}, {5}, {0, 2, 4}} {
		store := visibilityStore(hidden...)
		for i := 0; i < store.Count(); i++ {
			if store.Flags(i).Hidden() {
				continue
			}
			assert.Equal(t, i, PrevVisible(store, NextVisible(store, i)), "hidden %v index %d", hidden, i)
			assert.Equal(t, i, NextVisible(store, PrevVisible(store, i)), "hidden %v index %d", hidden, i)
		}
	}
}

func TestSingleVisibleItemIsItsOwnNeighbour(t *testing.T) {
	store := visibilityStore(0, 1, 3, 4, 5)

	assert.Equal(t, 2, NextVisible(store, 2))
	assert.Equal(t, 2, PrevVisible(store, 2))
}

func TestHasVisible(t *testing.T) {
	assert.True(t, HasVisible(visibilityStore(0, 1, 2, 3, 4)))
	assert.False(t, HasVisible(visibilityStore(0, 1, 2, 3, 4, 5)))
	assert.False(t, HasVisible(RAMItems{}))
}
