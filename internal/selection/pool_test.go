package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPoolFiltersAndSorts(t *testing.T) {
	inventory := []Question{
		question(9, 4, DifficultyHard, "python"),
		question(2, 3, DifficultyEasy, "Python", "basics"),
		{ID: 5, Marks: 2, Difficulty: DifficultyMedium, Tags: []string{"python"}, Status: StatusInactive},
		question(7, 0, DifficultyEasy, "python"),
		question(8, -3, DifficultyEasy, "python"),
		question(4, 2, Difficulty("expert"), "python"),
		question(3, 6, DifficultyMedium, "sql"),
		question(1, 1, DifficultyMedium, " PYTHON "),
	}

	pool := buildPool(inventory, Filter{Tag: "python"})
	assert.Equal(t, []int64{1, 2, 9}, ids(pool))

	all := buildPool(inventory, Filter{})
	assert.Equal(t, []int64{1, 2, 3, 9}, ids(all))
}

func TestBuildPoolKeepsFirstDuplicate(t *testing.T) {
	inventory := []Question{
		question(1, 5, DifficultyEasy),
		question(2, 3, DifficultyMedium),
		question(1, 9, DifficultyHard),
	}

	pool := buildPool(inventory, Filter{})
	assert.Len(t, pool, 2)
	assert.Equal(t, 5, pool[0].Marks)
}

func TestBuildPoolCopiesTags(t *testing.T) {
	inventory := []Question{question(1, 5, DifficultyEasy, "python")}

	pool := buildPool(inventory, Filter{})
	pool[0].Tags[0] = "mutated"

	assert.Equal(t, "python", inventory[0].Tags[0])
}

func TestTiersPresent(t *testing.T) {
	pool := []Question{question(1, 1, DifficultyEasy), question(2, 1, DifficultyHard)}
	assert.Equal(t, [3]bool{true, false, true}, tiersPresent(pool))
}
