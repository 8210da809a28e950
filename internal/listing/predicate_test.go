package listing

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "abc", EscapeLike("abc"))
	assert.Equal(t, "100!%", EscapeLike("100%"))
	assert.Equal(t, "a!_b", EscapeLike("a_b"))
	assert.Equal(t, "wow!!", EscapeLike("wow!"))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%bosch%", LikePattern("  BoSch "))
	assert.Equal(t, "%50!%%", LikePattern("50%"))
}

func TestContainsFold(t *testing.T) {
	assert.Nil(t, ContainsFold("   ", "name"))
	assert.Nil(t, ContainsFold("drill"))

	sql, args, err := ContainsFold("Drill", "name", "description").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!')", sql)
	assert.Equal(t, []any{"%drill%", "%drill%"}, args)
}

func TestConditions(t *testing.T) {
	var c Conditions
	sql, args, err := c.ToSql()
	require.NoError(t, err)
	assert.Empty(t, sql)
	assert.Empty(t, args)

	c.Add(nil)
	c.Add(ContainsFold("", "name"))
	assert.Equal(t, 0, c.Len())

	c.Add(sq.GtOrEq{"price_per_day": 1000})
	c.Add(Exists("SELECT 1 FROM reviews r WHERE r.equipment_id = equipment.id AND r.rating = ?", 5))
	assert.Equal(t, 2, c.Len())

	sql, args, err = c.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(price_per_day >= ? AND EXISTS (SELECT 1 FROM reviews r WHERE r.equipment_id = equipment.id AND r.rating = ?))", sql)
	assert.Equal(t, []any{1000, 5}, args)
}
