// SPDX-License-Identifier: MIT

package triad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/preference"
)

// sixAscending returns a Matcher over six individuals who all rank the
// others by ascending id.
func sixAscending(t *testing.T) *Matcher {
	t.Helper()
	orders := make([][]int, 6)
	for owner := range orders {
		for id := 0; id < 6; id++ {
			if id != owner {
				orders[owner] = append(orders[owner], id)
			}
		}
	}
	m, err := New(WithPreferences(orders))
	require.NoError(t, err)

	return m
}

func TestPropose_UnresolvableRankingAbortsRun(t *testing.T) {
	m := sixAscending(t)

	// 1) 0 proposes (1,2) to free candidates: {0,1,2} is seated.
	att, ok, err := m.Step()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, att.Accepted())

	// 2) Give 1 a model that does not rank 3.
	broken, err := preference.NewModel(1, []int{0, 2})
	require.NoError(t, err)
	m.models[1] = broken

	teams, assignments := m.reg.Teams(), m.reg.Assignments()
	pending := m.Pending(3)

	// 3) 3 proposes (0,1); 1 cannot place (0,3) in its ranking.
	_, err = m.Propose(3)
	require.ErrorIs(t, err, preference.ErrUnknownPreference)
	assert.NotErrorIs(t, err, ErrAborted)

	// 4) The registry is untouched; only the popped pair is gone.
	assert.Equal(t, teams, m.reg.Teams())
	assert.Equal(t, assignments, m.reg.Assignments())
	require.NoError(t, m.Check())
	assert.Equal(t, pending-1, m.Pending(3))
	assert.Equal(t, 2, m.Proposals())

	// 5) Every later call refuses to continue and reports the first failure.
	_, ok, err = m.Step()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, preference.ErrUnknownPreference)

	res, err := m.Run()
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, preference.ErrUnknownPreference)
	assert.Equal(t, 2, res.Proposals)
	assert.Equal(t, teams, res.Teams)

	_, err = m.Propose(4)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, 2, m.Proposals())
}

func TestRun_BoundExceededAborts(t *testing.T) {
	m := sixAscending(t)
	m.bound = 0

	_, err := m.Run()
	require.ErrorIs(t, err, ErrNoProgress)
	assert.NotErrorIs(t, err, ErrAborted)
	assert.Equal(t, 1, m.Proposals())

	_, err = m.Run()
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, ErrNoProgress)
	assert.Equal(t, 1, m.Proposals())
}
