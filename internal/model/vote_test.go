package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVote_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		requested string
		action    string
		result    string
		upDelta   int
		downDelta int
	}{
		{"首次顶", "", "up", "created", "up", 1, 0},
		{"首次踩", "", "down", "created", "down", 0, 1},
		{"重复顶撤票", "up", "up", "removed", "", -1, 0},
		{"重复踩撤票", "down", "down", "removed", "", 0, -1},
		{"顶改踩", "up", "down", "changed", "down", -1, 1},
		{"踩改顶", "down", "up", "changed", "up", 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := ResolveVote(tt.current, tt.requested)
			assert.Equal(t, tt.action, tr.Action)
			assert.Equal(t, tt.result, tr.Result)
			assert.Equal(t, tt.upDelta, tr.UpDelta)
			assert.Equal(t, tt.downDelta, tr.DownDelta)
		})
	}
}

func TestResolveVote_ToggleReturnsToNeutral(t *testing.T) {
	for _, voteType := range []string{"up", "down"} {
		first := ResolveVote("", voteType)
		second := ResolveVote(first.Result, voteType)

		assert.Equal(t, "removed", second.Action)
		assert.Empty(t, second.Result)
		assert.Zero(t, first.UpDelta+second.UpDelta)
		assert.Zero(t, first.DownDelta+second.DownDelta)
	}
}

// TestResolveVote_RandomSequence 用朴素的 map 账本做对照，
// 验证任意投票序列下计数增量始终与账本一致
func TestResolveVote_RandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	voteTypes := []string{"up", "down"}

	const users = 8
	const rounds = 2000

	ledger := make(map[int]string, users)
	up, down := 0, 0

	for i := 0; i < rounds; i++ {
		user := rng.Intn(users)
		requested := voteTypes[rng.Intn(2)]

		tr := ResolveVote(ledger[user], requested)
		up += tr.UpDelta
		down += tr.DownDelta

		if tr.Result == "" {
			delete(ledger, user)
		} else {
			ledger[user] = tr.Result
		}

		// 计数永远等于账本里各票型的张数
		wantUp, wantDown := 0, 0
		for _, v := range ledger {
			if v == "up" {
				wantUp++
			} else {
				wantDown++
			}
		}
		require.Equal(t, wantUp, up, "round %d", i)
		require.Equal(t, wantDown, down, "round %d", i)
		require.GreaterOrEqual(t, up, 0)
		require.GreaterOrEqual(t, down, 0)
	}
}

func TestResolveVote_SingleUserScenario(t *testing.T) {
	// 顶 -> 改踩 -> 撤销 -> 再踩
	current := ""
	up, down := 0, 0

	apply := func(requested string) VoteTransition {
		tr := ResolveVote(current, requested)
		current = tr.Result
		up += tr.UpDelta
		down += tr.DownDelta
		return tr
	}

	tr := apply("up")
	assert.Equal(t, "created", tr.Action)
	assert.Equal(t, 1, up)
	assert.Equal(t, 0, down)

	tr = apply("down")
	assert.Equal(t, "changed", tr.Action)
	assert.Equal(t, 0, up)
	assert.Equal(t, 1, down)

	tr = apply("down")
	assert.Equal(t, "removed", tr.Action)
	assert.Equal(t, 0, up)
	assert.Equal(t, 0, down)

	tr = apply("down")
	assert.Equal(t, "created", tr.Action)
	assert.Equal(t, 0, up)
	assert.Equal(t, 1, down)
}
