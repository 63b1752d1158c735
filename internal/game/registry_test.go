package game

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cardduel/duel-server-go/internal/catalog"
)

func TestNewRegistryRejectsSmallCatalog(t *testing.T) {
	small, err := catalog.New([]catalog.Card{
		{ID: 1, Name: "Lonely", Type: catalog.TypeCreature, Cost: 1, Attack: 1, Defense: 1},
	})
	require.NoError(t, err)

	_, err = NewRegistry(small, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestCreateGameAndList(t *testing.T) {
	reg := testRegistry(t)

	id1 := reg.CreateGame("host-1", "Alice")
	id2 := reg.CreateGame("host-2", "Carol")

	games := reg.AvailableGames()
	require.Len(t, games, 2)

	hosts := map[string]string{}
	for _, s := range games {
		hosts[s.ID] = s.Host
		assert.Equal(t, "waiting", s.Status)
	}
	assert.Equal(t, "Alice", hosts[id1])
	assert.Equal(t, "Carol", hosts[id2])

	g, ok := reg.Get(id1)
	require.True(t, ok)
	assert.Equal(t, "host-1", g.HostID)
	assert.Equal(t, StatusWaiting, g.Status)
	require.Len(t, g.Players, 1)
	assert.Equal(t, StartingHealth, g.Players[0].Health)
	assert.Equal(t, 0, g.Players[0].Mana)
	assert.Empty(t, g.Players[0].Deck)
}

func TestStartedGameLeavesLobbyList(t *testing.T) {
	reg := testRegistry(t)
	id := reg.CreateGame("host-1", "Alice")
	require.NoError(t, reg.Join(id, "guest-1", "Bob"))
	require.NoError(t, reg.StartGame(id))

	assert.Empty(t, reg.AvailableGames())
}

func TestJoinErrors(t *testing.T) {
	reg := testRegistry(t)
	id := reg.CreateGame("host-1", "Alice")

	assert.ErrorIs(t, reg.Join("no-such-game", "guest-1", "Bob"), ErrGameNotFound)
	assert.ErrorIs(t, reg.Join(id, "host-1", "Alice"), ErrAlreadyJoined)

	require.NoError(t, reg.Join(id, "guest-1", "Bob"))
	assert.ErrorIs(t, reg.Join(id, "guest-1", "Bob"), ErrAlreadyJoined)
	assert.ErrorIs(t, reg.Join(id, "guest-2", "Carol"), ErrGameFull)

	require.NoError(t, reg.StartGame(id))
	assert.ErrorIs(t, reg.Join(id, "guest-3", "Dave"), ErrGameNotAvailable)
}

func TestLeaveWhileWaitingDiscardsGame(t *testing.T) {
	reg := testRegistry(t)
	id := reg.CreateGame("host-1", "Alice")

	opponentID, err := reg.Leave(id, "host-1")
	require.NoError(t, err)
	assert.Empty(t, opponentID)

	_, ok := reg.Get(id)
	assert.False(t, ok)
	assert.Empty(t, reg.GamesForPlayer("host-1"))
}

func TestLeaveInProgressForfeits(t *testing.T) {
	reg := testRegistry(t)
	id := reg.CreateGame("host-1", "Alice")
	require.NoError(t, reg.Join(id, "guest-1", "Bob"))
	require.NoError(t, reg.StartGame(id))

	opponentID, err := reg.Leave(id, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, "host-1", opponentID)

	g, ok := reg.Get(id)
	require.True(t, ok, "game lingers until the winner leaves too")
	assert.Equal(t, StatusEnded, g.Status)
	assert.Equal(t, "host-1", g.Winner)
	assert.Len(t, g.Players, 1)
	assert.Empty(t, reg.GamesForPlayer("guest-1"))

	// The survivor leaving removes the match entirely.
	opponentID, err = reg.Leave(id, "host-1")
	require.NoError(t, err)
	assert.Empty(t, opponentID)
	_, ok = reg.Get(id)
	assert.False(t, ok)
}

func TestLeaveErrors(t *testing.T) {
	reg := testRegistry(t)
	id := reg.CreateGame("host-1", "Alice")

	_, err := reg.Leave("no-such-game", "host-1")
	assert.ErrorIs(t, err, ErrGameNotFound)

	_, err = reg.Leave(id, "stranger")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestGamesForPlayer(t *testing.T) {
	reg := testRegistry(t)
	id1 := reg.CreateGame("host-1", "Alice")
	id2 := reg.CreateGame("host-1", "Alice")

	ids := reg.GamesForPlayer("host-1")
	assert.ElementsMatch(t, []string{id1, id2}, ids)
}

func TestRegistryOperationsOnMissingGame(t *testing.T) {
	reg := testRegistry(t)

	assert.ErrorIs(t, reg.StartGame("nope"), ErrGameNotFound)
	assert.ErrorIs(t, reg.PlayCard("nope", "p", 1, Position{}), ErrGameNotFound)
	assert.ErrorIs(t, reg.DrawCard("nope", "p"), ErrGameNotFound)
	assert.ErrorIs(t, reg.AttackCard("nope", "p", 1, 2), ErrGameNotFound)
	assert.ErrorIs(t, reg.AttackPlayer("nope", "p", 1), ErrGameNotFound)
	assert.ErrorIs(t, reg.EndTurn("nope", "p"), ErrGameNotFound)
	_, err := reg.View("nope", "p")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

// Matches must not serialize behind each other: hammer two games from
// separate goroutines and let the race detector judge.
func TestIndependentMatchesRunConcurrently(t *testing.T) {
	reg, err := NewRegistry(
		catalog.LoadBuiltin(),
		zaptest.NewLogger(t),
		WithRandFactory(func() *rand.Rand { return rand.New(rand.NewSource(7)) }),
	)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		host := string(rune('a'+i)) + "-host"
		guest := string(rune('a'+i)) + "-guest"
		id := reg.CreateGame(host, "Host")
		require.NoError(t, reg.Join(id, guest, "Guest"))
		require.NoError(t, reg.StartGame(id))

		wg.Add(1)
		go func(id, host, guest string) {
			defer wg.Done()
			for turn := 0; turn < 30; turn++ {
				g, ok := reg.Get(id)
				if !ok {
					return
				}
				g.mu.Lock()
				current := g.CurrentTurn
				done := g.Status != StatusPlaying
				g.mu.Unlock()
				if done {
					return
				}
				_ = reg.DrawCard(id, current)
				_ = reg.EndTurn(id, current)
				_ = len(reg.AvailableGames())
			}
		}(id, host, guest)
	}
	wg.Wait()
}
