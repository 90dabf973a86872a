package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pricing-engine/internal/models"
)

func usernames(list []*models.User) []string {
	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.Username())
	}
	return names
}

func TestManager_Empty(t *testing.T) {
	m := NewManager()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.ListActiveUsers())
	assert.NotNil(t, m.ListActiveUsers())
}

func TestManager_ListActiveUsers(t *testing.T) {
	guest := models.GuestUser()
	john := models.NewUser("john_doe", "john@example.com", models.WithRole(models.RoleRegistered))
	alice, err := models.UserFromMap(map[string]any{"username": "alice", "email": "alice@example.com", "role": "Admin"})
	require.NoError(t, err)

	m := NewManager()
	m.AddUser(guest)
	m.AddUser(john)
	m.AddUser(alice)

	assert.Equal(t, []string{"guest", "john_doe", "alice"}, usernames(m.ListActiveUsers()))

	john.Deactivate()
	assert.Equal(t, []string{"guest", "alice"}, usernames(m.ListActiveUsers()))
	assert.Equal(t, 3, m.Len())
}

func TestManager_DuplicatesAllowed(t *testing.T) {
	u := models.GuestUser()
	m := NewManager(u)
	m.AddUser(u)
	m.AddUser(models.GuestUser())

	active := m.ListActiveUsers()
	require.Len(t, active, 3)
	assert.Same(t, active[0], active[1])
	assert.NotSame(t, active[1], active[2])
}

func TestManager_ListIsSnapshot(t *testing.T) {
	m := NewManager(models.GuestUser())

	snapshot := m.ListActiveUsers()
	m.AddUser(models.NewUser("late", "late@example.com"))

	assert.Equal(t, []string{"guest"}, usernames(snapshot))
	assert.Equal(t, []string{"guest", "late"}, usernames(m.ListActiveUsers()))
}

func TestManager_SeedIsCopied(t *testing.T) {
	seed := []*models.User{models.GuestUser(), models.NewUser("bob", "bob@example.com")}
	m := NewManager(seed...)

	seed[1] = models.NewUser("mallory", "mallory@example.com")

	assert.Equal(t, []string{"guest", "bob"}, usernames(m.ListActiveUsers()))
}

func TestManager_InactiveSeedFiltered(t *testing.T) {
	m := NewManager(models.NewUser("off", "off@example.com", models.WithActive(false)))

	assert.Empty(t, m.ListActiveUsers())
	assert.Equal(t, 1, m.Len())
}
