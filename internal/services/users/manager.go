// Package users управляет коллекцией пользователей: добавление в конец
// и выборка активных в порядке добавления.
package users

import "github.com/magabrotheeeer/pricing-engine/internal/models"

// Manager владеет упорядоченным списком пользователей.
// Дубликаты допускаются, пользователи не удаляются.
type Manager struct {
	users []*models.User
}

// NewManager создает менеджер, при необходимости с начальным набором пользователей.
// Переданный срез копируется.
func NewManager(users ...*models.User) *Manager {
	owned := make([]*models.User, len(users))
	copy(owned, users)
	return &Manager{users: owned}
}

// AddUser добавляет пользователя в конец списка.
func (m *Manager) AddUser(u *models.User) {
	m.users = append(m.users, u)
}

// ListActiveUsers возвращает новый срез активных пользователей в порядке добавления.
// Последующие AddUser на результат не влияют.
func (m *Manager) ListActiveUsers() []*models.User {
	active := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		if u.IsActive() {
			active = append(active, u)
		}
	}
	return active
}

// Len возвращает количество пользователей, включая неактивных.
func (m *Manager) Len() int {
	return len(m.users)
}
