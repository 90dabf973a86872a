package models

import "fmt"

const (
	// RoleGuest — роль по умолчанию при прямом создании пользователя.
	RoleGuest = "Guest"
	// RoleRegistered — роль по умолчанию при создании из сохранённых данных.
	RoleRegistered = "Registered"

	guestUsername = "guest"
	guestEmail    = "guest@gmail.com"
)

// User представляет пользователя системы.
// Поля не проверяются, единственное изменение состояния — Deactivate.
type User struct {
	username string
	email    string
	role     string
	isActive bool
}

// UserOption переопределяет значение по умолчанию при создании пользователя.
type UserOption func(*User)

// WithRole задаёт роль пользователя.
func WithRole(role string) UserOption {
	return func(u *User) {
		u.role = role
	}
}

// WithActive задаёт признак активности.
func WithActive(active bool) UserOption {
	return func(u *User) {
		u.isActive = active
	}
}

// NewUser создаёт пользователя с ролью Guest и активным статусом,
// если опции не говорят иного. Пустые значения допустимы.
func NewUser(username, email string, opts ...UserOption) *User {
	u := &User{
		username: username,
		email:    email,
		role:     RoleGuest,
		isActive: true,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GuestUser возвращает гостевого пользователя с фиксированными данными.
func GuestUser() *User {
	return NewUser(guestUsername, guestEmail)
}

// UserFromMap создаёт пользователя из сохранённых данных.
//
// Отсутствующие username и email дают пустые строки, роль по умолчанию
// Registered, пользователь по умолчанию активен. Ошибка возвращается
// только если значение присутствует, но имеет неверный тип.
func UserFromMap(data map[string]any) (*User, error) {
	username, _, err := lookupString(data, "username")
	if err != nil {
		return nil, err
	}
	email, _, err := lookupString(data, "email")
	if err != nil {
		return nil, err
	}

	role, ok, err := lookupString(data, "role")
	if err != nil {
		return nil, err
	}
	if !ok {
		role = RoleRegistered
	}

	active, ok, err := lookupBool(data, "is_active")
	if err != nil {
		return nil, err
	}
	if !ok {
		active = true
	}

	return NewUser(username, email, WithRole(role), WithActive(active)), nil
}

// Deactivate выключает пользователя. Повторный вызов ничего не меняет.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) Username() string { return u.username }

func (u *User) Email() string { return u.email }

func (u *User) Role() string { return u.role }

func (u *User) IsActive() bool { return u.isActive }

func (u *User) String() string {
	return fmt.Sprintf("%s (%s) - Role: %s", u.username, u.email, u.role)
}
