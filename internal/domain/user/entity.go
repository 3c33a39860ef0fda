package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	nickname     Nickname
	passwordHash string
	role         Role
	visitCount   int
	lastVisit    *time.Time
	isActive     bool
	createdAt    time.Time
}

func NewUser(email Email, nickname Nickname, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		nickname:     nickname,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
	}
}

// RecordVisit is applied whenever a badge is issued to the user.
func (u *User) RecordVisit(at time.Time) {
	u.visitCount++
	u.lastVisit = &at
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Nickname() Nickname    { return u.nickname }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) VisitCount() int       { return u.visitCount }
func (u *User) LastVisit() *time.Time { return u.lastVisit }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
