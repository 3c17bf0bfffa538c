package user

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a marina staff account. Authorization is derived entirely from
// the role via the static capability table in permissions.go.
type Profile struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	fullName     string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(email Email, passwordHash, fullName string, role Role) *Profile {
	return &Profile{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         role,
		isActive:     true,
	}
}

func ReconstructProfile(
	id uuid.UUID,
	email Email,
	passwordHash, fullName string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Profile) ID() uuid.UUID         { return p.id }
func (p *Profile) Email() Email          { return p.email }
func (p *Profile) PasswordHash() string  { return p.passwordHash }
func (p *Profile) FullName() string      { return p.fullName }
func (p *Profile) Role() Role            { return p.role }
func (p *Profile) LastLogin() *time.Time { return p.lastLogin }
func (p *Profile) IsActive() bool        { return p.isActive }
func (p *Profile) CreatedAt() time.Time  { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Profile) Can(cap Capability) bool {
	return HasPermission(p.role, cap)
}
