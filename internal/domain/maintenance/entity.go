package maintenance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory   = errors.New("invalid damage category")
	ErrInvalidSeverity   = errors.New("invalid damage severity")
	ErrInvalidStatus     = errors.New("invalid damage report status")
	ErrIllegalTransition = errors.New("illegal damage report status transition")
	ErrEmptyLocation     = errors.New("damage location is required")
	ErrEmptyDescription  = errors.New("damage description is required")
)

// DamageReport is a standalone maintenance ticket. It is not derived from
// inspections or bookings; any authenticated user can file one.
type DamageReport struct {
	id          uuid.UUID
	location    string
	category    Category
	severity    Severity
	description string
	photoURL    string
	status      Status
	reportedBy  uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDamageReport(location string, category Category, severity Severity, description, photoURL string, reportedBy uuid.UUID) (*DamageReport, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeverity, severity)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &DamageReport{
		id:          uuid.New(),
		location:    location,
		category:    category,
		severity:    severity,
		description: description,
		photoURL:    photoURL,
		status:      StatusReported,
		reportedBy:  reportedBy,
	}, nil
}

func ReconstructDamageReport(
	id uuid.UUID,
	location string,
	category Category,
	severity Severity,
	description, photoURL string,
	status Status,
	reportedBy uuid.UUID,
	createdAt, updatedAt time.Time,
) (*DamageReport, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return &DamageReport{
		id:          id,
		location:    location,
		category:    category,
		severity:    severity,
		description: description,
		photoURL:    photoURL,
		status:      status,
		reportedBy:  reportedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (d *DamageReport) ID() uuid.UUID        { return d.id }
func (d *DamageReport) Location() string     { return d.location }
func (d *DamageReport) Category() Category   { return d.category }
func (d *DamageReport) Severity() Severity   { return d.severity }
func (d *DamageReport) Description() string  { return d.description }
func (d *DamageReport) PhotoURL() string     { return d.photoURL }
func (d *DamageReport) Status() Status       { return d.status }
func (d *DamageReport) ReportedBy() uuid.UUID { return d.reportedBy }
func (d *DamageReport) CreatedAt() time.Time { return d.createdAt }
func (d *DamageReport) UpdatedAt() time.Time { return d.updatedAt }

func (d *DamageReport) Advance(next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if !d.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, d.status, next)
	}
	d.status = next
	return nil
}
