package identity

import (
	"time"

	"github.com/ashiquzzaman/mongocms/internal/app/store/storeerr"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// Lockout support is partial. Callers probe these methods to decide
// whether lockout is available, so the unimplemented ones fail loudly
// rather than pretend to work.

// GetAccessFailedCount returns the stored failed-attempt count.
func (s *Store) GetAccessFailedCount(u *models.User) (int, error) {
	if err := s.guardUser(u); err != nil {
		return 0, err
	}
	return u.AccessFailedCount, nil
}

// IncrementAccessFailedCount returns the current failed-attempt count.
//
// Despite the name it does NOT increment anything. That is a
// long-standing quirk kept for compatibility with callers that treat
// the return value as a read. Callers needing a real increment must
// bump the field and persist with Update themselves.
func (s *Store) IncrementAccessFailedCount(u *models.User) (int, error) {
	if err := s.guardUser(u); err != nil {
		return 0, err
	}
	return u.AccessFailedCount, nil
}

// GetLockoutEnabled always reports lockout as disabled, regardless of
// any stored state. Lockout enforcement is not implemented.
func (s *Store) GetLockoutEnabled(u *models.User) (bool, error) {
	if err := s.guardUser(u); err != nil {
		return false, err
	}
	return false, nil
}

// GetLockoutEndDate returns the lockout end date. Reading it from a
// user that never had one set is an error.
func (s *Store) GetLockoutEndDate(u *models.User) (time.Time, error) {
	if err := s.guardUser(u); err != nil {
		return time.Time{}, err
	}
	if u.LockoutEndDateUTC == nil {
		return time.Time{}, storeerr.ErrNoLockoutDate
	}
	return *u.LockoutEndDateUTC, nil
}

// ResetAccessFailedCount is not supported.
func (s *Store) ResetAccessFailedCount(u *models.User) error {
	if err := s.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}

// SetLockoutEnabled is not supported.
func (s *Store) SetLockoutEnabled(u *models.User, enabled bool) error {
	if err := s.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}

// SetLockoutEndDate is not supported.
func (s *Store) SetLockoutEndDate(u *models.User, end time.Time) error {
	if err := s.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}

// GetEmailConfirmed is not supported.
func (s *Store) GetEmailConfirmed(u *models.User) (bool, error) {
	if err := s.guard(); err != nil {
		return false, err
	}
	return false, storeerr.ErrNotSupported
}

// SetEmailConfirmed is not supported.
func (s *Store) SetEmailConfirmed(u *models.User, confirmed bool) error {
	if err := s.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}
