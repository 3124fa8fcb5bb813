package identity

import (
	"strings"

	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// Role membership is compared case-insensitively throughout.

// AddToRole adds the role to the user's embedded role list. Adding a
// role the user already has (in any casing) is a no-op. In-memory
// only; persist with Update.
func (s *Store) AddToRole(u *models.User, role string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	for _, r := range u.Roles {
		if strings.EqualFold(r, role) {
			return nil
		}
	}
	u.Roles = append(u.Roles, role)
	return nil
}

// RemoveFromRole removes every role entry matching case-insensitively.
// In-memory only; persist with Update.
func (s *Store) RemoveFromRole(u *models.User, role string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	kept := u.Roles[:0]
	for _, r := range u.Roles {
		if !strings.EqualFold(r, role) {
			kept = append(kept, r)
		}
	}
	u.Roles = kept
	return nil
}

// GetRoles returns the user's role names.
func (s *Store) GetRoles(u *models.User) ([]string, error) {
	if err := s.guardUser(u); err != nil {
		return nil, err
	}
	return u.Roles, nil
}

// IsInRole reports case-insensitive role membership.
func (s *Store) IsInRole(u *models.User, role string) (bool, error) {
	if err := s.guardUser(u); err != nil {
		return false, err
	}
	for _, r := range u.Roles {
		if strings.EqualFold(r, role) {
			return true, nil
		}
	}
	return false, nil
}
