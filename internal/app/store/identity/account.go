package identity

import "github.com/ashiquzzaman/mongocms/internal/domain/models"

// Per-field getters and setters over a fetched user. Setters change
// the in-memory aggregate only; nothing reaches storage until Update.

// GetPasswordHash returns the stored password hash.
func (s *Store) GetPasswordHash(u *models.User) (string, error) {
	if err := s.guardUser(u); err != nil {
		return "", err
	}
	return u.PasswordHash, nil
}

// HasPassword reports whether the user has a password hash set.
func (s *Store) HasPassword(u *models.User) (bool, error) {
	if err := s.guardUser(u); err != nil {
		return false, err
	}
	return u.PasswordHash != "", nil
}

// SetPasswordHash sets the password hash in memory.
func (s *Store) SetPasswordHash(u *models.User, hash string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// GetSecurityStamp returns the user's security stamp.
func (s *Store) GetSecurityStamp(u *models.User) (string, error) {
	if err := s.guardUser(u); err != nil {
		return "", err
	}
	return u.SecurityStamp, nil
}

// SetSecurityStamp sets the security stamp in memory. Rotating the
// stamp is how sensitive changes force re-authentication.
func (s *Store) SetSecurityStamp(u *models.User, stamp string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	u.SecurityStamp = stamp
	return nil
}

// GetEmail returns the user's email.
func (s *Store) GetEmail(u *models.User) (string, error) {
	if err := s.guardUser(u); err != nil {
		return "", err
	}
	return u.Email, nil
}

// SetEmail sets the email in memory.
func (s *Store) SetEmail(u *models.User, email string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	u.Email = email
	return nil
}

// GetPhoneNumber returns the user's phone number.
func (s *Store) GetPhoneNumber(u *models.User) (string, error) {
	if err := s.guardUser(u); err != nil {
		return "", err
	}
	return u.PhoneNumber, nil
}

// SetPhoneNumber sets the phone number in memory.
func (s *Store) SetPhoneNumber(u *models.User, phone string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	u.PhoneNumber = phone
	return nil
}

// GetPhoneNumberConfirmed reports whether the phone number is confirmed.
func (s *Store) GetPhoneNumberConfirmed(u *models.User) (bool, error) {
	if err := s.guardUser(u); err != nil {
		return false, err
	}
	return u.PhoneNumberConfirmed, nil
}

// SetPhoneNumberConfirmed sets the phone confirmation flag in memory.
func (s *Store) SetPhoneNumberConfirmed(u *models.User, confirmed bool) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	u.PhoneNumberConfirmed = confirmed
	return nil
}

// GetTwoFactorEnabled reports whether two-factor auth is enabled.
func (s *Store) GetTwoFactorEnabled(u *models.User) (bool, error) {
	if err := s.guardUser(u); err != nil {
		return false, err
	}
	return u.TwoFactorEnabled, nil
}

// SetTwoFactorEnabled sets the two-factor flag in memory.
func (s *Store) SetTwoFactorEnabled(u *models.User, enabled bool) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	u.TwoFactorEnabled = enabled
	return nil
}
