package identity

import "github.com/ashiquzzaman/mongocms/internal/domain/models"

// AddLogin adds an external (provider, key) login reference. An
// identical pair already present makes this a no-op. In-memory only;
// persist with Update.
func (s *Store) AddLogin(u *models.User, provider, key string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	for _, l := range u.Logins {
		if l.LoginProvider == provider && l.ProviderKey == key {
			return nil
		}
	}
	u.Logins = append(u.Logins, models.UserLogin{LoginProvider: provider, ProviderKey: key})
	return nil
}

// RemoveLogin removes every login matching the (provider, key) pair
// exactly. In-memory only; persist with Update.
func (s *Store) RemoveLogin(u *models.User, provider, key string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	kept := u.Logins[:0]
	for _, l := range u.Logins {
		if l.LoginProvider != provider || l.ProviderKey != key {
			kept = append(kept, l)
		}
	}
	u.Logins = kept
	return nil
}

// GetLogins returns the user's external login references.
func (s *Store) GetLogins(u *models.User) ([]models.UserLogin, error) {
	if err := s.guardUser(u); err != nil {
		return nil, err
	}
	return u.Logins, nil
}
