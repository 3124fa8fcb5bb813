package identity

import "github.com/ashiquzzaman/mongocms/internal/domain/models"

// AddClaim adds a (type, value) claim to the user's embedded claim
// list. An identical pair already present makes this a no-op; the same
// type with a different value is a separate claim. In-memory only;
// persist with Update.
func (s *Store) AddClaim(u *models.User, claimType, claimValue string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	for _, c := range u.Claims {
		if c.ClaimType == claimType && c.ClaimValue == claimValue {
			return nil
		}
	}
	u.Claims = append(u.Claims, models.UserClaim{ClaimType: claimType, ClaimValue: claimValue})
	return nil
}

// RemoveClaim removes every claim matching the (type, value) pair
// exactly. In-memory only; persist with Update.
func (s *Store) RemoveClaim(u *models.User, claimType, claimValue string) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	kept := u.Claims[:0]
	for _, c := range u.Claims {
		if c.ClaimType != claimType || c.ClaimValue != claimValue {
			kept = append(kept, c)
		}
	}
	u.Claims = kept
	return nil
}

// GetClaims returns the user's claims.
func (s *Store) GetClaims(u *models.User) ([]models.UserClaim, error) {
	if err := s.guardUser(u); err != nil {
		return nil, err
	}
	return u.Claims, nil
}
