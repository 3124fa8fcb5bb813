package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/ashiquzzaman/mongocms/internal/app/store/storeerr"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

func TestIncrementAccessFailedCount_DoesNotIncrement(t *testing.T) {
	s := &Store{}
	u := &models.User{AccessFailedCount: 3}

	got, err := s.IncrementAccessFailedCount(u)
	if err != nil {
		t.Fatalf("IncrementAccessFailedCount failed: %v", err)
	}
	if got != 3 {
		t.Errorf("expected the stored count back, got %d", got)
	}
	if u.AccessFailedCount != 3 {
		t.Errorf("count must not change, got %d", u.AccessFailedCount)
	}
}

func TestGetLockoutEnabled_AlwaysFalse(t *testing.T) {
	s := &Store{}

	enabled, err := s.GetLockoutEnabled(&models.User{})
	if err != nil {
		t.Fatalf("GetLockoutEnabled failed: %v", err)
	}
	if enabled {
		t.Error("lockout must always report disabled")
	}
}

func TestGetLockoutEndDate(t *testing.T) {
	s := &Store{}

	if _, err := s.GetLockoutEndDate(&models.User{}); !errors.Is(err, storeerr.ErrNoLockoutDate) {
		t.Errorf("unset date: expected ErrNoLockoutDate, got %v", err)
	}

	end := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	u := &models.User{LockoutEndDateUTC: &end}
	got, err := s.GetLockoutEndDate(u)
	if err != nil {
		t.Fatalf("GetLockoutEndDate failed: %v", err)
	}
	if !got.Equal(end) {
		t.Errorf("expected %v, got %v", end, got)
	}
}

func TestUnsupportedLockoutOperations(t *testing.T) {
	s := &Store{}
	u := &models.User{}

	checks := map[string]error{
		"ResetAccessFailedCount": s.ResetAccessFailedCount(u),
		"SetLockoutEnabled":      s.SetLockoutEnabled(u, true),
		"SetLockoutEndDate":      s.SetLockoutEndDate(u, time.Now()),
		"SetEmailConfirmed":      s.SetEmailConfirmed(u, true),
	}
	if _, err := s.GetEmailConfirmed(u); !errors.Is(err, storeerr.ErrNotSupported) {
		t.Errorf("GetEmailConfirmed: expected ErrNotSupported, got %v", err)
	}
	for op, err := range checks {
		if !errors.Is(err, storeerr.ErrNotSupported) {
			t.Errorf("%s: expected ErrNotSupported, got %v", op, err)
		}
	}
}

func TestAccountFieldAccessors(t *testing.T) {
	s := &Store{}
	u := &models.User{}

	if err := s.SetPasswordHash(u, "hash-1"); err != nil {
		t.Fatalf("SetPasswordHash failed: %v", err)
	}
	hash, err := s.GetPasswordHash(u)
	if err != nil || hash != "hash-1" {
		t.Errorf("GetPasswordHash = %q, %v; want hash-1", hash, err)
	}
	has, err := s.HasPassword(u)
	if err != nil || !has {
		t.Errorf("HasPassword = %v, %v; want true", has, err)
	}

	if err := s.SetSecurityStamp(u, "stamp-1"); err != nil {
		t.Fatalf("SetSecurityStamp failed: %v", err)
	}
	stamp, err := s.GetSecurityStamp(u)
	if err != nil || stamp != "stamp-1" {
		t.Errorf("GetSecurityStamp = %q, %v; want stamp-1", stamp, err)
	}

	if err := s.SetEmail(u, "x@example.com"); err != nil {
		t.Fatalf("SetEmail failed: %v", err)
	}
	mail, err := s.GetEmail(u)
	if err != nil || mail != "x@example.com" {
		t.Errorf("GetEmail = %q, %v", mail, err)
	}

	if err := s.SetPhoneNumber(u, "555-0100"); err != nil {
		t.Fatalf("SetPhoneNumber failed: %v", err)
	}
	if err := s.SetPhoneNumberConfirmed(u, true); err != nil {
		t.Fatalf("SetPhoneNumberConfirmed failed: %v", err)
	}
	confirmed, err := s.GetPhoneNumberConfirmed(u)
	if err != nil || !confirmed {
		t.Errorf("GetPhoneNumberConfirmed = %v, %v; want true", confirmed, err)
	}

	if err := s.SetTwoFactorEnabled(u, true); err != nil {
		t.Fatalf("SetTwoFactorEnabled failed: %v", err)
	}
	twoFA, err := s.GetTwoFactorEnabled(u)
	if err != nil || !twoFA {
		t.Errorf("GetTwoFactorEnabled = %v, %v; want true", twoFA, err)
	}
}

func TestHasPassword_EmptyHash(t *testing.T) {
	s := &Store{}

	has, err := s.HasPassword(&models.User{})
	if err != nil {
		t.Fatalf("HasPassword failed: %v", err)
	}
	if has {
		t.Error("a user without a hash must report no password")
	}
}
