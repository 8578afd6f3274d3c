package identity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@studio.example.com"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", e, err)
		}
	}

	invalid := []string{"", "plain", "a@b", "a b@c.com", "@x.com"}
	for _, e := range invalid {
		if err := ValidateEmail(e); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("ValidateEmail(%q) = %v, want ErrInvalidEmail", e, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("got %v, want ErrWeakPassword", err)
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}

func TestLoadAdminCredential_EmptyPath(t *testing.T) {
	cred, err := LoadAdminCredential("")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if cred != nil {
		t.Error("empty path must mean not configured, got a credential")
	}
}

func TestLoadAdminCredential_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cred.json")
	body := `{"project_id":"studiohub","client_email":"svc@studiohub.example","private_key":"-----BEGIN KEY-----"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cred, err := LoadAdminCredential(path)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if cred.ClientEmail != "svc@studiohub.example" {
		t.Errorf("ClientEmail = %q", cred.ClientEmail)
	}
}

func TestLoadAdminCredential_MissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cred.json")
	if err := os.WriteFile(path, []byte(`{"project_id":"x"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAdminCredential(path); err == nil {
		t.Error("expected error for credential missing required fields")
	}
}

func TestLoadAdminCredential_MissingFile(t *testing.T) {
	if _, err := LoadAdminCredential(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
