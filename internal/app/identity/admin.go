// internal/app/identity/admin.go
package identity

import (
	"encoding/json"
	"fmt"
	"os"
)

// AdminCredential is the service credential that enables the privileged
// identity path. It is loaded from a JSON file named in configuration.
type AdminCredential struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadAdminCredential reads and validates the credential file. An empty
// path returns (nil, nil): the privileged path is simply not configured,
// which degrades email updates rather than failing startup.
func LoadAdminCredential(path string) (*AdminCredential, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read admin credential %s: %w", path, err)
	}
	var cred AdminCredential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, fmt.Errorf("parse admin credential %s: %w", path, err)
	}
	if cred.ClientEmail == "" || cred.PrivateKey == "" {
		return nil, fmt.Errorf("admin credential %s missing client_email or private_key", path)
	}
	return &cred, nil
}
