package bootstrap

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func testAppConfig() AppConfig {
	return AppConfig{
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "studiohub",
		SessionKey:        "dev-only-change-me-please-0123456789ABCDEF",
		SessionName:       "studiohub-session",
		ChatRetention:     720 * time.Hour,
		ChatPurgeInterval: time.Hour,
	}
}

func TestValidateConfig_Accepts(t *testing.T) {
	if err := ValidateConfig(nil, testAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
}

func TestValidateConfig_RejectsBadURI(t *testing.T) {
	cfg := testAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for invalid MongoDB URI")
	}
}

func TestValidateConfig_RejectsZeroRetention(t *testing.T) {
	cfg := testAppConfig()
	cfg.ChatRetention = 0
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for zero chat retention")
	}

	cfg = testAppConfig()
	cfg.ChatPurgeInterval = 0
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for zero purge interval")
	}
}

func TestCSRFKey(t *testing.T) {
	key := csrfKey("0123456789abcdef0123456789abcdef-extra")
	if len(key) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(key))
	}

	// Short session keys get a random fallback rather than a short key.
	key = csrfKey("short")
	if len(key) != 32 {
		t.Errorf("expected 32-byte fallback key, got %d", len(key))
	}
}
