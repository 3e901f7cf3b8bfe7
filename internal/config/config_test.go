package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DefaultRedisKeyPrefix, cfg.Redis.KeyPrefix)
	assert.Equal(t, 5*time.Second, cfg.Redis.Timeout)
	assert.False(t, cfg.Auth.VerifyPasswords)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, "*/15 * * * *", cfg.Demo.ResetSchedule)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AUTH_VERIFY_PASSWORDS", "true")
	t.Setenv("AUTH_BCRYPT_COST", "4")
	t.Setenv("DEMO_MODE", "1")

	cfg := NewConfig()

	assert.Equal(t, StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.Auth.VerifyPasswords)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Demo.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{Storage: Storage{Backend: StorageMemory}}},
		{name: "sqlite without path", cfg: Config{Storage: Storage{Backend: StorageSQLite}}, wantErr: true},
		{name: "redis without addr", cfg: Config{Storage: Storage{Backend: StorageRedis}}, wantErr: true},
		{name: "unknown backend", cfg: Config{Storage: Storage{Backend: "etcd"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEARNHUB_TEST_FROM_DOTENV=loaded\nLEARNHUB_TEST_PRESET=from-file\n"), 0600))
	t.Setenv("LEARNHUB_TEST_PRESET", "from-env")
	t.Cleanup(func() { os.Unsetenv("LEARNHUB_TEST_FROM_DOTENV") })

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "loaded", os.Getenv("LEARNHUB_TEST_FROM_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("LEARNHUB_TEST_PRESET"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
