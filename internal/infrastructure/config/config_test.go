package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment: Development,
		Server:      ServerConfig{Port: 5000},
		Database:    DatabaseConfig{Host: "localhost", Database: "arena"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		for _, port := range []int{0, -1, 70000} {
			cfg := validConfig()
			cfg.Server.Port = port
			assert.Error(t, cfg.Validate())
		}
	})

	t.Run("missing database host", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.Database = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production requires the payment secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = Production
		assert.Error(t, cfg.Validate())

		cfg.Razorpay.KeySecret = "shhh"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("development runs without payment credentials", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Run("defaults to development", func(t *testing.T) {
		t.Setenv("MENIX_ENV", "")
		assert.Equal(t, Development, getEnvironment())
	})

	t.Run("lowercases the value", func(t *testing.T) {
		t.Setenv("MENIX_ENV", "PRODUCTION")
		assert.Equal(t, Production, getEnvironment())
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("parses a numeric value", func(t *testing.T) {
		t.Setenv("MENIX_TEST_INT", "42")
		assert.Equal(t, 42, getEnvInt("MENIX_TEST_INT", 7))
	})

	t.Run("falls back when unset", func(t *testing.T) {
		t.Setenv("MENIX_TEST_INT", "")
		assert.Equal(t, 7, getEnvInt("MENIX_TEST_INT", 7))
	})

	t.Run("falls back on garbage", func(t *testing.T) {
		t.Setenv("MENIX_TEST_INT", "not-a-number")
		assert.Equal(t, 7, getEnvInt("MENIX_TEST_INT", 7))
	})
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, 5000, v.GetInt("server.port"))
	assert.Equal(t, "postgres", v.GetString("database.driver"))
	assert.Equal(t, "https://api.razorpay.com/v1", v.GetString("razorpay.baseUrl"))
	assert.Equal(t, []string{"http://localhost:5173"}, v.GetStringSlice("cors.allowedOrigins"))
	assert.True(t, v.GetBool("scheduler.enabled"))
	assert.Equal(t, 60, v.GetInt("scheduler.sweepInterval"))
}

func TestProcessEnvOverrides(t *testing.T) {
	t.Setenv("MENIX_DB_PASSWORD", "s3cret")
	t.Setenv("MENIX_RAZORPAY_KEY_ID", "rzp_live_xyz")
	t.Setenv("MENIX_RAZORPAY_KEY_SECRET", "live_secret")
	t.Setenv("MENIX_CORS_ALLOWED_ORIGINS", "https://menix.gg,https://www.menix.gg")
	t.Setenv("MENIX_SCHEDULER_SWEEP_INTERVAL_SECONDS", "15")

	v := viper.New()
	setDefaults(v)
	processEnvOverrides(v)

	assert.Equal(t, "s3cret", v.GetString("database.password"))
	assert.Equal(t, "rzp_live_xyz", v.GetString("razorpay.keyId"))
	assert.Equal(t, "live_secret", v.GetString("razorpay.keySecret"))
	assert.Equal(t, []string{"https://menix.gg", "https://www.menix.gg"}, v.GetStringSlice("cors.allowedOrigins"))
	assert.Equal(t, 15, v.GetInt("scheduler.sweepInterval"))
}

func TestProcessDurations(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			ReadTimeout:     15,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			ConnMaxLifetime: 30,
			QueryTimeout:    5,
		},
		Scheduler: SchedulerConfig{SweepInterval: 60},
	}

	processDurations(cfg)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, time.Minute, cfg.Scheduler.SweepInterval)
}
