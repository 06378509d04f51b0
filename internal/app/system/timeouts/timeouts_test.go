package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping: got %v, want %v", Ping(), DefaultPing)
	}
	if Short() != DefaultShort {
		t.Errorf("Short: got %v, want %v", Short(), DefaultShort)
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium: got %v, want %v", Medium(), DefaultMedium)
	}
	if Long() != DefaultLong {
		t.Errorf("Long: got %v, want %v", Long(), DefaultLong)
	}
}

func TestConfigure_ZeroValuesIgnored(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Short: 20 * time.Second})
	if Short() != 20*time.Second {
		t.Errorf("Short: got %v, want 20s", Short())
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium changed by zero-value Configure: got %v", Medium())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("TIMEOUT_SHORT", "7s")
	t.Setenv("TIMEOUT_LONG", "bogus")

	n := ConfigureFromEnv()
	if n != 1 {
		t.Errorf("configured count: got %d, want 1", n)
	}
	if Short() != 7*time.Second {
		t.Errorf("Short: got %v, want 7s", Short())
	}
	if Long() != DefaultLong {
		t.Errorf("Long changed by invalid env value: got %v", Long())
	}
}
