package salam

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("New() returned nil")
	}
	if g.name != "World" {
		t.Errorf("Expected default name to be World, got %q", g.name)
	}
	if g.options == nil || g.options.Len() != 0 {
		t.Error("Expected options to be an empty map")
	}
	if g.config != DefaultConfig() {
		t.Errorf("Expected default config, got %+v", g.config)
	}
	if g.greetDelay != 100*time.Millisecond {
		t.Errorf("Expected greetDelay to be 100ms, got %v", g.greetDelay)
	}
	if g.clock == nil {
		t.Error("Expected clock to be set")
	}
	if g.out == nil {
		t.Error("Expected output writer to be set")
	}
	if g.createdAt.IsZero() {
		t.Error("Expected createdAt to be captured at construction")
	}
	if !g.IsValid() {
		t.Errorf("Expected default greeter to be valid, got %v", g.ValidationError())
	}
}

func TestNewIncrementsInstanceCount(t *testing.T) {
	before := InstanceCount()
	New()
	New()
	New()
	if got := InstanceCount() - before; got != 3 {
		t.Errorf("Expected instance count to grow by 3, got %d", got)
	}
}

func TestInstanceCountConcurrentConstruction(t *testing.T) {
	const goroutines = 25
	const perGoroutine = 20

	before := InstanceCount()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				New()
			}
		}()
	}
	wg.Wait()

	if got := InstanceCount() - before; got != goroutines*perGoroutine {
		t.Errorf("Expected instance count to grow by %d, got %d", goroutines*perGoroutine, got)
	}
}

func TestSetName(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "Gopher", false},
		{"whitespace only is still non-empty", "  ", false},
		{"unicode", "Göpher", false},
		{"empty rejected", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(WithName("initial"))
			err := g.SetName(tc.value)
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected SetName to fail, got nil error")
				}
				if g.Name() != "initial" {
					t.Errorf("Expected name to stay initial after rejected mutation, got %q", g.Name())
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected SetName to succeed, got %v", err)
			}
			if g.Name() != tc.value {
				t.Errorf("Expected name %q, got %q", tc.value, g.Name())
			}
		})
	}
}

func TestSetNameEmptyErrorShape(t *testing.T) {
	g := New()
	err := g.SetName("")
	if err == nil {
		t.Fatal("Expected an error for empty name")
	}
	if !IsInvalidArgument(err) {
		t.Errorf("Expected an InvalidArgument error, got %v", err)
	}
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected error to wrap ErrEmptyName, got %v", err)
	}
}

func TestWithNameEmptyAllowedAtConstruction(t *testing.T) {
	// Construction deliberately skips the non-empty rule; only SetName
	// enforces it.
	g := New(WithName(""))
	if g.Name() != "" {
		t.Errorf("Expected empty name to survive construction, got %q", g.Name())
	}
	if err := g.SetName(""); err == nil {
		t.Error("Expected SetName to keep rejecting empty names")
	}
}

func TestString(t *testing.T) {
	g := New(WithName("Alice"))
	want := "Greeter(name=Alice)"
	if g.String() != want {
		t.Errorf("Expected %q, got %q", want, g.String())
	}
}

func TestSetOptionAndOptionValue(t *testing.T) {
	g := New()
	g.SetOption("team", "platform")
	g.SetOption("size", 3)
	g.SetOption("active", true)

	value, ok := g.OptionValue("team")
	if !ok || value != "platform" {
		t.Errorf("Expected team=platform, got %v (ok=%v)", value, ok)
	}
	value, ok = g.OptionValue("size")
	if !ok || value != float64(3) {
		t.Errorf("Expected size=3, got %v (ok=%v)", value, ok)
	}
	value, ok = g.OptionValue("active")
	if !ok || value != true {
		t.Errorf("Expected active=true, got %v (ok=%v)", value, ok)
	}
	if _, ok := g.OptionValue("missing"); ok {
		t.Error("Expected missing key to report ok=false")
	}
}

func TestOptionKeysInsertionOrder(t *testing.T) {
	g := New(
		WithOption("zebra", 1),
		WithOption("alpha", 2),
	)
	g.SetOption("mike", 3)
	g.SetOption("zebra", 4) // overwrite keeps position

	keys := g.OptionKeys()
	want := []string{"zebra", "alpha", "mike"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %d to be %q, got %q", i, want[i], keys[i])
		}
	}
}

func TestConfigure(t *testing.T) {
	g := New()
	cfg := Config{Timeout: 10 * time.Second, Retries: 1, Debug: true}
	g.Configure(cfg)

	if g.Config() != cfg {
		t.Errorf("Expected config %+v, got %+v", cfg, g.Config())
	}

	value, ok := g.OptionValue("timeout")
	if !ok || value != "10s" {
		t.Errorf("Expected timeout option 10s, got %v (ok=%v)", value, ok)
	}
	value, ok = g.OptionValue("retries")
	if !ok || value != float64(1) {
		t.Errorf("Expected retries option 1, got %v (ok=%v)", value, ok)
	}
	value, ok = g.OptionValue("debug")
	if !ok || value != true {
		t.Errorf("Expected debug option true, got %v (ok=%v)", value, ok)
	}
}

func TestCreatedAtImmutable(t *testing.T) {
	g := New()
	created := g.CreatedAt()
	if err := g.SetName("Renamed"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}
	g.SetOption("key", "value")
	if !g.CreatedAt().Equal(created) {
		t.Error("Expected createdAt to survive mutations unchanged")
	}
}
