package powers

import (
	"os"
	"testing"
	"time"
)

func TestReloaderCompileByName(t *testing.T) {
	r := &Reloader{name: "ember"}
	c, err := r.compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if c.Spec.Name != "ember" {
		t.Fatalf("compiled character %q, want ember", c.Spec.Name)
	}
	if _, ok := c.Power.(*ScriptPower); !ok {
		t.Fatalf("compiled power is %T, want *ScriptPower", c.Power)
	}

	r = &Reloader{name: "nobody"}
	if _, err := r.compile(); err == nil {
		t.Fatalf("compile of unknown character did not fail")
	}
}

func TestReloaderPoll(t *testing.T) {
	var nilReloader *Reloader
	if nilReloader.Poll() != nil {
		t.Fatalf("nil reloader returned a character")
	}

	r := &Reloader{Characters: make(chan *Character, 1)}
	if r.Poll() != nil {
		t.Fatalf("empty reloader returned a character")
	}
	want := &Character{Spec: &CharacterSpec{Name: "clover"}, Power: NopPower{}}
	r.Characters <- want
	if got := r.Poll(); got != want {
		t.Fatalf("Poll returned %+v, want the pending character", got)
	}
	if r.Poll() != nil {
		t.Fatalf("second Poll returned a character again")
	}
}

func TestReloaderRecompilesOnSpecEdit(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, dir := range []string{"powers/characters", "powers/scripts"} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	r, err := NewReloader("clover")
	if err != nil {
		t.Fatalf("NewReloader: %v", err)
	}
	defer r.Close()

	// The on-disk copy shadows the embedded clover.yaml. Rewriting it on a
	// timer rides out the debounce window and any partial-write event.
	edited := []byte("name: clover\ntitle: Clover the Hare\nball_bonus: 7\n")
	write := func() {
		if err := os.WriteFile("powers/characters/clover.yaml", edited, 0o644); err != nil {
			t.Fatalf("write spec: %v", err)
		}
	}
	write()

	deadline := time.After(5 * time.Second)
	retry := time.NewTicker(150 * time.Millisecond)
	defer retry.Stop()
	for {
		select {
		case c := <-r.Characters:
			if c.Spec.BallBonus != 7 {
				t.Fatalf("reloaded ball bonus = %d, want 7", c.Spec.BallBonus)
			}
			if _, ok := c.Power.(NopPower); !ok {
				t.Fatalf("scriptless reload produced %T, want NopPower", c.Power)
			}
			return
		case <-retry.C:
			write()
		case <-deadline:
			t.Fatalf("no reloaded character arrived")
		}
	}
}
