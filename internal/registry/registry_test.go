package registry

import (
	"testing"

	"github.com/vovakirdan/reelsim/internal/slot"
)

type stubPreset struct {
	id, title string
}

func (p stubPreset) ID() string    { return p.id }
func (p stubPreset) Title() string { return p.title }

func (p stubPreset) Machine(string) (slot.Machine, error) {
	return slot.DefaultMachine(), nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Preset { return stubPreset{"zz-stub", "Stub"} })
	Register("aa-stub", func() Preset { return stubPreset{"aa-stub", "Another"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists(zz-stub) = false after Register")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}

	p, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p.Title() != "Stub" {
		t.Errorf("Title() = %q, want Stub", p.Title())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) succeeded, want error")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Preset { return stubPreset{"dup-stub", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register did not panic")
		}
	}()
	Register("dup-stub", func() Preset { return stubPreset{"dup-stub", "Dup"} })
}
