package feature

import (
	"testing"

	"github.com/liberty-tools/featex/pkg/manifest"
)

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		header Header
		name   string
		multi  bool
	}{
		{HeaderSymbolicName, "Subsystem-SymbolicName", true},
		{HeaderShortName, "IBM-ShortName", false},
		{HeaderContent, "Subsystem-Content", true},
		{HeaderProvisionCapability, "IBM-Provision-Capability", false},
	}
	for _, tt := range tests {
		if got := tt.header.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.header.MultiValued(); got != tt.multi {
			t.Errorf("%s: MultiValued() = %v, want %v", tt.name, got, tt.multi)
		}
	}
}

func TestHeaderUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered header")
		}
	}()
	Header(42).Name()
}

func TestHeaderParseValues(t *testing.T) {
	attrs := manifest.Attributes{
		"Subsystem-Content": "a;type=osgi.subsystem.feature,b;type=osgi.bundle",
	}

	elems, err := HeaderContent.ParseValues(attrs)
	if err != nil {
		t.Fatalf("ParseValues failed: %v", err)
	}
	if len(elems) != 2 {
		t.Fatalf("got %d clauses, want 2", len(elems))
	}
	if elems[0].ID != "a" || elems[1].ID != "b" {
		t.Errorf("ids = %q, %q, want a, b", elems[0].ID, elems[1].ID)
	}

	// Absent header: empty sequence, not an error.
	elems, err = HeaderSymbolicName.ParseValues(attrs)
	if err != nil {
		t.Fatalf("ParseValues on absent header failed: %v", err)
	}
	if len(elems) != 0 {
		t.Errorf("absent header yielded %d clauses, want 0", len(elems))
	}
}

func TestHeaderPresence(t *testing.T) {
	attrs := manifest.Attributes{
		"IBM-ShortName":            "servlet-4.0",
		"IBM-Provision-Capability": "   ",
	}

	if !HeaderShortName.IsPresent(attrs) {
		t.Error("IBM-ShortName should be present")
	}
	if HeaderProvisionCapability.IsPresent(attrs) {
		t.Error("blank IBM-Provision-Capability should not count as present")
	}
	if HeaderContent.IsPresent(attrs) {
		t.Error("absent Subsystem-Content should not be present")
	}

	if v, ok := HeaderShortName.Get(attrs); !ok || v != "servlet-4.0" {
		t.Errorf("Get = %q, %v", v, ok)
	}
}
