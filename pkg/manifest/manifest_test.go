package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Attributes
		wantErr bool
	}{
		{
			name:  "simple headers",
			input: "Subsystem-SymbolicName: io.openliberty.servlet-4.0\nIBM-ShortName: servlet-4.0\n",
			want: Attributes{
				"Subsystem-SymbolicName": "io.openliberty.servlet-4.0",
				"IBM-ShortName":          "servlet-4.0",
			},
		},
		{
			name:  "continuation line",
			input: "Subsystem-Content: com.ibm.websphere.appserver.javax.servlet-4.0; type=\"osgi.\n subsystem.feature\"\n",
			want: Attributes{
				"Subsystem-Content": `com.ibm.websphere.appserver.javax.servlet-4.0; type="osgi.subsystem.feature"`,
			},
		},
		{
			name:  "main section ends at blank line",
			input: "Subsystem-Type: osgi.subsystem.feature\n\nName: com/ibm/something\nSHA-256-Digest: abc\n",
			want: Attributes{
				"Subsystem-Type": "osgi.subsystem.feature",
			},
		},
		{
			name:  "crlf line endings",
			input: "IBM-ShortName: jsp-2.3\r\n",
			want:  Attributes{"IBM-ShortName": "jsp-2.3"},
		},
		{
			name:  "value keeps internal spaces",
			input: "Subsystem-Description: The servlet feature, version 4.0\n",
			want:  Attributes{"Subsystem-Description": "The servlet feature, version 4.0"},
		},
		{
			name:    "line without colon",
			input:   "not a header line\n",
			wantErr: true,
		},
		{
			name:    "continuation without header",
			input:   " stray continuation\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrMalformedManifest) {
					t.Errorf("error = %v, want ErrMalformedManifest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d attributes, want %d: %v", len(got), len(tt.want), got)
			}
			for name, want := range tt.want {
				if got[name] != want {
					t.Errorf("attrs[%q] = %q, want %q", name, got[name], want)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servlet-4.0.mf")
	content := "Subsystem-SymbolicName: io.openliberty.servlet-4.0; visibility:=public\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	attrs, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v, ok := attrs.Get("Subsystem-SymbolicName"); !ok || v != "io.openliberty.servlet-4.0; visibility:=public" {
		t.Errorf("Subsystem-SymbolicName = %q, %v", v, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.mf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}
