package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harolddawson/dircat/types"
)

func TestEnvFileLookup(t *testing.T) {
	file := filepath.Join(t.TempDir(), "locations.env")
	content := "DATA_DIR=/srv/data\nLOG_DIR=/var/log/app\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadEnvFile(file)
	if err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	if reg.File() != file {
		t.Errorf("File() = %q, want %q", reg.File(), file)
	}

	ctx := context.Background()
	path, err := reg.Lookup(ctx, "LOG_DIR")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if path != "/var/log/app" {
		t.Errorf("path = %q, want /var/log/app", path)
	}

	if _, err := reg.Lookup(ctx, "MISSING"); !errors.Is(err, types.ErrNameNotFound) {
		t.Errorf("err = %v, want ErrNameNotFound", err)
	}
}

func TestEnvFileMissing(t *testing.T) {
	if _, err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("LoadEnvFile on a missing file should fail")
	}
}
