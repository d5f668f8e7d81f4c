package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestFlagOf(t *testing.T) {
	if FlagOf(true) != Yes {
		t.Error("FlagOf(true) != Yes")
	}
	if FlagOf(false) != No {
		t.Error("FlagOf(false) != No")
	}
	if !Yes.Bool() || No.Bool() {
		t.Error("Flag.Bool mismatch")
	}
}

func TestRecordString(t *testing.T) {
	rec := Record{
		FileType:  TypeDir,
		Readable:  Yes,
		Writeable: Yes,
		Hidden:    No,
		Modified:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Name:      "archive",
	}
	s := rec.String()
	if !strings.HasPrefix(s, "drw-") {
		t.Errorf("String() = %q, want drw- prefix", s)
	}
	if !strings.HasSuffix(s, "archive/") {
		t.Errorf("String() = %q, want trailing archive/", s)
	}
}

// The serialized field order and names are the compatibility contract with
// existing callers; they must not drift.
func TestRecordJSONShape(t *testing.T) {
	rec := Record{
		FileType:  TypeFile,
		Readable:  Yes,
		Writeable: No,
		Hidden:    No,
		FileSize:  10,
		Modified:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Name:      "report.txt",
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"file_type":"F","readable":"Y","writeable":"N","hidden":"N",` +
		`"file_size":10,"modified":"2024-05-01T12:30:00Z","name":"report.txt"}`
	if string(data) != want {
		t.Errorf("JSON = %s\nwant   %s", data, want)
	}
}
