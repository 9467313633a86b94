package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteNewlineTerminated(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, []string{"锋", "欧阳锋"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if got, want := b.String(), "锋\n欧阳锋\n"; got != want {
		t.Errorf("Write = %q, want %q", got, want)
	}
}

func TestWriteEmptyList(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if b.String() != "" {
		t.Errorf("Write = %q, want empty", b.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(path, []string{"锋"}); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "锋\n" {
		t.Errorf("file contents = %q, want %q", data, "锋\n")
	}
}
