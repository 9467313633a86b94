package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCodeTable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.json",
		`[{"word":"欧","order":"10"},{"word":"锋","order":"5"}]`)

	records, err := LoadCodeTable(path)
	if err != nil {
		t.Fatalf("LoadCodeTable returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Word != "欧" || records[0].Order != "10" {
		t.Errorf("records[0] = %+v", records[0])
	}
}

func TestLoadCodeTableMissingFile(t *testing.T) {
	_, err := LoadCodeTable(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, apperrors.ErrSourceUnavailable) {
		t.Fatalf("error = %v, want ErrSourceUnavailable", err)
	}
}

func TestLoadCodeTableMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.json", `{"word":"欧"`)
	_, err := LoadCodeTable(path)
	if !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("error = %v, want ErrMalformedRecord", err)
	}
}

func TestDecodeRecordsWrongShape(t *testing.T) {
	_, err := DecodeRecords(strings.NewReader(`"not an array"`), "test")
	if !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("error = %v, want ErrMalformedRecord", err)
	}
}

func TestLoadLinesTrimsAndSkipsBlanks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "names.txt", "  欧阳锋  \n\n锋\n   \n李雷\n")

	names, err := LoadLines(path, true)
	if err != nil {
		t.Fatalf("LoadLines returned error: %v", err)
	}
	want := []string{"欧阳锋", "锋", "李雷"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("LoadLines = %v, want %v", names, want)
	}
}

func TestLoadLinesKeepsBlanksWhenAsked(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "surnames.txt", "欧阳\n\n司马\n")

	lines, err := LoadLines(path, false)
	if err != nil {
		t.Fatalf("LoadLines returned error: %v", err)
	}
	want := []string{"欧阳", "", "司马"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("LoadLines = %v, want %v", lines, want)
	}
}

func TestLoadLinesMissingFile(t *testing.T) {
	_, err := LoadLines(filepath.Join(t.TempDir(), "absent.txt"), true)
	if !errors.Is(err, apperrors.ErrSourceUnavailable) {
		t.Fatalf("error = %v, want ErrSourceUnavailable", err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	loader := &Loader{
		CodeTablePath: writeFile(t, dir, "data.json", `[{"word":"锋","order":"5"}]`),
		SurnamesPath:  writeFile(t, dir, "surnames.txt", "欧阳\n"),
		NamesPath:     writeFile(t, dir, "names.txt", "欧阳锋\n锋\n"),
	}
	in, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(in.Records) != 1 || len(in.Surnames) != 1 || len(in.Names) != 2 {
		t.Errorf("LoadAll = records:%d surnames:%d names:%d", len(in.Records), len(in.Surnames), len(in.Names))
	}
}

func TestLoadAllPropagatesFailure(t *testing.T) {
	dir := t.TempDir()
	loader := &Loader{
		CodeTablePath: filepath.Join(dir, "absent.json"),
		SurnamesPath:  writeFile(t, dir, "surnames.txt", "欧阳\n"),
		NamesPath:     writeFile(t, dir, "names.txt", "锋\n"),
	}
	_, err := loader.LoadAll(context.Background())
	if !errors.Is(err, apperrors.ErrSourceUnavailable) {
		t.Fatalf("error = %v, want ErrSourceUnavailable", err)
	}
}
