// Package source loads the three collation inputs: the stroke-code table,
// the compound surname list, and the candidate names. All inputs are read
// fully into memory before sorting begins; a failed load is fatal for the
// whole run.
package source

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
)

// Inputs holds everything the sort driver needs, loaded and immutable.
type Inputs struct {
	Records  []codetable.Record
	Surnames []string
	Names    []string
}

// Loader reads the collation inputs from files on disk.
type Loader struct {
	CodeTablePath string
	SurnamesPath  string
	NamesPath     string
}

// LoadAll reads all three inputs concurrently. The loads are independent and
// the results are immutable afterwards, so the fan-out is safe. Any failure
// aborts the whole load.
func (l *Loader) LoadAll(ctx context.Context) (*Inputs, error) {
	var in Inputs
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := LoadCodeTable(l.CodeTablePath)
		if err != nil {
			return err
		}
		in.Records = records
		return nil
	})
	g.Go(func() error {
		surnames, err := LoadLines(l.SurnamesPath, false)
		if err != nil {
			return err
		}
		in.Surnames = surnames
		return nil
	})
	g.Go(func() error {
		names, err := LoadLines(l.NamesPath, true)
		if err != nil {
			return err
		}
		in.Names = names
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

// LoadCodeTable parses a JSON array of {word, order} records from path.
// A parse failure is a malformed-record error; nothing is returned partially.
func LoadCodeTable(path string) ([]codetable.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrSourceUnavailable, 503, "opening code table %s: %v", path, err)
	}
	defer f.Close()
	return DecodeRecords(f, path)
}

// DecodeRecords decodes code-table records from r. The name is used only for
// error messages.
func DecodeRecords(r io.Reader, name string) ([]codetable.Record, error) {
	var records []codetable.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, apperrors.Newf(apperrors.ErrMalformedRecord, 500, "parsing code table %s: %v", name, err)
	}
	return records, nil
}

// LoadLines reads a line-oriented file, trimming whitespace from each line.
// When skipBlank is set, blank lines are discarded (the name list contract);
// otherwise they are kept as-is after trimming.
func LoadLines(path string, skipBlank bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrSourceUnavailable, 503, "opening %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if skipBlank && line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Newf(apperrors.ErrSourceUnavailable, 503, "reading %s: %v", path, err)
	}
	return lines, nil
}
