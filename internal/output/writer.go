// Package output writes sorted names to their destination. The committed
// contract is newline-terminated output, one name per line.
package output

import (
	"bufio"
	"io"
	"os"

	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
)

// WriteFile writes names to path, replacing any existing file. The file is
// only created after sorting succeeds, so a failed run leaves no partial
// output behind.
func WriteFile(path string, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Newf(apperrors.ErrSourceUnavailable, 503, "creating output %s: %v", path, err)
	}
	if err := Write(f, names); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Write streams names to w, one per line.
func Write(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	for _, name := range names {
		if _, err := bw.WriteString(name); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
