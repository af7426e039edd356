package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/digraph/core"
)

// Write renders g to w in the normal format: the exact bytes of g.String(),
// so serialized text and debug printing can never drift apart. Weighted
// graphs carry the trailing cost column automatically. There is no
// trailing newline; an empty graph writes nothing.
//
// The isolation marker reserves "-1", so graphs holding negative vertex
// identifiers do not survive the text form.
func Write(w io.Writer, g core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if _, err := io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}

// Save writes g to the file at path in the normal format. The content
// lands in a temporary sibling first and is renamed over path only after
// a clean flush and close, so a crash never leaves a half-written file
// under the final name.
func Save(path string, g core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", tmp, err)
	}
	defer func() {
		f.Close()
		os.Remove(tmp) // no-op after a successful rename
	}()

	w := bufio.NewWriter(f)
	if err := Write(w, g); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("graphio: flush %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("graphio: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("graphio: rename %s: %w", path, err)
	}

	return nil
}
