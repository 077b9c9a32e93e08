package retile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
)

var errNotPermutation = errors.New("ordering is not a permutation")

// ReadOrdering parses a whitespace separated list of tile indices from r,
// typically one per line.
func ReadOrdering(r io.Reader) ([]int, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	var ordering []int
	for s.Scan() {
		i, err := strconv.Atoi(s.Text())
		if err != nil {
			return nil, fmt.Errorf("ordering entry %d: %w", len(ordering), err)
		}
		ordering = append(ordering, i)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return ordering, nil
}

// LoadOrdering reads an ordering from the named file.
func LoadOrdering(file string) ([]int, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadOrdering(f)
}

// WriteOrdering writes ordering to w, one index per line.
func WriteOrdering(w io.Writer, ordering []int) error {
	bw := bufio.NewWriter(w)
	for _, i := range ordering {
		if _, err := fmt.Fprintln(bw, i); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Identity returns the ordering that leaves n tiles where they are.
func Identity(n int) []int {
	if n < 0 {
		return nil
	}
	return lo.Range(n)
}

// Inverse returns the ordering that undoes ordering. It fails unless ordering
// contains every index from 0 to len(ordering)-1 exactly once.
func Inverse(ordering []int) ([]int, error) {
	inverse := make([]int, len(ordering))
	seen := make([]bool, len(ordering))
	for n, o := range ordering {
		if o < 0 || o >= len(ordering) || seen[o] {
			return nil, errNotPermutation
		}
		seen[o] = true
		inverse[o] = n
	}
	return inverse, nil
}
