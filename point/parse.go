package point

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads one "x,y,z" point per line from r.
// Surrounding whitespace on lines and fields is ignored, blank lines are skipped.
//
// Errors:
//   - ErrMalformedLine (wrapped with the 1-based line number) for a line that
//     does not hold exactly three base-10 int64 fields.
//   - ErrEmptyInput if no point was read.
//   - any error returned by r.
//
// Complexity: O(size of input).
func Parse(r io.Reader) ([]Point, error) {
	var (
		pts    []Point
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}
	if len(pts) == 0 {
		return nil, ErrEmptyInput
	}

	return pts, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("point: open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("want 3 fields, got %d in %q", len(fields), line)
	}
	var c [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		c[i] = v
	}

	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}
