package katsuyo

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadVerbs reads a lexicon file. Format: one verb per line,
// "id|class|dictionary|gloss"; lines starting with "!" are comments.
// Any malformed line fails the whole load.
func loadVerbs(path string) ([]Verb, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var verbs []Verb
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		v, err := ParseVerbLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		verbs = append(verbs, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return verbs, nil
}
