// Package sentences supplies the reference sentences for typing rounds.
package sentences

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads one sentence per line from the provided file path. Blank lines
// are skipped.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only sentence file.
			_ = cerr
		}
	}()

	var list []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("sentence file is empty")
	}
	return list, nil
}
