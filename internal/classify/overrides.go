package classify

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"foldersort/internal/faults"
)

// LoadOverrides reads an override file from disk. See ParseOverrides for the format.
func LoadOverrides(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "mapping", "open overrides", fmt.Sprintf("cannot read mapping file %s", path), err)
	}
	defer file.Close()

	overrides, err := ParseOverrides(file)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "mapping", "parse overrides", path, err)
	}
	return overrides, nil
}

// ParseOverrides reads "extension,category" lines. Blank lines and lines
// starting with # are skipped, as are lines with fewer than two fields.
// Extensions gain a leading dot when missing and are lowercased. Later lines
// win over earlier ones.
func ParseOverrides(r io.Reader) (map[string]string, error) {
	overrides := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		ext := NormalizeExtension(parts[0])
		category := strings.TrimSpace(parts[1])
		if ext == "" || category == "" {
			continue
		}
		overrides[ext] = category
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return overrides, nil
}
