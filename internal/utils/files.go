package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akozlova/debyecalc/internal/lattice"
)

// ReadPoints loads atom positions from a plain text file with one
// whitespace-separated "x y z" triple per line. Empty lines are
// skipped; anything else is a format error.
func ReadPoints(filename string) ([]lattice.Point, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	var points []lattice.Point

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid format in line: %q - expected 3 coordinates, got %d", line, len(parts))
		}

		var coords [3]float64
		for i := range parts {
			coords[i], err = strconv.ParseFloat(parts[i], 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing float in line %q: %w", line, err)
			}
		}
		points = append(points, lattice.Point{X: coords[0], Y: coords[1], Z: coords[2]})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return points, nil
}

// GetFilename strips the directory and extension from a path.
func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// OutputPath builds the output location for one model artifact, either
// inside a per-model directory or with the model name as a prefix.
func OutputPath(makeDir bool, outputPath, modelName, fileSuffix, ext string) (string, error) {
	if makeDir && modelName != "" && modelName != "." {
		if err := os.MkdirAll(outputPath+modelName, 0750); err != nil {
			return "", err
		}
		return outputPath + modelName + "/" + fileSuffix + ext, nil
	}
	return outputPath + modelName + "_" + fileSuffix + ext, nil
}
