package holiday

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/username/working-days-api/pkg/dateutil"
	"go.uber.org/zap"
)

// FileSource reads holiday dates from a local text file with one YYYY-MM-DD
// date per line. Blank lines and lines starting with # are skipped.
type FileSource struct {
	filePath string
	logger   *zap.Logger
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Holidays reads the holiday snapshot from the file.
func (s *FileSource) Holidays(ctx context.Context) (Set, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	set := make(Set)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if _, err := dateutil.ParseDateKey(line); err != nil {
			s.logger.Warn("Invalid holiday line",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		set[line] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday file: %w", err)
	}

	s.logger.Info("Holiday file loaded",
		zap.String("file", s.filePath),
		zap.Int("holidays", set.Len()))

	return set, nil
}
