package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// NormalizePriority maps a priority flag to its canonical spelling.
// Well-known labels match case-insensitively ("alta" → "Alta"); any other
// label is kept as typed.
func NormalizePriority(priority string) string {
	priority = strings.TrimSpace(priority)
	for _, known := range models.KnownPriorities {
		if strings.EqualFold(priority, known) {
			return known
		}
	}
	// accept the unaccented spelling of Crítica
	if strings.EqualFold(priority, "critica") {
		return models.PriorityCritical
	}
	return priority
}

// Confirm prints prompt and reports whether the answer was y or yes
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprintf(out, "%s (y/N): ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
