package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetOverride prompts with the current value shown and returns nil when the
// user leaves the line blank (keep the current value), or a pointer to the
// new value otherwise. Entering "-" clears the field to empty.
func GetOverride(reader *bufio.Reader, label, current string, w io.Writer) (*string, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", label, current), w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	if line == "-" {
		empty := ""
		return &empty, nil
	}
	return &line, nil
}
