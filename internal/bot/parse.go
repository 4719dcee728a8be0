package bot

import "strings"

// ParseInput splits a raw input line into a command and its positional
// arguments. The command is the first whitespace-separated token, lowercased;
// an empty or blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
