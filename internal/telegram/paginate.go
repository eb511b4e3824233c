package telegram

import "strings"

// MaxMessageLength is Telegram's per-message character limit.
const MaxMessageLength = 4096

// Paginate splits text into chunks of at most maxLength characters,
// breaking only at line boundaries. Joining the chunks back with "\n"
// reproduces the input exactly (as long as no single line exceeds
// maxLength; an overlong line is hard-split as a last resort, since the
// transport rejects oversized messages outright). Empty input yields no
// chunks. The result is computed fresh on every call.
func Paginate(text string, maxLength int) []string {
	if text == "" {
		return nil
	}
	if maxLength <= 0 {
		maxLength = MaxMessageLength
	}

	var chunks []string
	var current string
	started := false

	flush := func() {
		if started {
			chunks = append(chunks, current)
			current = ""
			started = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for len(line) > maxLength {
			flush()
			chunks = append(chunks, line[:maxLength])
			line = line[maxLength:]
		}
		switch {
		case !started:
			current = line
			started = true
		case len(current)+1+len(line) > maxLength:
			chunks = append(chunks, current)
			current = line
		default:
			current += "\n" + line
		}
	}
	flush()
	return chunks
}
