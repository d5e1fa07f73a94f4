package frontmatter

import "strings"

// Delimiter opens and closes a frontmatter block.
const Delimiter = "---"

// Block is a frontmatter block split off the top of a document.
type Block struct {
	// Raw is the text between the delimiters, with \r\n normalized to \n.
	Raw string
	// Body is everything after the closing delimiter line.
	Body string
	// Found reports whether the document started with a complete block.
	Found bool
}

// Split extracts a leading frontmatter block from content. A block without a
// closing delimiter is not a block; the whole content is returned as body.
func Split(content string) Block {
	var remaining string
	switch {
	case strings.HasPrefix(content, Delimiter+"\r\n"):
		remaining = content[len(Delimiter)+2:]
	case strings.HasPrefix(content, Delimiter+"\n"):
		remaining = content[len(Delimiter)+1:]
	default:
		return Block{Body: content}
	}

	var raw string
	var bodyStart int
	switch {
	case strings.HasPrefix(remaining, Delimiter):
		// Empty frontmatter: ---\n---
		bodyStart = len(Delimiter)
	default:
		idx := strings.Index(remaining, "\n"+Delimiter)
		if idx == -1 {
			return Block{Body: content}
		}
		raw = remaining[:idx]
		bodyStart = idx + 1 + len(Delimiter)
	}

	// The closing delimiter must be alone on its line.
	rest := remaining[bodyStart:]
	lineEnd := strings.IndexByte(rest, '\n')
	tail := rest
	if lineEnd != -1 {
		tail = rest[:lineEnd]
	}
	if strings.TrimSpace(tail) != "" {
		return Block{Body: content}
	}
	body := ""
	if lineEnd != -1 {
		body = rest[lineEnd+1:]
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimRight(raw, "\r")

	return Block{Raw: raw, Body: body, Found: true}
}

// Strip removes a leading frontmatter block from content. Content without a
// block is returned unchanged.
func Strip(content string) string {
	b := Split(content)
	if !b.Found {
		return content
	}
	return b.Body
}
