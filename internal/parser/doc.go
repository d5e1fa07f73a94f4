// Package parser splits a rules document into Rule records.
//
// Two dialects are understood. Plain Markdown documents hold a single rule
// with an optional leading frontmatter block. MDC documents (".mdc") hold a
// sequence of frontmatter+body sections, each becoming its own rule.
package parser
