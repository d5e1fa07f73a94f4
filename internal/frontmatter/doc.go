// Package frontmatter splits, builds and renders the "---" delimited metadata
// blocks found at the top of rule files.
//
// A formatter describes its frontmatter as an ordered Pipeline of Steps. Each
// step receives the rule and the fields accumulated so far and may add or
// overwrite keys; later steps win. Render turns the resulting fields into a
// block with quoted strings, bare booleans and numbers, and bracketed arrays.
package frontmatter
