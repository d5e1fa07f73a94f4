// Package generate runs the rules pipeline: it reads and parses a source
// document, writes a flat dump of every rule for IDE use, and hands each rule
// to every selected formatter.
//
// Formatter and rule pairs are processed sequentially in registry and parse
// order. When several rules target the same fixed path the last one wins under
// force; without it the first rule is kept and the later ones fail.
package generate
