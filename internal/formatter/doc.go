// Package formatter renders parsed rules into the configuration files of the
// supported AI coding assistants.
//
// Every target tool has a Formatter that decides which rules it accepts,
// where each rule is written and how its content is transformed. Formatters
// fall into three categories:
//
//   - directory formatters write one file per rule into a tool directory
//     (".cursor/rules/<name>.mdc");
//   - root-file formatters write the root rule to one fixed file ("CLAUDE.md")
//     and skip every other rule;
//   - memory formatters write one file per non-root rule into a memory
//     directory.
//
// A Registry holds one instance of every built-in formatter.
package formatter
