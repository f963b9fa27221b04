// Package ruleset loads rule documents from a ruleset directory.
//
// A ruleset is a directory of Markdown files, each optionally opening with
// YAML frontmatter that scopes the document to a set of path globs:
//
//	---
//	description: TypeScript style guide
//	globs:
//	  - "src/**/*.{ts,tsx}"
//	---
//
//	# TypeScript style
//	...
//
// A document without frontmatter, or without a globs key, applies to every
// path. Loading walks the directory in lexical order; that walk order is
// the registration order the selector preserves. Loading is the only I/O
// in the system and happens once, through the filesystem abstraction.
package ruleset
