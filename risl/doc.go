// Package risl implements the front end of the Risl language. The current
// version covers lexical analysis: it turns UTF-8 source text into a stream
// of tokens addressed by byte-offset spans, leaving all literal validation
// and diagnostic reporting to later phases.
//
//   - Punctuation, one- and two-character operators, and `..`/`..=` ranges.
//   - Identifiers following Unicode XID rules, plus `_`.
//   - Integer and float literals in binary, octal, decimal, and hexadecimal
//     bases, with digit separators and trailing type suffixes.
//   - Line comments and nested block comments.
//
// Tokens never own text; every textual payload is a Span into the original
// source, resolved on demand through TokenStr. Runs of unrecognized
// characters collapse into a single Err token so a future parser sees one
// error per stretch of garbage instead of one per byte.
package risl
