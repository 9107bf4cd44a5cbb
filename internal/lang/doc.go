// Package lang defines the BenchScript language surface shared by the
// indentation engine, the syntax highlighter, and the inline help system.
//
// The package has two halves. The keyword tables name every word the
// language reserves, grouped by use (block openers, closers, control words,
// declaration words, builtin functions). The Classifier assigns each source
// line one of four structural roles:
//
//	RoleStart     opens a block (program, function, for, loop, ...)
//	RoleEnd       closes a block (end, next, readout device)
//	RoleStartEnd  closes one block and opens a sibling (else)
//	RolePlain     everything else
//
// Classification looks at exactly one line of text. It is case-insensitive,
// matches keywords as whole words only, and is total: any input, including
// garbage, yields a role and never an error. A Classifier is immutable once
// built; site extensions contribute extra opener and closer keywords at
// construction time only.
package lang
