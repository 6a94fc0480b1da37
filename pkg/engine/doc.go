/*
Package engine implements the traversal-and-substitution core of resub.

	+-----------+
	|  Engine   |
	| (Driver)  |
	+-----+-----+
	      |
	+-----+-----+        +-----------+
	|  Walker   | -----> |  Matcher  |
	| (Files)   |        | (Regex)   |
	+-----------+        +-----------+

🎯 Purpose:
- Validates one substitution request up front (pattern, root directory)
- Drives the tree walker and processes each yielded file sequentially
- Applies the write-back policy: write iff matched or force mode
- Aggregates per-file outcomes into a RunSummary

🔄 Flow:
1. New compiles the pattern and checks the root (fatal errors stop here)
2. Run asks the walker for files in deterministic lexical order
3. Each file is read, substituted, and conditionally written back
4. Per-file read/write errors are recorded and traversal continues
5. The observer is notified per file and once with the final summary

⚡ Error model:
- pattern.ErrBadPattern, walker.ErrInvalidRoot: fatal, before any file I/O
- ErrRead, ErrWrite: per-file, recorded in the summary, never abort the run

There is no rollback: files written before a later failure stay written. The
run is a best-effort batch, and a non-empty error list marks it as completed
with errors.
*/
package engine
