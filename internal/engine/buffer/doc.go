// Package buffer provides a thread-safe, line-addressed document store. It
// is the document surface the reindent pipeline, the file watcher, and the
// viewer all share.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Line-oriented reads and writes without exposed line endings
//   - Line ending detection and normalization (LF, CRLF, CR)
//   - Indentation rendering as spaces or tabs per configured style
//   - Revision tracking for change management
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString(src,
//		buffer.WithDetectedLineEnding(src),
//		buffer.WithTabWidth(4),
//	)
//
//	for i := 0; i < buf.LineCount(); i++ {
//		_ = buf.SetLineIndent(i, 4)
//	}
//
//	out := buf.Text() // original line ending style restored
package buffer
