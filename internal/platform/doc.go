// Package platform contains OS integration and external tooling glue:
// filesystem helpers, saving and opening speech audio, text cleanup of
// backend-generated content, and lecture playlist import via ytdlp.
package platform
