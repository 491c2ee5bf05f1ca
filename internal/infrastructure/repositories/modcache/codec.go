package modcache

import "strings"

// escapeMarker precedes the lowercased form of every uppercase letter in
// the on-disk encoding of module paths and versions.
const escapeMarker = "!"

// Unescape reverses the module cache's case-escaping scheme: the directory
// layout rewrites each uppercase letter as "!" followed by its lowercase
// form. The input is split on the marker; the first piece is kept verbatim
// and each later piece is capitalized (first character uppercased, the rest
// lowercased) before concatenation.
//
// Known limitation, kept for compatibility with the observed layout: only
// the first character of each split piece is assumed to have been escaped,
// so an escaped letter deeper inside a piece would be lowercased instead
// of restored.
func Unescape(escaped string) string {
	pieces := strings.Split(escaped, escapeMarker)

	var builder strings.Builder
	builder.WriteString(pieces[0])
	for _, piece := range pieces[1:] {
		builder.WriteString(capitalize(piece))
	}
	return builder.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
