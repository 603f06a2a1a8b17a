package util

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxFileNameRunes = 255

// ErrInvalidFileName is returned for empty or traversal-looking names.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName removes path separators and control characters, rejects
// traversal patterns and caps the name length while keeping the extension.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if s == "" {
		return "", ErrInvalidFileName
	}
	if utf8.RuneCountInString(s) > maxFileNameRunes {
		runes := []rune(s)
		ext := ""
		if i := strings.LastIndexByte(s, '.'); i >= 0 && utf8.RuneCountInString(s[i:]) <= 10 {
			ext = s[i:]
		}
		keep := maxFileNameRunes - utf8.RuneCountInString(ext)
		s = string(runes[:keep]) + ext
	}
	return s, nil
}
