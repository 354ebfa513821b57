package session

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

const plainTextMIME = "text/plain"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadFromFile replaces the text with the contents of a plain-text file.
// Anything that is not a .txt file with textual content is ignored and the
// state is returned unchanged with false.
func (s State) LoadFromFile(name string, data []byte) (State, bool) {
	if !IsPlainText(name, data) {
		return s, false
	}
	return s.SetText(decodeText(data)), true
}

// IsPlainText reports whether name and data describe a plain-text file.
func IsPlainText(name string, data []byte) bool {
	if !strings.EqualFold(filepath.Ext(name), ".txt") {
		return false
	}
	if len(data) == 0 {
		return true
	}
	for mtype := mimetype.Detect(data); mtype != nil; mtype = mtype.Parent() {
		if mtype.Is(plainTextMIME) {
			return true
		}
	}
	return false
}

func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
