package walker

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// sampleSize is how many leading bytes are inspected to classify a file as
// text or binary.
const sampleSize = 1024

// IsTextFile reports whether the file at path looks like UTF-8 text, based
// on a sample of its first bytes.
func IsTextFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, sampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}

	return isText(buf[:n]), nil
}

// isText treats a buffer as binary when it contains a NUL byte or is not
// valid UTF-8. A multibyte sequence the sample may have cut short is
// trimmed before validation so a truncation point inside a rune does not
// misclassify the file.
func isText(buf []byte) bool {
	if bytes.IndexByte(buf, 0) >= 0 {
		return false
	}
	return utf8.Valid(trimPartialRune(buf))
}

// trimPartialRune drops a trailing multibyte sequence that the sample
// boundary may have truncated.
func trimPartialRune(buf []byte) []byte {
	start := 0
	if len(buf) > utf8.UTFMax {
		start = len(buf) - utf8.UTFMax
	}

	for i := len(buf) - 1; i >= start; i-- {
		b := buf[i]
		if b&0xC0 == 0x80 {
			// continuation byte, keep scanning back
			continue
		}
		if b >= 0xC0 {
			// first byte of a multibyte sequence near the end
			return buf[:i]
		}
		break
	}
	return buf
}
