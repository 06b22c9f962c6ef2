package protocol

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/wordfeud-go/internal/model"
)

// Encode serializes a request body and returns it with its transmitted length
// in bytes. A nil body encodes to nothing.
func Encode(body any) (string, int, error) {
	if body == nil {
		return "", 0, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", 0, &model.EncodingError{Err: err}
	}

	text := strings.TrimSuffix(buf.String(), "\n")
	return text, len(text), nil
}

// PercentEncodedLength computes the UTF-8 length of text by percent-encoding
// it and counting continuation-byte markers (%80-%BF), one extra byte each on
// top of the character count. For valid UTF-8 it equals len(text).
func PercentEncodedLength(text string) int {
	escaped := url.QueryEscape(text)

	extra := 0
	for i := 0; i+1 < len(escaped); i++ {
		if escaped[i] != '%' {
			continue
		}
		switch escaped[i+1] {
		case '8', '9', 'A', 'B', 'a', 'b':
			extra++
		}
		i += 2
	}

	return utf8.RuneCountInString(text) + extra
}
