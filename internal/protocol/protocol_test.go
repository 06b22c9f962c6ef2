package protocol

import (
	"errors"
	"math"
	"net/http"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordfeud-go/internal/model"
	"github.com/mcoot/wordfeud-go/internal/transport"
)

// HashPassword

func TestHashPasswordIsSaltedSHA1(t *testing.T) {
	assert.Equal(t, "e48a684478287bf6432cfea922e4caa6b09cddf2", HashPassword(""))
	assert.Equal(t, "2dbf7ac1f27937194a7600f3b07c3eec29e84a76", HashPassword("abc"))
	assert.Equal(t, "8345d2b2797db3a560bbf690610d3aac6811d696", HashPassword("secret"))
}

func TestHashPasswordEncodesUTF8(t *testing.T) {
	assert.Equal(t, "45b768d62a4dbfd625783983a447792b54cca360", HashPassword("pässword"))
	assert.NotEqual(t, HashPassword("secret"), HashPassword("Secret"))
}

// Encode

func TestEncodeNilBody(t *testing.T) {
	text, n, err := Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Equal(t, 0, n)
}

func TestEncodeASCIILengthEqualsCharCount(t *testing.T) {
	text, n, err := Encode(map[string]any{"message": "hello <world> & co", "id": 7})
	require.NoError(t, err)
	assert.Equal(t, `{"id":7,"message":"hello <world> & co"}`, text)
	assert.Equal(t, utf8.RuneCountInString(text), n)
	assert.Equal(t, len(text), n)
}

func TestEncodeMultiByteLength(t *testing.T) {
	cases := []struct {
		name  string
		value string
		extra int
	}{
		{"two byte", "é", 1},
		{"three byte", "€", 2},
		{"four byte", "😀", 3},
		{"mixed", "aé€😀", 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, n, err := Encode(map[string]string{"m": tc.value})
			require.NoError(t, err)
			assert.Equal(t, utf8.RuneCountInString(text)+tc.extra, n)
			assert.Equal(t, PercentEncodedLength(text), n)
		})
	}
}

func TestPercentEncodedLengthAgreesWithByteLength(t *testing.T) {
	for _, s := range []string{"", "plain", "100% sure", "%B0 literal", "ÆØÅ æøå", "日本語", "𝄞 clef", "a+b c/d?e"} {
		assert.Equal(t, len(s), PercentEncodedLength(s), "text %q", s)
	}
}

func TestEncodeUnsupportedValues(t *testing.T) {
	for name, body := range map[string]any{
		"channel": map[string]any{"c": make(chan int)},
		"func":    map[string]any{"f": func() {}},
		"nan":     map[string]any{"n": math.NaN()},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := Encode(body)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrEncoding)
		})
	}
}

func TestEncodeCycle(t *testing.T) {
	type node struct {
		Next *node `json:"next"`
	}
	n := &node{}
	n.Next = n

	_, _, err := Encode(n)
	assert.ErrorIs(t, err, model.ErrEncoding)
}

// Classify

func ok(body string) *transport.Response {
	return &transport.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: body}
}

func TestClassifySuccess(t *testing.T) {
	content, err := Classify(ok(`{"status":"success","content":{"id":5}}`), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5}`, string(content))
}

func TestClassifyTransportErrorPropagatesUnchanged(t *testing.T) {
	in := &model.TransportError{Err: errors.New("connection refused")}
	_, err := Classify(nil, in)
	assert.Same(t, in, err)
}

func TestClassifyNilResponse(t *testing.T) {
	_, err := Classify(nil, nil)
	assert.ErrorIs(t, err, model.ErrTransport)
}

func TestClassifyNon200(t *testing.T) {
	_, err := Classify(&transport.Response{StatusCode: http.StatusInternalServerError, Body: `{"status":"success"}`}, nil)
	var pe *model.ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusInternalServerError, pe.StatusCode)
}

func TestClassifyDomainError(t *testing.T) {
	_, err := Classify(ok(`{"status":"error","content":{"type":"wrong_password","message":"no"}}`), nil)
	var de *model.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "wrong_password", de.Type)
	assert.Equal(t, "error: wrong_password", err.Error())
}

func TestClassifyDomainErrorWithoutType(t *testing.T) {
	_, err := Classify(ok(`{"status":"error"}`), nil)
	var de *model.DomainError
	require.ErrorAs(t, err, &de)
	assert.Empty(t, de.Type)
}

func TestClassifyMalformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json":        `<html>oops</html>`,
		"empty":           ``,
		"array":           `[1,2,3]`,
		"null":            `null`,
		"missing status":  `{"content":{}}`,
		"empty status":    `{"status":"","content":{}}`,
		"numeric status":  `{"status":1}`,
		"unknown status":  `{"status":"pending","content":{}}`,
		"truncated":       `{"status":"succ`,
		"string envelope": `"success"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Classify(ok(body), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrMalformedResponse)

			var me *model.MalformedResponseError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, body, me.Raw)
		})
	}
}

func TestClassifyIsExhaustive(t *testing.T) {
	statuses := []int{200, 201, 204, 302, 400, 401, 404, 500, 503}
	bodies := []string{``, `{}`, `null`, `[]`, `{"status":"success"}`, `{"status":"error","content":{"type":"x"}}`,
		`{"status":"other"}`, `{"status":"success","content":null}`, `garbage`, `{"status":"error","content":"s"}`}
	classes := []error{model.ErrTransport, model.ErrProtocol, model.ErrMalformedResponse, model.ErrDomain}

	for _, code := range statuses {
		for _, body := range bodies {
			var err error
			require.NotPanics(t, func() {
				_, err = Classify(&transport.Response{StatusCode: code, Body: body}, nil)
			})

			matched := 0
			for _, c := range classes {
				if errors.Is(err, c) {
					matched++
				}
			}
			if err == nil {
				assert.Equal(t, 200, code)
				continue
			}
			assert.Equal(t, 1, matched, "status %d body %q", code, body)
		}
	}
}

// ExtractSession

func TestExtractSession(t *testing.T) {
	h := http.Header{}
	h.Add("Set-Cookie", "sessionid=abc123; expires=Tue, 01-Jan-2030 00:00:00 GMT; Path=/")
	assert.Equal(t, "abc123", ExtractSession(h))
}

func TestExtractSessionNotLeadingDirective(t *testing.T) {
	h := http.Header{}
	h.Add("Set-Cookie", "Path=/; sessionid = tok ; HttpOnly")
	assert.Equal(t, "tok", ExtractSession(h))
}

func TestExtractSessionLaterHeader(t *testing.T) {
	h := http.Header{}
	h.Add("Set-Cookie", "csrftoken=zzz; Path=/")
	h.Add("Set-Cookie", "sessionid=second; Path=/")
	h.Add("Set-Cookie", "sessionid=third; Path=/")
	assert.Equal(t, "second", ExtractSession(h))
}

func TestExtractSessionAbsent(t *testing.T) {
	assert.Empty(t, ExtractSession(http.Header{}))
	assert.Empty(t, ExtractSession(nil))

	h := http.Header{}
	h.Add("Set-Cookie", "SessionID=wrongcase")
	h.Add("Set-Cookie", "sessionid")
	assert.Empty(t, ExtractSession(h))
}

// IsEmail

func TestIsEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.uk",
		"o'hara+tag@ex-ample.org",
		"x@[192.168.0.1]",
	}
	invalid := []string{
		"not-an-email",
		"user@",
		"@example.com",
		"user@localhost",
		"user@-example.com",
		"user@example-.com",
		"user.@example.com",
		".user@example.com",
		"us..er@example.com",
		"a@b@example.com",
		"user@[256.0.0.1]",
		"",
	}
	for _, s := range valid {
		assert.True(t, IsEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsEmail(s), s)
	}
}
