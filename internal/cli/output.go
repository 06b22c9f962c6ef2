package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/wordfeud-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(w io.Writer, err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"class":   errorClass(err),
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(w, string(data))
	} else {
		_, _ = fmt.Fprintf(w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, model.ErrValidation):
		return "validation"
	case errors.Is(err, model.ErrEncoding):
		return "encoding"
	case errors.Is(err, model.ErrTransport):
		return "transport"
	case errors.Is(err, model.ErrProtocol):
		return "protocol"
	case errors.Is(err, model.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, model.ErrDomain):
		return "domain"
	default:
		return "cli"
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.LoginResult:
		o.printLogin(v)
	case *model.MoveResult:
		o.printMove(v)
	case *model.SwapResult:
		o.printSwap(v)
	case []json.RawMessage:
		o.printList(v)
	case json.RawMessage:
		o.printRaw(v)
	case model.ID:
		_, _ = fmt.Fprintln(o.w, v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printLogin(r *model.LoginResult) {
	_, _ = fmt.Fprintf(o.w, "User: %s (%s)\n", r.User.Username, r.User.ID)
	if r.User.Email != "" {
		_, _ = fmt.Fprintf(o.w, "Email: %s\n", r.User.Email)
	}
	_, _ = fmt.Fprintf(o.w, "Session: %s\n", r.SessionID)
}

func (o *Output) printMove(r *model.MoveResult) {
	_, _ = fmt.Fprintf(o.w, "Word: %s\n", plain(r.MainWord))
	_, _ = fmt.Fprintf(o.w, "Points: %s\n", plain(r.Points))
	_, _ = fmt.Fprintf(o.w, "New tiles: %s\n", compact(r.NewTiles))
	_, _ = fmt.Fprintln(o.w, "\nGame:")
	o.printRaw(r.Game)
}

func (o *Output) printSwap(r *model.SwapResult) {
	_, _ = fmt.Fprintf(o.w, "New tiles: %s\n", compact(r.NewTiles))
	_, _ = fmt.Fprintln(o.w, "\nGame:")
	o.printRaw(r.Game)
}

func (o *Output) printList(items []json.RawMessage) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(o.w, "(none)")
		return
	}
	for _, item := range items {
		_, _ = fmt.Fprintf(o.w, "- %s\n", compact(item))
	}
}

func (o *Output) printRaw(raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, _ = fmt.Fprintln(o.w, string(raw))
		return
	}
	_, _ = fmt.Fprintln(o.w, buf.String())
}

// plain renders a JSON string without quotes and anything else compacted
func plain(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return compact(raw)
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
