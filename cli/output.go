package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/opal-lang/base58/core/invariant"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"
)

// record is the structured result for the json and cbor formats.
type record struct {
	Algorithm string `json:"algorithm" cbor:"algorithm"`
	InputLen  int    `json:"input_len" cbor:"input_len"`
	Encoded   string `json:"encoded" cbor:"encoded"`
}

func writeOutput(w io.Writer, format string, rec record, newline bool) error {
	switch format {
	case formatText:
		if newline {
			_, err := fmt.Fprintln(w, rec.Encoded)
			return err
		}
		_, err := io.WriteString(w, rec.Encoded)
		return err

	case formatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(rec)

	case formatCBOR:
		// Canonical mode keeps the bytes stable for identical records.
		encMode, err := cbor.CanonicalEncOptions().EncMode()
		invariant.ExpectNoError(err, "canonical CBOR options")
		data, err := encMode.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal CBOR: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	return formatError(format)
}

// validateFormat rejects an unsupported --format before any input is read.
func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatCBOR:
		return nil
	}
	return formatError(format)
}

func formatError(format string) error {
	return &CLIError{
		Type:    "format",
		Message: fmt.Sprintf("unsupported format %q", format),
		Hint:    "Use --format text, json or cbor",
	}
}
