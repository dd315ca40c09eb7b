// Package parser decodes raw partition lines into question records.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/qa-stats/models"
)

// FormatError reports a line that does not decode into a question record.
// A single malformed line aborts the whole run, so the error carries enough
// context to identify the offending input.
type FormatError struct {
	Cause error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed record line: %s", e.Cause)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

type Parser struct{}

// ParseLine decodes one raw line into a Record. The line must be a single
// JSON object with a "texts" array of strings and a "tags" array of
// strings; anything else (wrong types, non-object, trailing data) is a
// *FormatError. Word and tag values are used verbatim downstream, so no
// normalization happens here.
func (p *Parser) ParseLine(line []byte) (*models.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(line))

	record := &models.Record{}
	if err := dec.Decode(record); err != nil {
		return nil, &FormatError{Cause: err}
	}

	// A second document on the same line is as malformed as a broken one.
	if dec.More() {
		return nil, &FormatError{Cause: fmt.Errorf("trailing data after record object")}
	}

	if record.Texts == nil {
		return nil, &FormatError{Cause: fmt.Errorf("missing required field \"texts\"")}
	}
	if record.Tags == nil {
		return nil, &FormatError{Cause: fmt.Errorf("missing required field \"tags\"")}
	}

	return record, nil
}
