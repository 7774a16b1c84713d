package ingest

import "fmt"

// Error reports a fatal problem with the source lexicon itself — an
// unrecognised POS or variation label, or a JSON document that doesn't
// parse — as distinct from FormatError (package dict), which reports a
// malformed compiled dictionary.
type Error struct {
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("💥 IngestError: %s", e.Message)
}

// Errorf builds an Error from a format string, in the same spirit as
// fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	return Error{Message: fmt.Sprintf(format, args...)}
}
