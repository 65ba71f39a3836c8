// Package snapshot binary-encodes a parse's diagnostics for caching, the
// productionized version of the field-by-field MarshalBinary/UnmarshalBinary
// pattern the teacher hand-rolls in internal/tunascript/binary.go: this
// package uses github.com/dekarrin/rezi instead of reinventing varint/string
// framing, which is what rezi exists to replace.
package snapshot

import (
	"fmt"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/sdlparse/diag"
)

// Snapshot is the on-disk representation of one parse's diagnostics: enough
// to reconstruct diag.Error values without re-lexing or re-parsing the
// source (SPEC_FULL §11, internal/snapshot).
type Snapshot struct {
	Errors []diag.Error
}

// MarshalBinary implements encoding.BinaryMarshaler by splitting Errors into
// parallel field slices and encoding each with rezi, mirroring the
// child-count-then-children shape of AST.MarshalBinary in the teacher.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	kinds := make([]int, len(s.Errors))
	messages := make([]string, len(s.Errors))
	offsets := make([]int, len(s.Errors))
	lengths := make([]int, len(s.Errors))

	for i, e := range s.Errors {
		kinds[i] = int(e.Kind)
		messages[i] = e.Message
		offsets[i] = int(e.Offset)
		lengths[i] = int(e.Length)
	}

	var data []byte
	for _, field := range []any{kinds, messages, offsets, lengths} {
		enc, err := rezi.Enc(field)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot field: %w", err)
		}
		data = append(data, enc...)
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, reading the fields
// back in the order MarshalBinary wrote them.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	var kinds []int
	var messages []string
	var offsets []int
	var lengths []int

	for _, dst := range []any{&kinds, &messages, &offsets, &lengths} {
		n, err := rezi.Dec(data, dst)
		if err != nil {
			return fmt.Errorf("decode snapshot field: %w", err)
		}
		data = data[n:]
	}

	if len(kinds) != len(messages) || len(kinds) != len(offsets) || len(kinds) != len(lengths) {
		return fmt.Errorf("snapshot field slices have mismatched lengths")
	}

	errs := make([]diag.Error, len(kinds))
	for i := range kinds {
		errs[i] = diag.Error{
			Kind:    diag.Kind(kinds[i]),
			Message: messages[i],
			Offset:  uint32(offsets[i]),
			Length:  uint32(lengths[i]),
		}
	}
	s.Errors = errs
	return nil
}

// Encode serializes errs to bytes suitable for storage.
func Encode(errs []diag.Error) ([]byte, error) {
	return rezi.EncBinary(Snapshot{Errors: errs})
}

// Decode reverses Encode, reporting the diagnostics it contained.
func Decode(data []byte) ([]diag.Error, error) {
	var s Snapshot
	n, err := rezi.DecBinary(data, &s)
	if err != nil {
		return nil, fmt.Errorf("rezi decode: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("rezi decoded byte count mismatch; only consumed %d/%d bytes", n, len(data))
	}
	return s.Errors, nil
}
