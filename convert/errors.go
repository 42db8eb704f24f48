package convert

import (
	"errors"
	"fmt"
	"log"
)

// ErrorMode determines what the converter does when it finds an element
// it does not handle.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported elements with a log message.
	WarnErrorMode
	// StrictErrorMode aborts the conversion on unsupported elements.
	StrictErrorMode
)

func (c *context) unsupported(tag string) error {
	errStr := "cannot process svg element " + tag
	switch c.mode {
	case StrictErrorMode:
		return errors.New(errStr)
	case WarnErrorMode:
		log.Println(errStr)
	}
	return nil
}

// UnresolvedReferenceError means a use element carries no href (or
// xlink:href) attribute.
type UnresolvedReferenceError struct{}

func (UnresolvedReferenceError) Error() string {
	return "use element has no href attribute"
}

// MissingReferencedElementError means a use element references an id not
// present in the document.
type MissingReferencedElementError struct{ ID string }

func (e MissingReferencedElementError) Error() string {
	return fmt.Sprintf("referenced element %q not found in document", e.ID)
}

// EmptyReferenceResultError means resolving a reference produced no
// primitive.
type EmptyReferenceResultError struct{ ID string }

func (e EmptyReferenceResultError) Error() string {
	return fmt.Sprintf("reference to %q produced no element", e.ID)
}

// ReferenceCycleError means a chain of use elements references itself.
type ReferenceCycleError struct{ ID string }

func (e ReferenceCycleError) Error() string {
	return fmt.Sprintf("reference cycle through %q", e.ID)
}
