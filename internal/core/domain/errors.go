package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyCorpus marks a consuming stage that found no reviews to work
	// on, usually a run invoked before the clean dataset exists.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrInsufficientVocabulary means the corpus holds fewer distinct terms
	// than the requested topic count.
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary")
	ErrBankNotFound           = errors.New("bank not found")
	// ErrTemporary tags transient scrape failures worth retrying.
	ErrTemporary = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
