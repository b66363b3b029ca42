package email

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sender delivers one compiled campaign document to one recipient.
// Implementations: PostmarkSender for production broadcasts, Outbox for
// local development.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams carries a compiled document to a recipient. HTML is expected to
// be the output of the compiler package but any self-contained document works.
type SendParams struct {
	To       string `json:"to"`                 // Recipient email address
	Subject  string `json:"subject"`            // Subject line
	HTML     string `json:"html"`               // Compiled HTML document
	Campaign string `json:"campaign,omitempty"` // Optional campaign tag for provider analytics
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the parameters before any provider is involved so every
// Sender rejects the same malformed input the same way.
func (p SendParams) Validate() error {
	if strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.HTML) == "" {
		return fmt.Errorf("%w: HTML is required", ErrInvalidParams)
	}
	return nil
}

var (
	// ErrInvalidConfig is returned when a sender is constructed with
	// incomplete configuration.
	ErrInvalidConfig = errors.New("email: invalid sender configuration")
	// ErrInvalidParams is returned when send parameters fail validation.
	ErrInvalidParams = errors.New("email: invalid send parameters")
	// ErrSendFailed is returned when delivery fails after validation passed.
	ErrSendFailed = errors.New("email: failed to send")
)
