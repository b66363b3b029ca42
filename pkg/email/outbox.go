package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outbox implements Sender for local development: instead of delivering,
// it drops each campaign as an .html file (openable in a browser) plus a
// .json metadata sidecar into a directory.
type Outbox struct {
	dir string
}

// NewOutbox creates a development sender writing into dir. The directory is
// created on first send if it does not exist.
func NewOutbox(dir string) *Outbox {
	return &Outbox{dir: dir}
}

type outboxMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Campaign  string `json:"campaign,omitempty"`
}

// Send writes the compiled document and its metadata to disk. Filenames
// combine a timestamp, the campaign (or subject), and a short random suffix
// so rapid successive compiles of the same campaign never overwrite each
// other.
func (o *Outbox) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(o.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create outbox directory: %v", ErrSendFailed, err)
	}

	now := time.Now()
	identifier := params.Campaign
	if identifier == "" {
		identifier = params.Subject
	}
	base := fmt.Sprintf("%s_%s_%s",
		now.Format("2006_01_02_150405"),
		sanitizeFilename(identifier),
		uuid.NewString()[:8],
	)

	htmlPath := filepath.Join(o.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(params.HTML), 0644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrSendFailed, err)
	}

	meta, err := json.MarshalIndent(outboxMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        params.To,
		Subject:   params.Subject,
		Campaign:  params.Campaign,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(o.dir, base+".json"), meta, 0644); err != nil {
		return fmt.Errorf("%w: failed to write metadata file: %v", ErrSendFailed, err)
	}

	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 80
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "campaign"
	}
	return strings.ToLower(s)
}
