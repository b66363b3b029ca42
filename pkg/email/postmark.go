package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	config Config
}

// NewPostmarkSender creates a Postmark-backed campaign sender. Both tokens
// and valid addresses are required up front; a broken sender must fail at
// construction, not on the first campaign.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.ReplyToEmail) {
		return nil, fmt.Errorf("%w: ReplyToEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkSender panics on invalid configuration, for callers that
// want fail-fast startup wiring.
func MustNewPostmarkSender(cfg Config) Sender {
	s, err := NewPostmarkSender(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Send delivers the compiled document through Postmark's broadcast stream.
// Open and HTML link tracking are enabled; promotional mail lives or dies by
// those numbers.
func (s *postmarkSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:          s.config.SenderEmail,
		ReplyTo:       s.config.ReplyToEmail,
		To:            params.To,
		Subject:       params.Subject,
		Tag:           params.Campaign,
		HTMLBody:      params.HTML,
		TrackOpens:    true,
		TrackLinks:    "HtmlOnly",
		MessageStream: "broadcast",
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
