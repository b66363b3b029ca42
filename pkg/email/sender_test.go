package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/promokit/promokit/pkg/email"
)

// MockSender is a testify mock of the Sender interface for use by callers.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, params email.SendParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func TestSendParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendParams{
		To:      "user@example.com",
		Subject: "Summer Sale",
		HTML:    "<!DOCTYPE html><html></html>",
	}

	tests := []struct {
		name    string
		mutate  func(*email.SendParams)
		wantErr bool
	}{
		{"valid params", func(p *email.SendParams) {}, false},
		{"valid with campaign tag", func(p *email.SendParams) { p.Campaign = "summer-sale" }, false},
		{"empty To", func(p *email.SendParams) { p.To = "" }, true},
		{"whitespace To", func(p *email.SendParams) { p.To = "   " }, true},
		{"malformed address", func(p *email.SendParams) { p.To = "not-an-email" }, true},
		{"missing domain", func(p *email.SendParams) { p.To = "user@" }, true},
		{"missing local part", func(p *email.SendParams) { p.To = "@example.com" }, true},
		{"empty subject", func(p *email.SendParams) { p.Subject = "" }, true},
		{"empty HTML", func(p *email.SendParams) { p.HTML = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMockSender(t *testing.T) {
	t.Parallel()

	m := new(MockSender)
	params := email.SendParams{To: "user@example.com", Subject: "Hi", HTML: "<html></html>"}
	m.On("Send", mock.Anything, params).Return(nil)

	assert.NoError(t, m.Send(context.Background(), params))
	m.AssertExpectations(t)
}
