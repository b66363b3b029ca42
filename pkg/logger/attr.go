package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Campaign records the campaign tag under the key "campaign".
func Campaign(tag string) slog.Attr {
	return slog.String("campaign", tag)
}

// Template records the email template name under the key "template".
func Template(name string) slog.Attr {
	return slog.String("template", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
