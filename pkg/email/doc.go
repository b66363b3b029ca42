// Package email delivers compiled campaign documents through a
// provider-agnostic Sender interface.
//
// Two implementations ship with the package:
//
//   - PostmarkSender sends through Postmark's broadcast message stream with
//     open and link tracking enabled.
//   - Outbox saves each campaign to disk as an .html file plus a .json
//     metadata sidecar, so the compiled output can be inspected in a browser
//     during development.
//
// Both validate SendParams identically before doing anything, and both report
// failures through the package sentinel errors (ErrInvalidConfig,
// ErrInvalidParams, ErrSendFailed), checkable with errors.Is.
//
// # Usage
//
//	cfg := email.Config{
//		PostmarkServerToken:  os.Getenv("POSTMARK_SERVER_TOKEN"),
//		PostmarkAccountToken: os.Getenv("POSTMARK_ACCOUNT_TOKEN"),
//		SenderEmail:          "promo@example.com",
//		ReplyToEmail:         "hello@example.com",
//	}
//
//	sender, err := email.NewPostmarkSender(cfg)
//	if err != nil {
//		// handle configuration error
//	}
//
//	err = sender.Send(ctx, email.SendParams{
//		To:       "subscriber@example.com",
//		Subject:  "Summer Sale",
//		HTML:     compiler.Compile(campaignCfg),
//		Campaign: "summer-sale-2026",
//	})
package email
