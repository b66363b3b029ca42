package email

// Config holds delivery configuration. All Postmark fields are optional so
// development environments can run on the Outbox sender alone; NewPostmarkSender
// enforces them when Postmark delivery is actually requested.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL"`
	OutboxDir            string `env:"EMAIL_OUTBOX_DIR" envDefault:"./outbox"`
}
