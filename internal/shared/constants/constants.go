package constants

const (
	// HTTP Headers
	HeaderXRequestID = "X-Request-ID"

	// MaxLoggedMOTDLength bounds how much of a stored MOTD is written to logs.
	MaxLoggedMOTDLength = 80
)

// DefaultLanguages are the language codes the league client ships with.
var DefaultLanguages = []string{
	"cs", "de", "el", "en", "es", "fr", "hu", "it", "ja", "ko",
	"pl", "pt", "ro", "ru", "tr",
}
