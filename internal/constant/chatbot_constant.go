package constant

const (
	MessageSenderUser = "user"
	MessageSenderBot  = "bot"
)

const (
	// FallbackReply is stored as the bot message whenever the completion
	// provider fails for any non-safety reason.
	FallbackReply = "Something Went Wrong"

	// SafetyFallbackReply is stored when the provider rejects the prompt
	// on content-safety grounds.
	SafetyFallbackReply = "This request was blocked by the provider's safety filters."
)
