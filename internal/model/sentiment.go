package model

const (
	// SentimentUnknown is stored whenever classification did not complete.
	SentimentUnknown = "Unknown"

	// NicknameAnonymous is the display name for messages whose author
	// cannot be resolved.
	NicknameAnonymous = "Anonymous"
)
