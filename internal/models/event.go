package models

// PostEvent describes a lifecycle transition of a post, published to Kafka.
type PostEvent struct {
	EventID   string     `json:"eventId"`   // EventID is a unique identifier of the event.
	PostID    int64      `json:"postId"`    // PostID is the post that changed state.
	Action    string     `json:"action"`    // Action is the operator action: publish, archive or restore.
	From      PostStatus `json:"from"`      // From is the status before the transition.
	To        PostStatus `json:"to"`        // To is the status after the transition.
	Timestamp int64      `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the transition.
}
