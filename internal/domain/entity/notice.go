package entity

// NoticeKind separates user-visible errors from informational messages.
type NoticeKind string

const (
	NoticeKindError NoticeKind = "error"
	NoticeKindInfo  NoticeKind = "info"
)

// Notice is one entry of the user-visible notification channel.
type Notice struct {
	Kind     NoticeKind `json:"kind"`
	Code     string     `json:"code,omitempty"`
	Message  string     `json:"message"`
	Severity string     `json:"severity,omitempty"`
}
