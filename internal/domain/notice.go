package domain

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeInfo:
		return "info"
	case NoticeError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a blocking message shown to the user.
type Notice struct {
	Kind    NoticeKind
	Message string
}
