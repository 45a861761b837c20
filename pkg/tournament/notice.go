package tournament

import "fmt"

// NoticeKind identifies a degraded path taken by the scheduler, the standings or the ladder
type NoticeKind string

// NoticeKind constants
const (
	// NoticeShortGroup is a group with fewer than four pairs, it has no matches
	NoticeShortGroup NoticeKind = "short_group"

	// NoticeUnknownPair is a match that references a pair outside its group, it was skipped
	NoticeUnknownPair NoticeKind = "unknown_pair"

	// NoticeTiedCourt is a ladder court with equal scores, side two was treated as the winner
	NoticeTiedCourt NoticeKind = "tied_court"

	// NoticeMissingResult is a ladder court without a result, nobody moves from it
	NoticeMissingResult NoticeKind = "missing_result"

	// NoticeDroppedCourt is a ladder court that could not gather four players for the next round
	NoticeDroppedCourt NoticeKind = "dropped_court"

	// NoticeRepeatPartners means every split of four players repeats a partnership
	NoticeRepeatPartners NoticeKind = "repeat_partners"
)

// Notice reports a degraded outcome to the caller
// None of these are errors, the default behavior was applied
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Group   string     `json:"group,omitempty"`
	Court   int        `json:"court,omitempty"`
	Match   *int       `json:"match,omitempty"`
	Message string     `json:"message"`
}

func newNotice(kind NoticeKind, format string, a ...interface{}) Notice {
	return Notice{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

// NewCourtNotice returns a notice about a ladder court
func NewCourtNotice(kind NoticeKind, court int, format string, a ...interface{}) Notice {
	n := newNotice(kind, format, a...)
	n.Court = court
	return n
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %s", n.Kind, n.Message)
}
