package query

import (
	"errors"
	"fmt"
	"strconv"
)

// Search modes accepted at the boundary.
const (
	ModeTitleContent = "titleContent"
	ModeUserID       = "userId"
	ModePostID       = "postId"
)

// ErrUnsupportedMode reports a search mode outside the closed set. The
// service layer wraps it into its validation error type.
var ErrUnsupportedMode = errors.New("unsupported search type")

// PostFilter is the closed set of post search filters. It is built once
// at the boundary by ParsePostFilter, so the service dispatch never sees
// a raw mode string.
type PostFilter interface {
	postFilter()
}

type TitleContent struct {
	Keyword string
}

type ByUser struct {
	UserID uint
}

type ByPost struct {
	PostID uint
}

func (TitleContent) postFilter() {}
func (ByUser) postFilter()       {}
func (ByPost) postFilter()       {}

// ParsePostFilter translates a (mode, keyword) pair into a filter.
// A non-numeric keyword for the ID-based modes is not an error: the
// caller gets a nil filter plus an advisory message and should answer
// with an empty page. An unknown mode returns ErrUnsupportedMode.
func ParsePostFilter(mode, keyword string) (PostFilter, string, error) {
	switch mode {
	case ModeTitleContent:
		return TitleContent{Keyword: keyword}, "", nil
	case ModeUserID:
		id, ok := parseID(keyword)
		if !ok {
			return nil, fmt.Sprintf("user id must be a number, got %q", keyword), nil
		}
		return ByUser{UserID: id}, "", nil
	case ModePostID:
		id, ok := parseID(keyword)
		if !ok {
			return nil, fmt.Sprintf("post id must be a number, got %q", keyword), nil
		}
		return ByPost{PostID: id}, "", nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
}

func parseID(keyword string) (uint, bool) {
	id, err := strconv.ParseUint(keyword, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
