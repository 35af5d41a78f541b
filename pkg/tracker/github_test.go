//go:build unit

package tracker

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
)

func TestItemFromIssue(t *testing.T) {
	updated := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		issue    *github.Issue
		expected Item
	}{
		{
			name: "issue with labels and assignee",
			issue: &github.Issue{
				Number:  github.Int(42),
				Title:   github.String("Crash on startup"),
				HTMLURL: github.String("https://github.com/octo/staleness/issues/42"),
				Labels: []*github.Label{
					{Name: github.String("bug")},
					{Name: github.String("stale")},
				},
				Assignees: []*github.User{{Login: github.String("octocat")}},
				UpdatedAt: &github.Timestamp{Time: updated},
			},
			expected: Item{
				Number:    42,
				Title:     "Crash on startup",
				URL:       "https://github.com/octo/staleness/issues/42",
				Kind:      KindIssue,
				Labels:    []string{"bug", "stale"},
				Assignees: []string{"octocat"},
				UpdatedAt: updated,
			},
		},
		{
			name: "pull request",
			issue: &github.Issue{
				Number:           github.Int(7),
				Title:            github.String("Add feature"),
				HTMLURL:          github.String("https://github.com/octo/staleness/pull/7"),
				PullRequestLinks: &github.PullRequestLinks{},
				UpdatedAt:        &github.Timestamp{Time: updated},
			},
			expected: Item{
				Number:    7,
				Title:     "Add feature",
				URL:       "https://github.com/octo/staleness/pull/7",
				Kind:      KindPullRequest,
				Labels:    []string{},
				UpdatedAt: updated,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, itemFromIssue(tt.issue))
		})
	}
}

func TestCommentFromIssueComment(t *testing.T) {
	created := time.Date(2023, 6, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		userType string
		expected AuthorKind
	}{
		{name: "human author", userType: "User", expected: AuthorHuman},
		{name: "bot author", userType: "Bot", expected: AuthorBot},
		{name: "organization author counts as bot", userType: "Organization", expected: AuthorBot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := commentFromIssueComment(&github.IssueComment{
				User:      &github.User{Login: github.String("someone"), Type: github.String(tt.userType)},
				CreatedAt: &github.Timestamp{Time: created},
			})
			assert.Equal(t, tt.expected, comment.AuthorKind)
			assert.Equal(t, "someone", comment.Author)
			assert.Equal(t, created, comment.CreatedAt)
		})
	}
}

func TestEventFromIssueEvent(t *testing.T) {
	created := time.Date(2023, 5, 20, 10, 0, 0, 0, time.UTC)

	labeled := eventFromIssueEvent(&github.IssueEvent{
		Event:     github.String("labeled"),
		Label:     &github.Label{Name: github.String("stale")},
		CreatedAt: &github.Timestamp{Time: created},
	})
	assert.Equal(t, Event{Kind: EventLabeled, Label: "stale", CreatedAt: created}, labeled)

	// Non-label events carry no label name; they must not surface one.
	closed := eventFromIssueEvent(&github.IssueEvent{
		Event:     github.String("closed"),
		CreatedAt: &github.Timestamp{Time: created},
	})
	assert.Equal(t, Event{Kind: EventOther, CreatedAt: created}, closed)
}

func TestHandleGitHubError(t *testing.T) {
	g := NewGitHub("octo", "staleness", "")
	apiErr := errors.New("api failure")

	response := func(status int, header http.Header) *github.Response {
		if header == nil {
			header = http.Header{}
		}
		return &github.Response{Response: &http.Response{StatusCode: status, Header: header}}
	}

	tests := []struct {
		name     string
		resp     *github.Response
		expected error
	}{
		{name: "not found", resp: response(http.StatusNotFound, nil), expected: ErrNotFound},
		{name: "unauthorized", resp: response(http.StatusUnauthorized, nil), expected: ErrUnauthorized},
		{name: "forbidden", resp: response(http.StatusForbidden, nil), expected: ErrUnauthorized},
		{
			name: "rate limited",
			resp: response(http.StatusForbidden, http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
			}),
			expected: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.handleGitHubError(apiErr, tt.resp, 1)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	// Without a response the original error is preserved wrapped.
	err := g.handleGitHubError(apiErr, nil, 1)
	assert.ErrorIs(t, err, apiErr)
}
