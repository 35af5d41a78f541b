package tracker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// GitHub implements Tracker against the GitHub REST API. GitHub treats pull
// requests as issues internally, so one implementation covers both kinds.
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHub creates a new GitHub tracker for the given repository,
// authenticated with the given token.
func NewGitHub(owner, repo, token string) *GitHub {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &GitHub{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
	}
}

// ListOpenItems returns one page of open issues and pull requests.
func (g *GitHub) ListOpenItems(ctx context.Context, page int) ([]Item, error) {
	issues, resp, err := g.client.Issues.ListByRepo(ctx, g.owner, g.repo, &github.IssueListByRepoOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: PageSize,
			Page:    page,
		},
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, 0)
	}

	items := make([]Item, 0, len(issues))
	for _, issue := range issues {
		items = append(items, itemFromIssue(issue))
	}
	return items, nil
}

// ListComments returns the comments on an item posted after since.
func (g *GitHub) ListComments(ctx context.Context, number int, since time.Time) ([]Comment, error) {
	comments, resp, err := g.client.Issues.ListComments(ctx, g.owner, g.repo, number, &github.IssueListCommentsOptions{
		Since: &since,
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, number)
	}

	result := make([]Comment, 0, len(comments))
	for _, comment := range comments {
		result = append(result, commentFromIssueComment(comment))
	}
	return result, nil
}

// ListEvents returns one page of an item's historical events plus the next
// page number, 0 when the listing is exhausted.
func (g *GitHub) ListEvents(ctx context.Context, number int, page int) ([]Event, int, error) {
	events, resp, err := g.client.Issues.ListIssueEvents(ctx, g.owner, g.repo, number, &github.ListOptions{
		PerPage: PageSize,
		Page:    page,
	})
	if err != nil {
		return nil, 0, g.handleGitHubError(err, resp, number)
	}

	result := make([]Event, 0, len(events))
	for _, event := range events {
		result = append(result, eventFromIssueEvent(event))
	}
	return result, resp.NextPage, nil
}

// AddLabel adds a label to an item.
func (g *GitHub) AddLabel(ctx context.Context, number int, label string) error {
	_, resp, err := g.client.Issues.AddLabelsToIssue(ctx, g.owner, g.repo, number, []string{label})
	if err != nil {
		return g.handleGitHubError(err, resp, number)
	}
	return nil
}

// RemoveLabel removes a label from an item.
func (g *GitHub) RemoveLabel(ctx context.Context, number int, label string) error {
	resp, err := g.client.Issues.RemoveLabelForIssue(ctx, g.owner, g.repo, number, label)
	if err != nil {
		return g.handleGitHubError(err, resp, number)
	}
	return nil
}

// PostComment posts a comment on an item.
func (g *GitHub) PostComment(ctx context.Context, number int, body string) error {
	_, resp, err := g.client.Issues.CreateComment(ctx, g.owner, g.repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return g.handleGitHubError(err, resp, number)
	}
	return nil
}

// Close sets an item's state to closed.
func (g *GitHub) Close(ctx context.Context, number int) error {
	_, resp, err := g.client.Issues.Edit(ctx, g.owner, g.repo, number, &github.IssueRequest{
		State: github.String("closed"),
	})
	if err != nil {
		return g.handleGitHubError(err, resp, number)
	}
	return nil
}

// itemFromIssue converts a GitHub issue to the tracker's Item snapshot.
func itemFromIssue(issue *github.Issue) Item {
	kind := KindIssue
	if issue.IsPullRequest() {
		kind = KindPullRequest
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	var assignees []string
	for _, assignee := range issue.Assignees {
		assignees = append(assignees, assignee.GetLogin())
	}

	return Item{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		Kind:      kind,
		Labels:    labels,
		Assignees: assignees,
		UpdatedAt: issue.GetUpdatedAt().Time,
	}
}

// commentFromIssueComment converts a GitHub comment. The API reports the
// author type as "User" for people and "Bot" for automation actors; anything
// that is not a person counts as a bot for the activity check.
func commentFromIssueComment(comment *github.IssueComment) Comment {
	kind := AuthorBot
	if comment.GetUser().GetType() == "User" {
		kind = AuthorHuman
	}
	return Comment{
		Author:     comment.GetUser().GetLogin(),
		AuthorKind: kind,
		CreatedAt:  comment.GetCreatedAt().Time,
	}
}

// eventFromIssueEvent converts a GitHub issue event. The label name is only
// carried for "labeled" events, so non-label events never expose one.
func eventFromIssueEvent(event *github.IssueEvent) Event {
	if event.GetEvent() == "labeled" && event.Label != nil {
		return Event{
			Kind:      EventLabeled,
			Label:     event.Label.GetName(),
			CreatedAt: event.GetCreatedAt().Time,
		}
	}
	return Event{
		Kind:      EventOther,
		CreatedAt: event.GetCreatedAt().Time,
	}
}

// handleGitHubError maps GitHub API errors to tracker errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, number int) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: #%d", ErrNotFound, number)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("tracker call failed: %w", err)
}
