// Package github serves repository paths through the GitHub contents API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/github"
	"github.com/oneconcern/dsindex/pkg/repopath"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	typeDir  = "dir"
	typeFile = "file"
)

// Option is a functor to pass optional parameters to the GitHub client
type Option func(*Client)

// Token authenticates API calls with a personal access token
func Token(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// BaseURL points the client to another API endpoint, e.g. GitHub Enterprise
func BaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// HTTPClient sets the underlying http client. It is wrapped when a token is set.
func HTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// Logger specifies a logger for API calls
func Logger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.l = logger
		}
	}
}

// Client builds paths backed by the GitHub API
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	l          *zap.Logger
	api        *gh.Client
}

// New GitHub client
func New(ctx context.Context, opts ...Option) (*Client, error) {
	c := &Client{l: zap.NewNop()}
	for _, apply := range opts {
		apply(c)
	}

	httpClient := c.httpClient
	if c.token != "" {
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token}))
	}
	c.api = gh.NewClient(httpClient)

	if c.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github API url %q: %w", c.baseURL, err)
		}
		c.api.BaseURL = u
	}
	return c, nil
}

// Resolve parses a location and returns the matching path
func (c *Client) Resolve(location string) (repopath.Path, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}
	return &githubPath{client: c, loc: loc}, nil
}

// contents fetches a path. A missing path yields nil contents and no error.
func (c *Client) contents(ctx context.Context, loc Location) (*gh.RepositoryContent, []*gh.RepositoryContent, error) {
	c.l.Debug("github contents", zap.Stringer("location", loc))
	file, dir, resp, err := c.api.Repositories.GetContents(ctx, loc.Owner, loc.Repo, loc.Path, &gh.RepositoryContentGetOptions{
		Ref: loc.Ref,
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("github contents for %s: %w", loc, err)
	}
	return file, dir, nil
}

var _ repopath.Path = &githubPath{}

type githubPath struct {
	client *Client
	loc    Location

	// type reported by a directory listing, empty when unknown
	kind string
}

func (p *githubPath) Name() string {
	return p.loc.Name()
}

func (p *githubPath) String() string {
	return p.loc.String()
}

func (p *githubPath) Exists(ctx context.Context) (bool, error) {
	if p.kind != "" {
		return true, nil
	}
	file, dir, err := p.client.contents(ctx, p.loc)
	if err != nil {
		return false, err
	}
	return file != nil || dir != nil, nil
}

func (p *githubPath) IsDir(ctx context.Context) (bool, error) {
	if p.kind != "" {
		return p.kind == typeDir, nil
	}
	_, dir, err := p.client.contents(ctx, p.loc)
	if err != nil {
		return false, err
	}
	return dir != nil, nil
}

func (p *githubPath) Iterdir(ctx context.Context) ([]repopath.Path, error) {
	file, dir, err := p.client.contents(ctx, p.loc)
	if err != nil {
		return nil, err
	}
	if dir == nil {
		if file != nil {
			return nil, fmt.Errorf("listing %s: not a directory", p)
		}
		return nil, fmt.Errorf("listing %s: not found", p)
	}
	children := make([]repopath.Path, 0, len(dir))
	for _, entry := range dir {
		child := &githubPath{
			client: p.client,
			loc:    p.loc.Join(entry.GetName()),
			kind:   entry.GetType(),
		}
		if child.kind != typeDir && child.kind != typeFile {
			// symlinks and submodules are resolved on demand
			child.kind = ""
		}
		children = append(children, child)
	}
	return children, nil
}

func (p *githubPath) Child(name string) repopath.Path {
	return &githubPath{client: p.client, loc: p.loc.Join(name)}
}
