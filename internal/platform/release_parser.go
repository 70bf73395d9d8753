package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vladelaina/catime-notes/internal/model"
)

// Timeout constants
const (
	DefaultFetchTimeout = 30 * time.Second
)

// GitHub API constants
const (
	DefaultAPIBaseURL  = "https://api.github.com"
	DefaultRepoOwner   = "vladelaina"
	DefaultRepoName    = "Catime"
	UpdateUserAgent    = "Catime Update Checker"
	GitHubAcceptHeader = "application/vnd.github+json"
	ReleaseListPerPage = 10
	MaxResponseBytes   = 4 << 20
	errorBodyLimit     = 512
)

// ErrNoRelease is returned when the repository has no usable release
var ErrNoRelease = errors.New("no release found")

// githubAsset is a downloadable file attached to a release
type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// githubRelease mirrors the fields of the GitHub releases API we use
type githubRelease struct {
	TagName     string        `json:"tag_name"`
	Name        string        `json:"name"`
	Body        string        `json:"body"`
	HTMLURL     string        `json:"html_url"`
	Draft       bool          `json:"draft"`
	Prerelease  bool          `json:"prerelease"`
	PublishedAt time.Time     `json:"published_at"`
	Assets      []githubAsset `json:"assets"`
}

// ReleaseParserService fetches and parses release metadata from GitHub
type ReleaseParserService struct {
	timeout time.Duration
	client  *http.Client
	baseURL string
	owner   string
	repo    string
}

// NewReleaseParserService creates a new release fetcher for the Catime repository
func NewReleaseParserService() *ReleaseParserService {
	return &ReleaseParserService{
		timeout: DefaultFetchTimeout,
		client:  &http.Client{},
		baseURL: DefaultAPIBaseURL,
		owner:   DefaultRepoOwner,
		repo:    DefaultRepoName,
	}
}

// SetTimeout sets the timeout for fetch operations
func (r *ReleaseParserService) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// SetBaseURL overrides the API endpoint (used by tests and enterprise hosts)
func (r *ReleaseParserService) SetBaseURL(baseURL string) {
	r.baseURL = strings.TrimRight(baseURL, "/")
}

// SetRepository sets the owner and name of the repository to query
func (r *ReleaseParserService) SetRepository(owner, repo string) {
	r.owner = owner
	r.repo = repo
}

// FetchLatest returns the latest stable release
func (r *ReleaseParserService) FetchLatest(ctx context.Context) (*model.Release, error) {
	data, err := r.get(ctx, fmt.Sprintf("%s/repos/%s/%s/releases/latest", r.baseURL, r.owner, r.repo))
	if err != nil {
		return nil, err
	}
	return ParseRelease(data)
}

// FetchNewest returns the newest published release, optionally including pre-releases
func (r *ReleaseParserService) FetchNewest(ctx context.Context, includePrerelease bool) (*model.Release, error) {
	if !includePrerelease {
		return r.FetchLatest(ctx)
	}

	data, err := r.get(ctx, fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d", r.baseURL, r.owner, r.repo, ReleaseListPerPage))
	if err != nil {
		return nil, err
	}
	releases, err := ParseReleaseList(data)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, ErrNoRelease
	}
	return releases[0], nil
}

// get performs a GitHub API request and returns the body
func (r *ReleaseParserService) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UpdateUserAgent)
	req.Header.Set("Accept", GitHubAcceptHeader)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoRelease
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}

// ParseRelease converts a single GitHub release document
func ParseRelease(data []byte) (*model.Release, error) {
	var gr githubRelease
	if err := json.Unmarshal(data, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse release JSON: %w", err)
	}
	if gr.TagName == "" {
		return nil, fmt.Errorf("%w: missing tag_name", ErrNoRelease)
	}
	return toRelease(gr), nil
}

// ParseReleaseList converts a GitHub release list, dropping drafts
func ParseReleaseList(data []byte) ([]*model.Release, error) {
	var list []githubRelease
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse release list JSON: %w", err)
	}

	releases := make([]*model.Release, 0, len(list))
	for _, gr := range list {
		if gr.Draft || gr.TagName == "" {
			continue
		}
		releases = append(releases, toRelease(gr))
	}
	return releases, nil
}

func toRelease(gr githubRelease) *model.Release {
	release := &model.Release{
		Version:     NormalizeTag(gr.TagName),
		TagName:     gr.TagName,
		Name:        gr.Name,
		PageURL:     gr.HTMLURL,
		Notes:       gr.Body,
		Prerelease:  gr.Prerelease,
		PublishedAt: gr.PublishedAt,
	}
	for _, asset := range gr.Assets {
		if asset.BrowserDownloadURL != "" {
			release.DownloadURL = asset.BrowserDownloadURL
			break
		}
	}
	return release
}

// NormalizeTag strips surrounding space and a leading "v" or "V"
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if strings.HasPrefix(tag, "v") || strings.HasPrefix(tag, "V") {
		tag = tag[1:]
	}
	return tag
}
