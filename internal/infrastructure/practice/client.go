package practice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codecraft/internal/pkg/logger"

	"go.uber.org/zap"
)

type Platform string

const (
	PlatformLeetCode      Platform = "leetcode"
	PlatformGeeksForGeeks Platform = "geeksforgeeks"
	PlatformCodeforces    Platform = "codeforces"
)

func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformLeetCode:
		return PlatformLeetCode, true
	case PlatformGeeksForGeeks, "gfg":
		return PlatformGeeksForGeeks, true
	case PlatformCodeforces:
		return PlatformCodeforces, true
	}
	return "", false
}

type Progress struct {
	Platform     Platform  `json:"platform"`
	Username     string    `json:"username"`
	TotalSolved  int       `json:"total_solved"`
	EasySolved   int       `json:"easy_solved,omitempty"`
	MediumSolved int       `json:"medium_solved,omitempty"`
	HardSolved   int       `json:"hard_solved,omitempty"`
	Streak       int       `json:"streak,omitempty"`
	Badges       []string  `json:"badges,omitempty"`
	Rating       int       `json:"rating,omitempty"`
	MaxRating    int       `json:"max_rating,omitempty"`
	LastFetch    time.Time `json:"last_fetch"`
}

type Endpoints struct {
	LeetCode   string
	GFG        string
	Codeforces string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		LeetCode:   "https://leetcode.com/graphql",
		GFG:        "https://auth.geeksforgeeks.org/api/v2/user",
		Codeforces: "https://codeforces.com/api/user.info",
	}
}

// Client fetches public solve counts. A nil *Progress with a nil error means
// the platform answered but has no such user (or answered non-2xx).
type Client interface {
	LeetCode(ctx context.Context, username string) (*Progress, error)
	GFG(ctx context.Context, username string) (*Progress, error)
	Codeforces(ctx context.Context, handle string) (*Progress, error)
}

type httpClient struct {
	endpoints Endpoints
	client    *http.Client
	log       logger.Logger
	now       func() time.Time
}

func NewClient(endpoints Endpoints, timeout time.Duration, log logger.Logger) Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &httpClient{
		endpoints: endpoints,
		client:    &http.Client{Timeout: timeout},
		log:       log,
		now:       time.Now,
	}
}

const leetCodeQuery = `query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    username
    submitStats { acSubmissionNum { difficulty count } }
    badges { displayName }
    streakCounter { currentStreak }
  }
}`

type leetCodeResponse struct {
	Data struct {
		MatchedUser *struct {
			SubmitStats struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
			Badges []struct {
				DisplayName string `json:"displayName"`
			} `json:"badges"`
			StreakCounter *struct {
				CurrentStreak int `json:"currentStreak"`
			} `json:"streakCounter"`
		} `json:"matchedUser"`
	} `json:"data"`
}

func (c *httpClient) LeetCode(ctx context.Context, username string) (*Progress, error) {
	body, err := json.Marshal(map[string]any{
		"query":     leetCodeQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints.LeetCode, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out leetCodeResponse
	ok, err := c.do(req, PlatformLeetCode, &out)
	if err != nil || !ok {
		return nil, err
	}

	u := out.Data.MatchedUser
	if u == nil {
		return nil, nil
	}

	p := &Progress{Platform: PlatformLeetCode, Username: username, LastFetch: c.now().UTC(), Badges: []string{}}
	for _, s := range u.SubmitStats.AcSubmissionNum {
		switch s.Difficulty {
		case "Easy":
			p.EasySolved = s.Count
		case "Medium":
			p.MediumSolved = s.Count
		case "Hard":
			p.HardSolved = s.Count
		}
	}
	p.TotalSolved = p.EasySolved + p.MediumSolved + p.HardSolved
	if u.StreakCounter != nil {
		p.Streak = u.StreakCounter.CurrentStreak
	}
	for _, b := range u.Badges {
		p.Badges = append(p.Badges, b.DisplayName)
	}
	return p, nil
}

// GFG only reports a total, so the difficulty split is an estimate
// (30/50/20), the same one the web dashboard shows.
func (c *httpClient) GFG(ctx context.Context, username string) (*Progress, error) {
	endpoint := strings.TrimRight(c.endpoints.GFG, "/") + "/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		ProblemsSolved int `json:"problemsSolved"`
	}
	ok, err := c.do(req, PlatformGeeksForGeeks, &out)
	if err != nil || !ok {
		return nil, err
	}

	n := out.ProblemsSolved
	return &Progress{
		Platform:     PlatformGeeksForGeeks,
		Username:     username,
		TotalSolved:  n,
		EasySolved:   n * 3 / 10,
		MediumSolved: n * 5 / 10,
		HardSolved:   n * 2 / 10,
		LastFetch:    c.now().UTC(),
	}, nil
}

func (c *httpClient) Codeforces(ctx context.Context, handle string) (*Progress, error) {
	q := url.Values{}
	q.Set("handles", handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoints.Codeforces+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Result []struct {
			Rating         int `json:"rating"`
			MaxRating      int `json:"maxRating"`
			ProblemsSolved int `json:"problemsSolved"`
		} `json:"result"`
	}
	ok, err := c.do(req, PlatformCodeforces, &out)
	if err != nil || !ok {
		return nil, err
	}
	if len(out.Result) == 0 {
		return nil, nil
	}

	u := out.Result[0]
	return &Progress{
		Platform:    PlatformCodeforces,
		Username:    handle,
		TotalSolved: u.ProblemsSolved,
		Rating:      u.Rating,
		MaxRating:   u.MaxRating,
		LastFetch:   c.now().UTC(),
	}, nil
}

// do returns false without an error when the platform answered non-2xx.
func (c *httpClient) do(req *http.Request, platform Platform, out any) (bool, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("[Practice] upstream returned non-2xx",
			zap.String("platform", string(platform)),
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(rb))),
		)
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("decode %s response: %w", platform, err)
	}
	return true, nil
}
