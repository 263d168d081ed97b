package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"codecraft/internal/domain/job"
	"codecraft/internal/domain/mentor"
	"codecraft/internal/domain/user"
	"codecraft/internal/infrastructure/github"
	"codecraft/internal/infrastructure/practice"
	"codecraft/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	gets     int
	sets     int
	patterns []string
	setErr   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, pattern)
	c.data = map[string][]byte{}
	return nil
}

type fakeNotifier struct {
	posted []job.Job
}

func (n *fakeNotifier) NotifyJobPosted(j job.Job) {
	n.posted = append(n.posted, j)
}

type fakeChat struct {
	configured bool
	reply      string
	err        error
	got        []mentor.ChatMessage
}

func (f *fakeChat) Configured() bool { return f.configured }

func (f *fakeChat) Chat(_ context.Context, messages []mentor.ChatMessage) (string, error) {
	f.got = messages
	return f.reply, f.err
}

type fakePracticeClient struct {
	progress *practice.Progress
	err      error
	calls    []practice.Platform
}

func (f *fakePracticeClient) LeetCode(context.Context, string) (*practice.Progress, error) {
	f.calls = append(f.calls, practice.PlatformLeetCode)
	return f.progress, f.err
}

func (f *fakePracticeClient) GFG(context.Context, string) (*practice.Progress, error) {
	f.calls = append(f.calls, practice.PlatformGeeksForGeeks)
	return f.progress, f.err
}

func (f *fakePracticeClient) Codeforces(context.Context, string) (*practice.Progress, error) {
	f.calls = append(f.calls, practice.PlatformCodeforces)
	return f.progress, f.err
}

type fakeGitHubClient struct {
	user    *github.User
	repos   []github.Repo
	commits []github.Commit
	err     error

	repoCalls   int
	commitCalls []string
}

func (f *fakeGitHubClient) User(context.Context, string) (*github.User, error) {
	return f.user, f.err
}

func (f *fakeGitHubClient) Repos(context.Context, string) ([]github.Repo, error) {
	f.repoCalls++
	return f.repos, f.err
}

func (f *fakeGitHubClient) RecentCommits(_ context.Context, owner, repo string) ([]github.Commit, error) {
	f.commitCalls = append(f.commitCalls, owner+"/"+repo)
	return f.commits, f.err
}

type failingJobRepo struct{}

var errBoom = errors.New("boom")

func (failingJobRepo) List(context.Context) ([]job.Job, error)           { return nil, errBoom }
func (failingJobRepo) FindByID(context.Context, string) (job.Job, error) { return job.Job{}, errBoom }
func (failingJobRepo) Create(context.Context, job.Job) (job.Job, error)  { return job.Job{}, errBoom }

func newSession(t *testing.T, store *repository.SessionStore, role user.Role) uuid.UUID {
	t.Helper()
	sess, err := store.CreateSession(context.Background(), "Test User", "", role)
	require.NoError(t, err)
	return sess.ID
}
