package repository

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"codecraft/internal/domain/hackathon"
	"codecraft/internal/domain/job"
	"codecraft/internal/domain/mentor"
	"codecraft/internal/domain/project"
	"codecraft/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithSession(t *testing.T) (*SessionStore, uuid.UUID) {
	t.Helper()
	s := NewSessionStore(time.Hour)
	sess, err := s.CreateSession(context.Background(), "Ada", "", user.RoleStudent)
	require.NoError(t, err)
	return s, sess.ID
}

func TestSessionStore_UnknownSession(t *testing.T) {
	s := NewSessionStore(time.Hour)
	_, err := s.ListApplications(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Sweep(t *testing.T) {
	s := NewSessionStore(time.Hour)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	ctx := context.Background()
	old, _ := s.CreateSession(ctx, "old", "", user.RoleStudent)

	s.now = func() time.Time { return base.Add(50 * time.Minute) }
	fresh, _ := s.CreateSession(ctx, "fresh", "", user.RoleStudent)

	s.now = func() time.Time { return base.Add(90 * time.Minute) }
	assert.Equal(t, 1, s.Sweep())

	_, err := s.GetSession(ctx, old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.GetSession(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestSessionStore_Applications(t *testing.T) {
	s, sid := newStoreWithSession(t)
	ctx := context.Background()

	app, err := s.CreateApplication(ctx, sid, job.Application{JobID: "1", JobTitle: "Frontend Engineer", Company: "TechCorp"})
	require.NoError(t, err)
	assert.Equal(t, job.StatusApplied, app.Status)
	assert.NotEqual(t, uuid.Nil, app.ID)

	_, err = s.CreateApplication(ctx, sid, job.Application{JobID: "1"})
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	found, ok, err := s.FindApplicationByJob(ctx, sid, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, app.ID, found.ID)

	updated, err := s.UpdateApplicationStatus(ctx, sid, app.ID, job.StatusInterview, "phone screen")
	require.NoError(t, err)
	assert.Equal(t, job.StatusInterview, updated.Status)
	assert.Equal(t, "phone screen", updated.Notes)

	updated, err = s.UpdateApplicationStatus(ctx, sid, app.ID, job.StatusOffer, "")
	require.NoError(t, err)
	assert.Equal(t, "phone screen", updated.Notes)

	_, err = s.UpdateApplicationStatus(ctx, sid, uuid.New(), job.StatusOffer, "")
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	require.NoError(t, s.DeleteApplication(ctx, sid, app.ID))
	list, err := s.ListApplications(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = s.CreateApplication(ctx, sid, job.Application{JobID: "1"})
	assert.NoError(t, err, "re-applying after withdrawal is allowed")
}

func TestSessionStore_ApplicationsAreSessionScoped(t *testing.T) {
	s, a := newStoreWithSession(t)
	b, _ := s.CreateSession(context.Background(), "Bob", "", user.RoleStudent)
	ctx := context.Background()

	_, err := s.CreateApplication(ctx, a, job.Application{JobID: "1"})
	require.NoError(t, err)
	_, err = s.CreateApplication(ctx, b.ID, job.Application{JobID: "1"})
	assert.NoError(t, err)
}

func TestSessionStore_Bookings(t *testing.T) {
	s, sid := newStoreWithSession(t)
	ctx := context.Background()

	b, err := s.CreateBooking(ctx, sid, mentor.Booking{MentorID: "mentor_1", MentorName: "Sarah Chen", Duration: 60, Topic: "System design"})
	require.NoError(t, err)
	assert.Equal(t, mentor.BookingScheduled, b.Status)

	done, err := s.CompleteBooking(ctx, sid, b.ID, "great")
	require.NoError(t, err)
	assert.Equal(t, mentor.BookingCompleted, done.Status)

	_, err = s.CompleteBooking(ctx, sid, uuid.New(), "")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.NoError(t, s.CancelBooking(ctx, sid, uuid.New()))
	require.NoError(t, s.CancelBooking(ctx, sid, b.ID))

	list, err := s.ListBookings(ctx, sid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mentor.BookingCancelled, list[0].Status)
}

func TestSessionStore_Hackathons(t *testing.T) {
	s, sid := newStoreWithSession(t)
	ctx := context.Background()

	h, err := s.CreateHackathon(ctx, sid, hackathon.Hackathon{Title: "Go Jam", Organizer: "Gophers", Tags: []string{"Go"}})
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)

	reg, err := s.Register(ctx, sid, hackathon.Registration{HackathonID: h.ID, TeamName: "nil pointers"})
	require.NoError(t, err)
	assert.Equal(t, hackathon.RegistrationRegistered, reg.Status)

	_, err = s.Register(ctx, sid, hackathon.Registration{HackathonID: h.ID})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	ok, err := s.IsRegistered(ctx, sid, h.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	created, err := s.ListCreatedHackathons(ctx)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, 1, created[0].Registrations)

	require.NoError(t, s.CancelRegistration(ctx, sid, h.ID))
	ok, err = s.IsRegistered(ctx, sid, h.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_ListCreatedHackathons_SameTimestamp(t *testing.T) {
	s := NewSessionStore(time.Hour)
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }
	ctx := context.Background()

	ids := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		sess, err := s.CreateSession(ctx, "organizer", "", user.RoleOrganizer)
		require.NoError(t, err)
		h, err := s.CreateHackathon(ctx, sess.ID, hackathon.Hackathon{Title: "Jam", Organizer: "Gophers"})
		require.NoError(t, err)
		ids = append(ids, h.ID)
	}
	sort.Strings(ids)

	for round := 0; round < 10; round++ {
		created, err := s.ListCreatedHackathons(ctx)
		require.NoError(t, err)
		got := make([]string, 0, len(created))
		for _, h := range created {
			got = append(got, h.ID)
		}
		require.Equal(t, ids, got, "round %d", round)
	}
}

func TestSessionStore_Projects(t *testing.T) {
	s, sid := newStoreWithSession(t)
	ctx := context.Background()

	first, err := s.CreateProject(ctx, sid, project.Project{Owner: "gopher", Repo: "one", Verified: true})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.SubmittedAt.IsZero())

	_, err = s.CreateProject(ctx, sid, project.Project{Owner: "gopher", Repo: "two"})
	require.NoError(t, err)

	list, err := s.ListProjects(ctx, sid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].Repo)
	assert.Equal(t, "one", list[1].Repo)

	_, err = s.ListProjects(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	s, sid := newStoreWithSession(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.CreateApplication(ctx, sid, job.Application{JobID: uuid.NewString()})
			_, _ = s.ListApplications(ctx, sid)
			s.Sweep()
		}(i)
	}
	wg.Wait()

	list, err := s.ListApplications(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
