package usecase

import (
	"context"
	"strings"

	"codecraft/internal/catalog"
	"codecraft/internal/domain/hackathon"
	"codecraft/internal/pkg/sanitize"
	"codecraft/internal/repository"

	"github.com/google/uuid"
)

type HackathonInput struct {
	Title       string
	Organizer   string
	Date        string
	Prizes      string
	Description string
	Tags        []string
}

type RegistrationInput struct {
	TeamName    string
	TeamMembers []string
}

// HackathonListing is a hackathon with the caller's registration flag.
type HackathonListing struct {
	hackathon.Hackathon
	Registered bool `json:"registered"`
}

type HackathonUsecase interface {
	List(ctx context.Context, sessionID uuid.UUID) ([]HackathonListing, error)
	Create(ctx context.Context, sessionID uuid.UUID, in HackathonInput) (hackathon.Hackathon, error)
	Register(ctx context.Context, sessionID uuid.UUID, hackathonID string, in RegistrationInput) (hackathon.Registration, error)
	Cancel(ctx context.Context, sessionID uuid.UUID, hackathonID string) error
	Registrations(ctx context.Context, sessionID uuid.UUID) ([]hackathon.Registration, error)
}

type Hackathon struct {
	store repository.HackathonRepository
}

func NewHackathonUsecase(store repository.HackathonRepository) *Hackathon {
	return &Hackathon{store: store}
}

func (u *Hackathon) all(ctx context.Context) ([]hackathon.Hackathon, error) {
	created, err := u.store.ListCreatedHackathons(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return append(catalog.Hackathons(), created...), nil
}

func (u *Hackathon) List(ctx context.Context, sessionID uuid.UUID) ([]HackathonListing, error) {
	hs, err := u.all(ctx)
	if err != nil {
		return nil, err
	}
	regs, err := u.store.ListRegistrations(ctx, sessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	mine := make(map[string]bool, len(regs))
	for _, r := range regs {
		mine[r.HackathonID] = true
	}

	out := make([]HackathonListing, 0, len(hs))
	for _, h := range hs {
		out = append(out, HackathonListing{Hackathon: h, Registered: mine[h.ID]})
	}
	return out, nil
}

func (u *Hackathon) Create(ctx context.Context, sessionID uuid.UUID, in HackathonInput) (hackathon.Hackathon, error) {
	h := hackathon.Hackathon{
		Title:       sanitize.Input(in.Title),
		Organizer:   sanitize.Input(in.Organizer),
		Date:        sanitize.Input(in.Date),
		Prizes:      sanitize.Input(in.Prizes),
		Description: sanitize.Input(in.Description),
		Tags:        sanitize.Strings(in.Tags),
		Image:       catalog.DefaultHackathonImage,
	}
	if h.Title == "" || h.Organizer == "" || h.Date == "" {
		return hackathon.Hackathon{}, ErrInvalidInput
	}

	created, err := u.store.CreateHackathon(ctx, sessionID, h)
	if err != nil {
		return hackathon.Hackathon{}, mapStoreError(err)
	}
	return created, nil
}

func (u *Hackathon) Register(ctx context.Context, sessionID uuid.UUID, hackathonID string, in RegistrationInput) (hackathon.Registration, error) {
	hackathonID = strings.TrimSpace(hackathonID)
	if hackathonID == "" {
		return hackathon.Registration{}, ErrInvalidInput
	}

	hs, err := u.all(ctx)
	if err != nil {
		return hackathon.Registration{}, err
	}
	found := false
	for _, h := range hs {
		if h.ID == hackathonID {
			found = true
			break
		}
	}
	if !found {
		return hackathon.Registration{}, ErrNotFound
	}

	reg, err := u.store.Register(ctx, sessionID, hackathon.Registration{
		HackathonID: hackathonID,
		TeamName:    sanitize.Input(in.TeamName),
		TeamMembers: sanitize.Strings(in.TeamMembers),
	})
	if err != nil {
		return hackathon.Registration{}, mapStoreError(err)
	}
	return reg, nil
}

func (u *Hackathon) Cancel(ctx context.Context, sessionID uuid.UUID, hackathonID string) error {
	hackathonID = strings.TrimSpace(hackathonID)
	if hackathonID == "" {
		return ErrInvalidInput
	}
	return mapStoreError(u.store.CancelRegistration(ctx, sessionID, hackathonID))
}

func (u *Hackathon) Registrations(ctx context.Context, sessionID uuid.UUID) ([]hackathon.Registration, error) {
	regs, err := u.store.ListRegistrations(ctx, sessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return regs, nil
}
