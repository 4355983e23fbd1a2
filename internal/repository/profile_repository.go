package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelry-storefront/internal/db"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
)

const dateLayout = time.DateOnly

type profileRepository struct {
	q *db.Queries
}

func NewProfile(pool *pgxpool.Pool) (port.ProfileRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &profileRepository{q: db.New(pool)}, nil
}

func (r *profileRepository) GetProfile(ctx context.Context, ownerID string) (domain.Profile, error) {
	if ownerID == "" {
		return domain.Profile{}, fmt.Errorf("ownerID is empty")
	}

	row, err := r.q.GetProfile(ctx, ownerID)
	if err != nil {
		return domain.Profile{}, notFound("q.GetProfile", err)
	}

	return mapProfileToDomain(row), nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, ownerID string, p domain.Profile) (domain.Profile, error) {
	if ownerID == "" {
		return domain.Profile{}, fmt.Errorf("ownerID is empty")
	}

	if err := p.Validate(); err != nil {
		return domain.Profile{}, err
	}

	var dob *time.Time
	if p.DateOfBirth != nil && *p.DateOfBirth != "" {
		parsed, err := time.Parse(dateLayout, *p.DateOfBirth)
		if err != nil {
			return domain.Profile{}, fmt.Errorf("time.Parse: %w", err)
		}
		dob = &parsed
	}

	row, err := r.q.UpsertProfile(ctx, db.UpsertProfileParams{
		OwnerID:     ownerID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
		Country:     p.Country,
		DateOfBirth: dob,
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("q.UpsertProfile: %w", err)
	}

	return mapProfileToDomain(row), nil
}

func mapProfileToDomain(row db.Profile) domain.Profile {
	p := domain.Profile{
		Name:    row.Name,
		Email:   row.Email,
		Phone:   row.Phone,
		Address: row.Address,
		City:    row.City,
		State:   row.State,
		ZipCode: row.ZipCode,
		Country: row.Country,
	}

	if row.DateOfBirth != nil {
		dob := row.DateOfBirth.Format(dateLayout)
		p.DateOfBirth = &dob
	}

	return p
}
