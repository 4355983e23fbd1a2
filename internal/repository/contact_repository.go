package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelry-storefront/internal/db"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
)

type contactRepository struct {
	q *db.Queries
}

func NewContact(pool *pgxpool.Pool) (port.ContactRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &contactRepository{q: db.New(pool)}, nil
}

func (r *contactRepository) SaveMessage(ctx context.Context, msg domain.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	err := r.q.InsertContactMessage(ctx, db.InsertContactMessageParams{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	})
	if err != nil {
		return fmt.Errorf("q.InsertContactMessage: %w", err)
	}

	return nil
}
