package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestSaveMessage() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		msg       domain.ContactMessage
		wantError string
	}{
		{
			name: "full message: ok",
			msg: domain.ContactMessage{
				Name:    gofakeit.Name(),
				Email:   gofakeit.Email(),
				Subject: gofakeit.ProductName(),
				Message: gofakeit.ProductDescription(),
			},
		},
		{
			name:      "empty message: error",
			msg:       domain.ContactMessage{Name: gofakeit.Name(), Email: gofakeit.Email()},
			wantError: "message is empty",
		},
		{
			name:      "malformed email: error",
			msg:       domain.ContactMessage{Email: "not-an-email", Message: "hello"},
			wantError: "email[not-an-email] is not valid",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.contacts.SaveMessage(ctx, tt.msg)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			var subject string
			err = suite.pool.QueryRow(ctx,
				"SELECT subject FROM contact_messages WHERE email = $1", tt.msg.Email).Scan(&subject)
			require.NoError(t, err)
			assert.Equal(t, tt.msg.Subject, subject)
		})
	}
}
