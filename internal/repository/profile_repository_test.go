package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestSaveProfile() {
	defer suite.deleteAll()

	dob := "1992-11-03"
	badDOB := "03/11/1992"

	tests := []struct {
		name      string
		ownerID   string
		profile   domain.Profile
		wantError string
	}{
		{
			name:    "full profile: ok",
			ownerID: gofakeit.UUID(),
			profile: randomProfile(&dob),
		},
		{
			name:    "without date of birth: ok",
			ownerID: gofakeit.UUID(),
			profile: randomProfile(nil),
		},
		{
			name:      "empty owner ID: error",
			ownerID:   "",
			profile:   randomProfile(nil),
			wantError: "ownerID is empty",
		},
		{
			name:      "malformed date of birth: error",
			ownerID:   gofakeit.UUID(),
			profile:   randomProfile(&badDOB),
			wantError: "date_of_birth[03/11/1992] is not valid",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			saved, err := suite.profiles.SaveProfile(ctx, tt.ownerID, tt.profile)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.profile, saved)

			got, err := suite.profiles.GetProfile(ctx, tt.ownerID)
			require.NoError(t, err)
			assert.Equal(t, tt.profile, got)
		})
	}
}

func (suite *repositorySuite) TestSaveProfileOverwrites() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	dob := "1985-01-30"

	_, err := suite.profiles.SaveProfile(ctx, ownerID, randomProfile(&dob))
	require.NoError(t, err)

	second := randomProfile(nil)
	_, err = suite.profiles.SaveProfile(ctx, ownerID, second)
	require.NoError(t, err)

	got, err := suite.profiles.GetProfile(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.Nil(t, got.DateOfBirth, "date of birth is cleared")
}

func (suite *repositorySuite) TestGetProfileNotFound() {
	t := suite.T()

	_, err := suite.profiles.GetProfile(t.Context(), gofakeit.UUID())
	require.ErrorIs(t, err, port.ErrNotFound)
}

func randomProfile(dob *string) domain.Profile {
	return domain.Profile{
		Name:        gofakeit.Name(),
		Email:       gofakeit.Email(),
		Phone:       gofakeit.Phone(),
		Address:     gofakeit.Street(),
		City:        gofakeit.City(),
		State:       gofakeit.State(),
		ZipCode:     gofakeit.Zip(),
		Country:     gofakeit.Country(),
		DateOfBirth: dob,
	}
}
