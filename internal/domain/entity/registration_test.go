package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coremocks "github.com/menix-gg/arena-backend/mocks/port/core"
)

func TestNewRegistration(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid registration", func(t *testing.T) {
		registration, err := NewRegistration("r-1", "u-1", "t-1", 5000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "r-1", registration.ID)
		assert.Equal(t, "u-1", registration.UserID)
		assert.Equal(t, "t-1", registration.TournamentID)
		assert.Equal(t, int64(5000), registration.AmountPaid)
		assert.Equal(t, fixedTime, registration.CreatedAt)
	})

	t.Run("Free tournament registration", func(t *testing.T) {
		registration, err := NewRegistration("r-1", "u-1", "t-1", 0, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), registration.AmountPaid)
	})

	t.Run("Missing identifiers are rejected", func(t *testing.T) {
		testCases := []struct {
			name     string
			id       string
			userID   string
			tourID   string
			expected error
		}{
			{"empty registration id", "", "u-1", "t-1", errs.ErrInvalidRegistrationID},
			{"empty user id", "r-1", "", "t-1", errs.ErrInvalidUserID},
			{"empty tournament id", "r-1", "u-1", "", errs.ErrInvalidTournamentID},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				registration, err := NewRegistration(tc.id, tc.userID, tc.tourID, 5000, mockTime)

				assert.Equal(t, tc.expected, err)
				assert.Nil(t, registration)
			})
		}
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		registration, err := NewRegistration("r-1", "u-1", "t-1", -1, mockTime)

		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, registration)
	})
}
