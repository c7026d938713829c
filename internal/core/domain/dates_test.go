package domain_test

import (
	"testing"
	"time"

	"github.com/RAVEN850972/cam/internal/apperrors"
	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePeriod_EmptyDefaultsToCurrentMonth(t *testing.T) {
	period, err := domain.NormalizePeriod("")

	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(domain.PeriodLayout), period)
}

func TestNormalizePeriod_ValidKeyPassesThrough(t *testing.T) {
	period, err := domain.NormalizePeriod("2026-07")

	require.NoError(t, err)
	assert.Equal(t, "2026-07", period)
}

func TestNormalizePeriod_MalformedFailsClosed(t *testing.T) {
	for _, bad := range []string{"07-2026", "2026/07", "2026-13", "july"} {
		_, err := domain.NormalizePeriod(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "period %q", bad)
	}
}

func TestValidateDateTime_AcceptsBothLayouts(t *testing.T) {
	assert.NoError(t, domain.ValidateDateTime("2026-07-15"))
	assert.NoError(t, domain.ValidateDateTime("2026-07-15 14:30"))
	assert.ErrorIs(t, domain.ValidateDateTime("15.07.2026"), apperrors.ErrValidation)
}

func TestValidateDate_RejectsTimestamps(t *testing.T) {
	assert.NoError(t, domain.ValidateDate("2026-07-15"))
	assert.ErrorIs(t, domain.ValidateDate("2026-07-15 14:30"), apperrors.ErrValidation)
}

func TestInPeriod_PrefixMatch(t *testing.T) {
	assert.True(t, domain.InPeriod("2026-07-15", "2026-07"))
	assert.True(t, domain.InPeriod("2026-07-15 14:30", "2026-07"))
	assert.False(t, domain.InPeriod("2026-08-01", "2026-07"))
	assert.False(t, domain.InPeriod("2026", "2026-07"))
}
