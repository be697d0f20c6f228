package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelens/pagelens/internal/domain"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, domain.DefaultConfig().Validate())
}

func TestConfigValidateRejectsZeroTimeouts(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.FetchTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = domain.DefaultConfig()
	cfg.NavigationTimeout = 0
	assert.Error(t, cfg.Validate())
}

func TestBudgetsValidateRejectsNonPositive(t *testing.T) {
	b := domain.DefaultBudgets()
	b.MaxLoadTimeMs = 0
	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_load_time_ms")

	b = domain.DefaultBudgets()
	b.MaxRequestCount = -1
	assert.Error(t, b.Validate())
}
