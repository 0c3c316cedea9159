package seed

import (
	"testing"

	"github.com/axelse03-gif/reybanpac/migrations"
	"github.com/axelse03-gif/reybanpac/models"
	"github.com/axelse03-gif/reybanpac/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeed_IsIdempotent(t *testing.T) {
	db, err := utils.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, migrations.MigrateAll(db))

	logger := zap.NewNop()
	for i := 0; i < 2; i++ {
		require.NoError(t, SeedReferrals(db, logger))
		require.NoError(t, SeedNews(db, logger))
	}

	var referrals []models.Referral
	require.NoError(t, db.Order("id").Find(&referrals).Error)
	assert.Equal(t, MockReferrals, referrals)

	var news int64
	require.NoError(t, db.Model(&models.NewsItem{}).Count(&news).Error)
	assert.EqualValues(t, len(MockNews), news)
}
