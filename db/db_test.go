package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGormConfig(t *testing.T) {
	t.Run(`unique violations surface as gorm.ErrDuplicatedKey`, func(t *testing.T) {
		require.True(t, gormConfig().TranslateError)
	})
}
