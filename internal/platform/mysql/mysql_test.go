package mysql

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestNormalizeDSN(t *testing.T) {
	out, err := normalizeDSN("root:secret@tcp(db:3306)/tracker?charset=utf8mb4&loc=Local")
	require.NoError(t, err)

	cfg, err := mysqldriver.ParseDSN(out)
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, time.UTC, cfg.Loc)
	assert.Equal(t, "tracker", cfg.DBName)
	assert.Equal(t, "db:3306", cfg.Addr)
	assert.Equal(t, "root", cfg.User)
}

func TestNormalizeDSN_Invalid(t *testing.T) {
	_, err := normalizeDSN("tcp(db:3306")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse mysql dsn failed")
}

func TestGormConfig(t *testing.T) {
	cfg := GormConfig(gormlogger.Silent)

	assert.True(t, cfg.TranslateError)
	assert.False(t, cfg.SkipDefaultTransaction)
	assert.NotNil(t, cfg.Logger)
}
