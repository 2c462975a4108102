package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	t.Run("nil connection", func(t *testing.T) {
		_, err := NewDB(nil, DriverPostgres, logger.Nop())
		require.ErrorIs(t, err, ErrNilDB)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewDB(conn, "oracle", logger.Nop())
		require.ErrorIs(t, err, ErrUnknownDriver)
	})

	t.Run("classifier per driver", func(t *testing.T) {
		pg, err := NewDB(conn, DriverPostgres, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &PostgresErrorClassifier{}, pg.errorClassificator)
		assert.Equal(t, DriverPostgres, pg.Driver())

		lite, err := NewDB(conn, DriverSQLite, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &SQLiteErrorClassifier{}, lite.errorClassificator)
	})
}

func TestNewConnect_UnknownDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewStoragesFromDB(t *testing.T) {
	db, mock := newMockDB(t, DriverPostgres)

	s := NewStoragesFromDB(db, logger.Nop())
	assert.NotNil(t, s.CustomerRepository)
	assert.NotNil(t, s.MenuRepository)
	assert.NotNil(t, s.OrderRepository)
	assert.NotNil(t, s.HealthRepository)

	mock.ExpectClose()
	require.NoError(t, s.Close())
}
