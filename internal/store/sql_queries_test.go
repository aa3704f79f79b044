// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
)

func queryTestDB(driver string) *DB {
	db := &DB{driver: driver, logger: logger.Nop()}
	if driver == config.DriverPostgres {
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	} else {
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return db
}

func TestLockBalanceQuery_ForUpdateOnlyOnPostgres(t *testing.T) {
	pg, _, err := queryTestDB(config.DriverPostgres).lockBalanceQuery(7).ToSql()
	require.NoError(t, err)
	assert.Contains(t, pg, "FOR UPDATE")
	assert.Contains(t, pg, "$1")

	lite, args, err := queryTestDB(config.DriverSQLite).lockBalanceQuery(7).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, lite, "FOR UPDATE")
	assert.Contains(t, lite, "user_id = ?")
	assert.Equal(t, []any{int64(7)}, args)
}

func TestInsertTransferQuery(t *testing.T) {
	db := queryTestDB(config.DriverPostgres)

	t.Run("with idempotency key", func(t *testing.T) {
		req := models.TransferRequest{FromUserID: 1, ToUserID: 2, Amount: decimal.RequireFromString("25"), IdempotencyKey: "k-1"}
		query, args, err := db.insertTransferQuery(req, "fp", fixedTime).ToSql()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(query, "INSERT INTO transfers"))
		assert.Contains(t, query, "RETURNING transfer_id")
		require.Len(t, args, 8)
		assert.Equal(t, "Send", args[0])
		assert.Equal(t, "Approved", args[1])
		assert.Equal(t, "25.00", args[4])
		assert.Equal(t, "k-1", args[5])
	})

	t.Run("without idempotency key stores NULL", func(t *testing.T) {
		req := models.TransferRequest{FromUserID: 1, ToUserID: 2, Amount: decimal.RequireFromString("1.5")}
		_, args, err := db.insertTransferQuery(req, "fp", fixedTime).ToSql()
		require.NoError(t, err)
		assert.Nil(t, args[5])
		assert.Equal(t, "1.50", args[4])
	})
}

func TestTransferQueries_RestrictToParticipant(t *testing.T) {
	db := queryTestDB(config.DriverPostgres)

	query, args, err := db.getTransferForUserQuery(5, 3001).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "JOIN users uf ON uf.user_id = t.user_from")
	assert.Contains(t, query, "JOIN users ut ON ut.user_id = t.user_to")
	assert.Contains(t, query, "t.transfer_id = $1")
	assert.Contains(t, query, "(t.user_from = $2 OR t.user_to = $3)")
	assert.Equal(t, []any{int64(3001), int64(5), int64(5)}, args)

	list, _, err := db.listTransfersForUserQuery(5).ToSql()
	require.NoError(t, err)
	assert.Contains(t, list, "ORDER BY t.transfer_id")
}

func TestListUsersExceptQuery(t *testing.T) {
	query, args, err := queryTestDB(config.DriverSQLite).listUsersExceptQuery(1001).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, username FROM users WHERE user_id <> ? ORDER BY user_id", query)
	assert.Equal(t, []any{int64(1001)}, args)
}
