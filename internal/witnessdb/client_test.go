package witnessdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alecthomas/assert/v2"
	"github.com/xbridge-witness/xbwd/internal/witnessdb"
)

func TestAttestationCounts(t *testing.T) {
	var testCases = map[string]struct {
		queryErr    error
		transfers   int
		creates     int
		expectError bool
	}{
		"empty":       {},
		"populated":   {transfers: 12, creates: 3},
		"query error": {queryErr: errors.New("disk I/O error"), expectError: true},
	}
	for name, tc := range testCases {
		t.Run(name, func(tt *testing.T) {
			// set up mocks
			mockDB, mock, err := sqlmock.New()
			assert.NoError(tt, err, name)
			expect := mock.ExpectQuery(`SELECT (.+) AS xchain_transfers, (.+) AS create_accounts`)
			if tc.queryErr != nil {
				expect.WillReturnError(tc.queryErr)
			} else {
				expect.WillReturnRows(
					sqlmock.NewRows([]string{"xchain_transfers", "create_accounts"}).
						AddRow(tc.transfers, tc.creates))
			}
			// execute expected database operations
			db := witnessdb.NewClientFromDB(mockDB)
			counts, err := db.AttestationCounts(context.Background())
			if tc.expectError {
				assert.Error(tt, err, name)
			} else {
				assert.NoError(tt, err, name)
				assert.Equal(tt, tc.transfers, counts.XChainTransfers, name)
				assert.Equal(tt, tc.creates, counts.CreateAccounts, name)
			}
			// check expectations
			assert.NoError(tt, mock.ExpectationsWereMet(), name)
		})
	}
}

func TestMigrate(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS xchain_transfer_attestations`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS create_account_attestations`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	db := witnessdb.NewClientFromDB(mockDB)
	assert.NoError(t, db.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir() + "/nested/db"
	db, err := witnessdb.NewClient(ctx, dir)
	assert.NoError(t, err)
	counts, err := db.AttestationCounts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, witnessdb.AttestationCounts{}, *counts)
	assert.NoError(t, db.Close())
	// reopening applies the schema again
	db, err = witnessdb.NewClient(ctx, dir)
	assert.NoError(t, err)
	assert.NoError(t, db.Close())
}
