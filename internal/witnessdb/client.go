// Package witnessdb implements the witness attestation store.
package witnessdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"

	// register the sqlite driver
	_ "modernc.org/sqlite"
)

const (
	pkgName    = "github.com/xbridge-witness/xbwd/internal/witnessdb"
	driverName = "sqlite"
	dbFileName = "xbwd.db"
)

// schema is applied on every start and must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS xchain_transfer_attestations (
		chain_type TEXT NOT NULL,
		txn_hash TEXT NOT NULL,
		ledger_seq INTEGER NOT NULL,
		claim_id INTEGER NOT NULL,
		success INTEGER NOT NULL,
		delivered_amount TEXT NOT NULL,
		signing_account TEXT NOT NULL,
		signature BLOB NOT NULL,
		PRIMARY KEY (chain_type, claim_id)
	)`,
	`CREATE TABLE IF NOT EXISTS create_account_attestations (
		chain_type TEXT NOT NULL,
		txn_hash TEXT NOT NULL,
		ledger_seq INTEGER NOT NULL,
		create_count INTEGER NOT NULL,
		success INTEGER NOT NULL,
		delivered_amount TEXT NOT NULL,
		reward_amount TEXT NOT NULL,
		signing_account TEXT NOT NULL,
		signature BLOB NOT NULL,
		PRIMARY KEY (chain_type, create_count)
	)`,
}

// Client is a witness database client.
type Client struct {
	db *sqlx.DB
}

// AttestationCounts holds the number of stored attestations of each kind.
type AttestationCounts struct {
	XChainTransfers int `db:"xchain_transfers" json:"xchain_transfers"`
	CreateAccounts  int `db:"create_accounts" json:"create_accounts"`
}

// NewClient opens the witness database in dir, creating the directory and
// schema as required.
func NewClient(ctx context.Context, dir string) (*Client, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("couldn't create database directory: %v", err)
	}
	db, err := sqlx.ConnectContext(ctx, driverName, filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("couldn't open database: %v", err)
	}
	// sqlite serialises writers anyway
	db.SetMaxOpenConns(1)
	c := &Client{db: db}
	if err = c.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// NewClientFromDB wraps an existing database handle.
func NewClientFromDB(db *sql.DB) *Client {
	return &Client{db: sqlx.NewDb(db, driverName)}
}

// Migrate creates any missing tables.
func (c *Client) Migrate(ctx context.Context) error {
	ctx, span := otel.Tracer(pkgName).Start(ctx, "Migrate")
	defer span.End()
	for _, stmt := range schema {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("couldn't migrate schema: %v", err)
		}
	}
	return nil
}

// AttestationCounts returns the number of stored attestations.
func (c *Client) AttestationCounts(ctx context.Context) (*AttestationCounts, error) {
	// set up tracing
	ctx, span := otel.Tracer(pkgName).Start(ctx, "AttestationCounts")
	defer span.End()
	// run query
	counts := AttestationCounts{}
	err := c.db.GetContext(ctx, &counts, `
	SELECT
		(SELECT COUNT(*) FROM xchain_transfer_attestations) AS xchain_transfers,
		(SELECT COUNT(*) FROM create_account_attestations) AS create_accounts`)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// Close closes the database.
func (c *Client) Close() error {
	return c.db.Close()
}
