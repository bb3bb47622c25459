package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		balance NUMERIC NOT NULL DEFAULT 0,
		referrer_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAddressTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE delivery_addresses (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		street TEXT NOT NULL,
		building TEXT,
		entrance TEXT,
		floor TEXT,
		apartment TEXT,
		comment TEXT,
		coords TEXT NOT NULL,
		is_default INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		address_id TEXT,
		amount NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		items TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createReferralTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE referrals (
		id TEXT PRIMARY KEY,
		ref_code TEXT UNIQUE NOT NULL,
		user_id TEXT NOT NULL,
		referred_user_id TEXT,
		date DATETIME NOT NULL,
		conditions TEXT,
		max_uses INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE referral_uses (
		id TEXT PRIMARY KEY,
		referral_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createCatalogTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE catalog (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		min_order TEXT NOT NULL,
		delivery_time TEXT NOT NULL,
		icon_name TEXT,
		description TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE items (
		id TEXT PRIMARY KEY,
		catalog_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price NUMERIC NOT NULL,
		ves TEXT NOT NULL,
		date DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE partners (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		image TEXT NOT NULL,
		cooperation_date DATETIME NOT NULL,
		description TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
