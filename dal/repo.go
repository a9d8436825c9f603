package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/spaolacci/murmur3"
	"lamia/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks lamia/dal IRepo

type IRepo interface {
	InitUpdateDb()

	AddAccount(acct *Account) (int64, error)
	GetAccount(id int64) (*Account, error)

	AddActorIfNotExist(actor *Actor, privKey string) (isNew bool, id int64, err error)
	GetActorById(id int64) (*Actor, error)
	GetActorByUri(uri string) (*Actor, error)
	GetLocalActorByHandle(handle string) (*Actor, error)
	GetPrivKey(actorId int64) (string, error)

	AddIdentity(identity *Identity) (int64, error)
	AddBlog(blog *Blog) (int64, error)
	GetAccountIdForActor(actorId int64) (int64, error)
	GetActorIdsForAccount(accountId int64) ([]int64, error)

	GetFollowEdge(sourceActorId, targetActorId int64) (*FollowEdge, error)
	UpsertFollowEdgeIfStatus(edge *FollowEdge, expected FollowStatus) (bool, error)
	DeleteFollowEdgeIfStatus(sourceActorId, targetActorId int64, expected FollowStatus) (bool, error)
	CountFollowEdges(status FollowStatus) (int, error)
	ApplyAccountBlock(accountId int64, accountActorIds []int64, targetActorId int64, when time.Time) (isNew bool, err error)

	GetBlockEdge(accountId, targetActorId int64) (*BlockEdge, error)
	AddMuteEdgeIfNew(accountId, targetActorId int64, when time.Time) (isNew bool, err error)
	GetMuteEdge(accountId, targetActorId int64) (*MuteEdge, error)
	DeleteMuteEdge(accountId, targetActorId int64) error

	AddFilterRule(rule *FilterRule) (int64, error)
	GetFilterRules(accountId int64) ([]*FilterRule, error)
	DeleteFilterRule(accountId, ruleId int64) error
	DeleteExpiredFilterRules(now time.Time) (int, error)
}

// UriHash is the lookup key for actors; the unique index is on
// (uri_hash, uri) so hash collisions stay harmless.
func UriHash(uri string) int64 {
	return int64(murmur3.Sum64([]byte(uri)))
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func isDupeKeyErr(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			return true
		}
		// Primary key collisions report a different extended code
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 1555 {
			return true
		}
	}
	return false
}

func (repo *Repo) AddAccount(acct *Account) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO accounts
    	(created_at, email, password_hash, primary_identity_id, approval_for_follows, banned)
		VALUES(?, ?, ?, ?, ?, ?)`,
		acct.CreatedAt, acct.Email, acct.PasswordHash, acct.PrimaryIdentityId,
		acct.ApprovalForFollows, acct.Banned)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (repo *Repo) GetAccount(id int64) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(
		`SELECT id, created_at, email, password_hash, primary_identity_id, approval_for_follows, banned
		FROM accounts WHERE id=?`, id)
	var err error
	var res Account
	err = row.Scan(&res.Id, &res.CreatedAt, &res.Email, &res.PasswordHash, &res.PrimaryIdentityId,
		&res.ApprovalForFollows, &res.Banned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) AddActorIfNotExist(actor *Actor, privKey string) (isNew bool, id int64, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	actor.UriHash = UriHash(actor.Uri)
	var res sql.Result
	res, err = repo.db.Exec(`INSERT INTO actors
    	(created_at, uri, uri_hash, handle, host, is_local, inbox, shared_inbox, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		actor.CreatedAt, actor.Uri, actor.UriHash, actor.Handle, actor.Host, actor.IsLocal,
		actor.Inbox, actor.SharedInbox, actor.PubKey, privKey)
	if err == nil {
		id, err = res.LastInsertId()
		return
	}
	// Duplicate key: actor with this URI already exists
	if isDupeKeyErr(err) {
		isNew = false
		var existing *Actor
		if existing, err = repo.getActorByUri(actor.Uri); err != nil {
			return
		}
		id = existing.Id
		return
	}
	return
}

const actorCols = `id, created_at, uri, uri_hash, handle, host, is_local, inbox, shared_inbox, pubkey`

func scanActor(row *sql.Row) (*Actor, error) {
	var res Actor
	err := row.Scan(&res.Id, &res.CreatedAt, &res.Uri, &res.UriHash, &res.Handle, &res.Host,
		&res.IsLocal, &res.Inbox, &res.SharedInbox, &res.PubKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) GetActorById(id int64) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+actorCols+` FROM actors WHERE id=?`, id)
	return scanActor(row)
}

func (repo *Repo) GetActorByUri(uri string) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getActorByUri(uri)
}

func (repo *Repo) getActorByUri(uri string) (*Actor, error) {
	row := repo.db.QueryRow(`SELECT `+actorCols+` FROM actors WHERE uri_hash=? AND uri=?`,
		UriHash(uri), uri)
	return scanActor(row)
}

func (repo *Repo) GetLocalActorByHandle(handle string) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+actorCols+` FROM actors WHERE is_local=1 AND handle=?`, handle)
	return scanActor(row)
}

func (repo *Repo) GetPrivKey(actorId int64) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM actors WHERE id=?`, actorId)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) AddIdentity(identity *Identity) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO identities
    	(account_id, actor_id, user_name, display_name, status, created_at, last_updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		identity.AccountId, identity.ActorId, identity.UserName, identity.DisplayName,
		identity.Status, identity.CreatedAt, identity.LastUpdatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (repo *Repo) AddBlog(blog *Blog) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO blogs
    	(account_id, actor_id, title, status, created_at, last_updated_at)
		VALUES(?, ?, ?, ?, ?, ?)`,
		blog.AccountId, blog.ActorId, blog.Title, blog.Status, blog.CreatedAt, blog.LastUpdatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetAccountIdForActor returns the account owning the actor through an
// identity or blog, or 0 when the actor is remote / unowned.
func (repo *Repo) GetAccountIdForActor(actorId int64) (int64, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT account_id FROM identities WHERE actor_id=? AND status<>2
		UNION SELECT account_id FROM blogs WHERE actor_id=? AND status<>2 LIMIT 1`,
		actorId, actorId)
	var accountId int64
	err := row.Scan(&accountId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		} else {
			return 0, err
		}
	}
	return accountId, nil
}

func (repo *Repo) GetActorIdsForAccount(accountId int64) ([]int64, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT actor_id FROM identities WHERE account_id=? AND status<>2
		UNION SELECT actor_id FROM blogs WHERE account_id=? AND status<>2`,
		accountId, accountId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetFollowEdge(sourceActorId, targetActorId int64) (*FollowEdge, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getFollowEdge(sourceActorId, targetActorId)
}

func (repo *Repo) getFollowEdge(sourceActorId, targetActorId int64) (*FollowEdge, error) {
	row := repo.db.QueryRow(
		`SELECT source_actor_id, target_actor_id, status, request_activity_id, created_at, last_updated_at
		FROM follows WHERE source_actor_id=? AND target_actor_id=?`,
		sourceActorId, targetActorId)
	var res FollowEdge
	err := row.Scan(&res.SourceActorId, &res.TargetActorId, &res.Status, &res.RequestActivityId,
		&res.CreatedAt, &res.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

// UpsertFollowEdgeIfStatus writes the edge only if the currently stored
// status matches expected (FollowNone also matches a missing row). This is
// the single serialization point for concurrent writers on the same ordered
// pair; a losing writer gets false back and no change is made.
func (repo *Repo) UpsertFollowEdgeIfStatus(edge *FollowEdge, expected FollowStatus) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	current, err := repo.getFollowEdge(edge.SourceActorId, edge.TargetActorId)
	if err != nil {
		return false, err
	}
	currentStatus := FollowNone
	if current != nil {
		currentStatus = current.Status
	}
	if currentStatus != expected {
		return false, nil
	}

	if current == nil {
		_, err = repo.db.Exec(`INSERT INTO follows
	    	(source_actor_id, target_actor_id, status, request_activity_id, created_at, last_updated_at)
			VALUES(?, ?, ?, ?, ?, ?)`,
			edge.SourceActorId, edge.TargetActorId, edge.Status, edge.RequestActivityId,
			edge.CreatedAt, edge.LastUpdatedAt)
	} else {
		_, err = repo.db.Exec(`UPDATE follows SET status=?, request_activity_id=?, last_updated_at=?
			WHERE source_actor_id=? AND target_actor_id=?`,
			edge.Status, edge.RequestActivityId, edge.LastUpdatedAt,
			edge.SourceActorId, edge.TargetActorId)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteFollowEdgeIfStatus removes the edge only while it is still in the
// expected state; one conditional statement, so rejection and unfollow stay
// atomic against concurrent transitions.
func (repo *Repo) DeleteFollowEdgeIfStatus(sourceActorId, targetActorId int64,
	expected FollowStatus) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM follows WHERE source_actor_id=? AND target_actor_id=? AND status=?`,
		sourceActorId, targetActorId, expected)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n != 0, err
}

func (repo *Repo) CountFollowEdges(status FollowStatus) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM follows WHERE status=?`, status)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ApplyAccountBlock records the account-level block and forces every follow
// edge between the account's actors and the target, in both directions, into
// the blocked state. One transaction; reapplying is a no-op.
func (repo *Repo) ApplyAccountBlock(accountId int64, accountActorIds []int64, targetActorId int64,
	when time.Time) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var tx *sql.Tx
	if tx, err = repo.db.Begin(); err != nil {
		return
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	isNew = true
	_, err = tx.Exec(`INSERT INTO blocks (account_id, target_actor_id, created_at) VALUES(?, ?, ?)`,
		accountId, targetActorId, when)
	if err != nil {
		if !isDupeKeyErr(err) {
			return
		}
		isNew = false
		err = nil
	}

	if len(accountActorIds) != 0 {
		params := make([]any, 0, 2*len(accountActorIds)+4)
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(accountActorIds)), ",")
		query := fmt.Sprintf(`UPDATE follows SET status=?, last_updated_at=?
			WHERE (source_actor_id IN (%s) AND target_actor_id=?)
			   OR (source_actor_id=? AND target_actor_id IN (%s))`,
			placeholders, placeholders)
		params = append(params, FollowBlocked, when)
		for _, id := range accountActorIds {
			params = append(params, id)
		}
		params = append(params, targetActorId, targetActorId)
		for _, id := range accountActorIds {
			params = append(params, id)
		}
		if _, err = tx.Exec(query, params...); err != nil {
			return
		}
	}

	err = tx.Commit()
	return
}

func (repo *Repo) GetBlockEdge(accountId, targetActorId int64) (*BlockEdge, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT account_id, target_actor_id, created_at
		FROM blocks WHERE account_id=? AND target_actor_id=?`, accountId, targetActorId)
	var res BlockEdge
	err := row.Scan(&res.AccountId, &res.TargetActorId, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) AddMuteEdgeIfNew(accountId, targetActorId int64, when time.Time) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO mutes (account_id, target_actor_id, created_at) VALUES(?, ?, ?)`,
		accountId, targetActorId, when)
	if err == nil {
		return
	}
	// Duplicate key: mute already in place
	if isDupeKeyErr(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) GetMuteEdge(accountId, targetActorId int64) (*MuteEdge, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT account_id, target_actor_id, created_at
		FROM mutes WHERE account_id=? AND target_actor_id=?`, accountId, targetActorId)
	var res MuteEdge
	err := row.Scan(&res.AccountId, &res.TargetActorId, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) DeleteMuteEdge(accountId, targetActorId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM mutes WHERE account_id=? AND target_actor_id=?`,
		accountId, targetActorId)
	return err
}

func (repo *Repo) AddFilterRule(rule *FilterRule) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO filters
    	(account_id, query, hide, minimize, scope_actor_id, created_at, duration_sec, forever)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		rule.AccountId, rule.Query, rule.Hide, rule.Minimize, rule.ScopeActorId,
		rule.CreatedAt, rule.DurationSec, rule.Forever)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (repo *Repo) GetFilterRules(accountId int64) ([]*FilterRule, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, account_id, query, hide, minimize, scope_actor_id,
		created_at, duration_sec, forever
		FROM filters WHERE account_id=? ORDER BY id ASC`, accountId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*FilterRule, 0)
	for rows.Next() {
		fr := FilterRule{}
		err = rows.Scan(&fr.Id, &fr.AccountId, &fr.Query, &fr.Hide, &fr.Minimize, &fr.ScopeActorId,
			&fr.CreatedAt, &fr.DurationSec, &fr.Forever)
		if err != nil {
			return nil, err
		}
		res = append(res, &fr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) DeleteFilterRule(accountId, ruleId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM filters WHERE account_id=? AND id=?`, accountId, ruleId)
	return err
}

// DeleteExpiredFilterRules is the physical half of lazy expiry: reads treat
// expired rules as absent, this sweep actually removes them.
func (repo *Repo) DeleteExpiredFilterRules(now time.Time) (int, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(
		`DELETE FROM filters WHERE forever=0 AND datetime(created_at, '+' || duration_sec || ' seconds') < datetime(?)`,
		now)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
