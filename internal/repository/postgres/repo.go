package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/config"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/model"
)

type ctxKey string

const keyTx = ctxKey("sqlx_tx")

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	nickname TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS messages (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (id),
	text TEXT NOT NULL,
	sentiment TEXT NOT NULL DEFAULT 'Unknown',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at DESC);
`

// conn is satisfied by both *sqlx.DB and *sqlx.Tx.
type conn interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		log.Fatal("error create tables: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// WithTx runs cb inside a transaction carried through the context; every
// repository call made with that context joins the same transaction.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyTx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) Chk(ctx context.Context) conn {
	if tx, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

// GetOrCreateUser resolves a nickname to its user row, creating it on first
// use. The upsert makes concurrent first posts from the same nickname converge
// on a single row.
func (r *Repository) GetOrCreateUser(ctx context.Context, nickname string) (*model.User, error) {
	query, args, err := sq.Insert("users").
		Columns("nickname").
		Values(nickname).
		Suffix("ON CONFLICT (nickname) DO UPDATE SET nickname = EXCLUDED.nickname RETURNING id, nickname, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %v", err)
	}

	return &user, nil
}

func (r *Repository) SaveMessage(ctx context.Context, userID int64, text, sentiment string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("user_id", "text", "sentiment").
		Values(userID, text, sentiment).
		Suffix("RETURNING id, user_id, text, sentiment, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	return &message, nil
}

func (r *Repository) GetRecentMessages(ctx context.Context, limit int32) (*model.MessagePreviewList, error) {
	query, args, err := sq.Select(
		"m.id",
		"m.text",
		"m.sentiment",
	).
		Column(sq.Expr("COALESCE(u.nickname, ?) AS nickname", model.NicknameAnonymous)).
		Column("m.created_at").
		From("messages m").
		LeftJoin("users u ON u.id = m.user_id").
		OrderBy("m.created_at DESC", "m.id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessagePreviewList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return &messages, nil
}
