package journal

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Delivery is one processed webhook, recorded for operations. Only command
// and outcome are stored; the computed group membership never is.
type Delivery struct {
	RequestID  string
	ChatID     int64
	Command    string
	Outcome    string
	GroupCount int
	Elapsed    time.Duration
}

// Journal records webhook deliveries.
type Journal interface {
	Record(ctx context.Context, d Delivery) error
	Close() error
}

// Open connects to Postgres when a DSN is configured, otherwise returns a
// noop journal so the bot runs without a database.
func Open(dsn string) Journal {
	if dsn == "" {
		log.Printf("journal disabled: empty dsn")
		return noopJournal{}
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Printf("journal disabled: %v", err)
		return noopJournal{}
	}

	if err := migrate(db); err != nil {
		log.Printf("journal disabled: %v", err)
		_ = db.Close()
		return noopJournal{}
	}

	log.Printf("journal connected")
	return &pgJournal{db: db}
}

func migrate(db *sqlx.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS webhook_deliveries (
        id SERIAL PRIMARY KEY,
        request_id TEXT NOT NULL,
        chat_id BIGINT NOT NULL,
        command TEXT NOT NULL,
        outcome TEXT NOT NULL,
        group_count INT NOT NULL DEFAULT 0,
        elapsed_ms BIGINT NOT NULL DEFAULT 0,
        created_at TIMESTAMPTZ DEFAULT NOW()
    );`)
	return err
}

type pgJournal struct {
	db *sqlx.DB
}

func (j *pgJournal) Record(ctx context.Context, d Delivery) error {
	_, err := j.db.ExecContext(ctx, `INSERT INTO webhook_deliveries
        (request_id, chat_id, command, outcome, group_count, elapsed_ms)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		d.RequestID, d.ChatID, d.Command, d.Outcome, d.GroupCount, d.Elapsed.Milliseconds())
	return err
}

func (j *pgJournal) Close() error {
	return j.db.Close()
}

type noopJournal struct{}

func (noopJournal) Record(ctx context.Context, d Delivery) error {
	return nil
}

func (noopJournal) Close() error {
	return nil
}
