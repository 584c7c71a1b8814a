package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// PostgresStore persists the snapshot in four tables. The profile and
// settings tables hold at most one row each; cravings and chat messages are
// append-only.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStore(dsn string, logger internal.Logger) (*PostgresStore, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	s := &PostgresStore{pool: pool, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			quit_instant TIMESTAMPTZ NOT NULL,
			cigarettes_per_day DOUBLE PRECISION NOT NULL,
			price_per_pack DOUBLE PRECISION NOT NULL,
			cigarettes_per_pack INT NOT NULL,
			currency TEXT NOT NULL,
			goal_name TEXT,
			goal_amount DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cravings (
			id TEXT PRIMARY KEY,
			ts TIMESTAMPTZ NOT NULL,
			intensity INT NOT NULL,
			trigger TEXT NOT NULL DEFAULT '',
			mood TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id TEXT PRIMARY KEY,
			role TEXT NOT NULL,
			text TEXT NOT NULL,
			ts TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			theme TEXT NOT NULL,
			language TEXT NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			s.logger.Errorf("failed to ensure schema: %v", err)
			return err
		}
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// --- ProfileRepository ---

func (s *PostgresStore) SaveProfile(ctx context.Context, p *internal.Profile) error {
	var goalName *string
	var goalAmount *float64
	if p.SavingsGoal != nil {
		goalName = &p.SavingsGoal.Name
		goalAmount = &p.SavingsGoal.TargetAmount
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO profile (id, quit_instant, cigarettes_per_day, price_per_pack, cigarettes_per_pack, currency, goal_name, goal_amount, created_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET quit_instant = $1, cigarettes_per_day = $2, price_per_pack = $3, cigarettes_per_pack = $4, currency = $5, goal_name = $6, goal_amount = $7, created_at = $8`,
		p.QuitInstant, p.CigarettesPerDay, p.PricePerPack, p.CigarettesPerPack, p.Currency, goalName, goalAmount, p.CreatedAt)
	if err != nil {
		s.logger.Errorf("failed to upsert profile: %v", err)
		return err
	}
	return nil
}

func (s *PostgresStore) GetProfile(ctx context.Context) (*internal.Profile, error) {
	row := s.pool.QueryRow(ctx, `SELECT quit_instant, cigarettes_per_day, price_per_pack, cigarettes_per_pack, currency, goal_name, goal_amount, created_at FROM profile WHERE id = 1`)
	var p internal.Profile
	var goalName *string
	var goalAmount *float64
	err := row.Scan(&p.QuitInstant, &p.CigarettesPerDay, &p.PricePerPack, &p.CigarettesPerPack, &p.Currency, &goalName, &goalAmount, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.Errorf("failed to load profile: %v", err)
		return nil, err
	}
	if goalName != nil && goalAmount != nil {
		p.SavingsGoal = &internal.SavingsGoal{Name: *goalName, TargetAmount: *goalAmount}
	}
	return &p, nil
}

// --- CravingRepository ---

func (s *PostgresStore) SaveCraving(ctx context.Context, c *internal.CravingLog) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO cravings (id, ts, intensity, trigger, mood) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Timestamp, c.Intensity, string(c.Trigger), c.Mood)
	if err != nil {
		s.logger.Errorf("failed to insert craving: %v", err)
		return err
	}
	return nil
}

func (s *PostgresStore) ListCravings(ctx context.Context) ([]internal.CravingLog, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, ts, intensity, trigger, mood FROM cravings ORDER BY ts ASC`)
	if err != nil {
		s.logger.Errorf("failed to query cravings: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs := []internal.CravingLog{}
	for rows.Next() {
		var c internal.CravingLog
		var trigger string
		if err := rows.Scan(&c.ID, &c.Timestamp, &c.Intensity, &trigger, &c.Mood); err != nil {
			s.logger.Errorf("failed to scan craving: %v", err)
			return nil, err
		}
		c.Trigger = internal.CravingTrigger(trigger)
		logs = append(logs, c)
	}
	return logs, rows.Err()
}

// --- ChatRepository ---

func (s *PostgresStore) AppendMessage(ctx context.Context, m *internal.ChatMessage) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO chat_messages (id, role, text, ts) VALUES ($1, $2, $3, $4)`,
		m.ID, string(m.Role), m.Text, m.Timestamp)
	if err != nil {
		s.logger.Errorf("failed to insert chat message: %v", err)
		return err
	}
	return nil
}

func (s *PostgresStore) ListMessages(ctx context.Context) ([]internal.ChatMessage, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, role, text, ts FROM chat_messages ORDER BY ts ASC`)
	if err != nil {
		s.logger.Errorf("failed to query chat messages: %v", err)
		return nil, err
	}
	defer rows.Close()

	msgs := []internal.ChatMessage{}
	for rows.Next() {
		var m internal.ChatMessage
		var role string
		if err := rows.Scan(&m.ID, &role, &m.Text, &m.Timestamp); err != nil {
			s.logger.Errorf("failed to scan chat message: %v", err)
			return nil, err
		}
		m.Role = internal.ChatRole(role)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// --- SettingsRepository ---

func (s *PostgresStore) SaveSettings(ctx context.Context, set internal.Settings) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO settings (id, theme, language) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET theme = $1, language = $2`, set.Theme, set.Language)
	if err != nil {
		s.logger.Errorf("failed to upsert settings: %v", err)
		return err
	}
	return nil
}

func (s *PostgresStore) GetSettings(ctx context.Context) (internal.Settings, error) {
	row := s.pool.QueryRow(ctx, `SELECT theme, language FROM settings WHERE id = 1`)
	var set internal.Settings
	err := row.Scan(&set.Theme, &set.Language)
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.DefaultSettings(), nil
	}
	if err != nil {
		s.logger.Errorf("failed to load settings: %v", err)
		return internal.Settings{}, err
	}
	return set, nil
}

// --- Snapshot / Reset ---

func (s *PostgresStore) Snapshot(ctx context.Context) (*internal.Snapshot, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	cravings, err := s.ListCravings(ctx)
	if err != nil {
		return nil, err
	}
	chat, err := s.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &internal.Snapshot{Profile: profile, Cravings: cravings, ChatHistory: chat, Settings: settings}, nil
}

func (s *PostgresStore) Reset(ctx context.Context) error {
	for _, q := range []string{`DELETE FROM profile`, `DELETE FROM cravings`, `DELETE FROM chat_messages`} {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			s.logger.Errorf("failed to reset: %v", err)
			return err
		}
	}
	return nil
}

// --- Compile-time assertions ---
var _ StateStore = (*PostgresStore)(nil)
