package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// SQLiteStore is the embedded on-device backend, matching the single-user
// deployment the app is built for.
type SQLiteStore struct {
	db     *gorm.DB
	logger internal.Logger
}

type profileRow struct {
	ID                int `gorm:"primaryKey"`
	QuitInstant       int64
	CigarettesPerDay  float64
	PricePerPack      float64
	CigarettesPerPack int
	Currency          string
	GoalName          *string
	GoalAmount        *float64
	CreatedAt         int64
}

type cravingRow struct {
	ID        string `gorm:"primaryKey"`
	Timestamp int64  `gorm:"index"`
	Intensity int
	Trigger   string
	Mood      string
}

type chatMessageRow struct {
	ID        string `gorm:"primaryKey"`
	Role      string
	Text      string
	Timestamp int64 `gorm:"index"`
}

type settingsRow struct {
	ID       int `gorm:"primaryKey"`
	Theme    string
	Language string
}

func (profileRow) TableName() string     { return "profile" }
func (cravingRow) TableName() string     { return "cravings" }
func (chatMessageRow) TableName() string { return "chat_messages" }
func (settingsRow) TableName() string    { return "settings" }

func NewSQLiteStore(path string, logger internal.Logger) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Errorf("failed to open sqlite database: %v", err)
		return nil, err
	}
	if err := db.AutoMigrate(&profileRow{}, &cravingRow{}, &chatMessageRow{}, &settingsRow{}); err != nil {
		logger.Errorf("failed to migrate sqlite schema: %v", err)
		return nil, err
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --- ProfileRepository ---

func (s *SQLiteStore) SaveProfile(ctx context.Context, p *internal.Profile) error {
	row := profileRow{
		ID:                1,
		QuitInstant:       p.QuitInstant.UnixMilli(),
		CigarettesPerDay:  p.CigarettesPerDay,
		PricePerPack:      p.PricePerPack,
		CigarettesPerPack: p.CigarettesPerPack,
		Currency:          p.Currency,
		CreatedAt:         p.CreatedAt.UnixMilli(),
	}
	if p.SavingsGoal != nil {
		row.GoalName = &p.SavingsGoal.Name
		row.GoalAmount = &p.SavingsGoal.TargetAmount
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		s.logger.Errorf("failed to save profile: %v", err)
		return err
	}
	return nil
}

func (s *SQLiteStore) GetProfile(ctx context.Context) (*internal.Profile, error) {
	var row profileRow
	err := s.db.WithContext(ctx).First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Errorf("failed to load profile: %v", err)
		return nil, err
	}
	p := &internal.Profile{
		QuitInstant:       msToTime(row.QuitInstant),
		CigarettesPerDay:  row.CigarettesPerDay,
		PricePerPack:      row.PricePerPack,
		CigarettesPerPack: row.CigarettesPerPack,
		Currency:          row.Currency,
		CreatedAt:         msToTime(row.CreatedAt),
	}
	if row.GoalName != nil && row.GoalAmount != nil {
		p.SavingsGoal = &internal.SavingsGoal{Name: *row.GoalName, TargetAmount: *row.GoalAmount}
	}
	return p, nil
}

// --- CravingRepository ---

func (s *SQLiteStore) SaveCraving(ctx context.Context, c *internal.CravingLog) error {
	row := cravingRow{
		ID:        c.ID,
		Timestamp: c.Timestamp.UnixMilli(),
		Intensity: c.Intensity,
		Trigger:   string(c.Trigger),
		Mood:      c.Mood,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.Errorf("failed to insert craving: %v", err)
		return err
	}
	return nil
}

func (s *SQLiteStore) ListCravings(ctx context.Context) ([]internal.CravingLog, error) {
	var rows []cravingRow
	if err := s.db.WithContext(ctx).Order("timestamp ASC").Find(&rows).Error; err != nil {
		s.logger.Errorf("failed to query cravings: %v", err)
		return nil, err
	}
	logs := make([]internal.CravingLog, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, internal.CravingLog{
			ID:        r.ID,
			Timestamp: msToTime(r.Timestamp),
			Intensity: r.Intensity,
			Trigger:   internal.CravingTrigger(r.Trigger),
			Mood:      r.Mood,
		})
	}
	return logs, nil
}

// --- ChatRepository ---

func (s *SQLiteStore) AppendMessage(ctx context.Context, m *internal.ChatMessage) error {
	row := chatMessageRow{
		ID:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp.UnixMilli(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.Errorf("failed to insert chat message: %v", err)
		return err
	}
	return nil
}

func (s *SQLiteStore) ListMessages(ctx context.Context) ([]internal.ChatMessage, error) {
	var rows []chatMessageRow
	if err := s.db.WithContext(ctx).Order("timestamp ASC").Find(&rows).Error; err != nil {
		s.logger.Errorf("failed to query chat messages: %v", err)
		return nil, err
	}
	msgs := make([]internal.ChatMessage, 0, len(rows))
	for _, r := range rows {
		msgs = append(msgs, internal.ChatMessage{
			ID:        r.ID,
			Role:      internal.ChatRole(r.Role),
			Text:      r.Text,
			Timestamp: msToTime(r.Timestamp),
		})
	}
	return msgs, nil
}

// --- SettingsRepository ---

func (s *SQLiteStore) SaveSettings(ctx context.Context, set internal.Settings) error {
	row := settingsRow{ID: 1, Theme: set.Theme, Language: set.Language}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		s.logger.Errorf("failed to save settings: %v", err)
		return err
	}
	return nil
}

func (s *SQLiteStore) GetSettings(ctx context.Context) (internal.Settings, error) {
	var row settingsRow
	err := s.db.WithContext(ctx).First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return internal.DefaultSettings(), nil
	}
	if err != nil {
		s.logger.Errorf("failed to load settings: %v", err)
		return internal.Settings{}, err
	}
	return internal.Settings{Theme: row.Theme, Language: row.Language}, nil
}

// --- Snapshot / Reset ---

func (s *SQLiteStore) Snapshot(ctx context.Context) (*internal.Snapshot, error) {
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

func (s *SQLiteStore) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&profileRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&cravingRow{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&chatMessageRow{}).Error
	})
}

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// --- Compile-time assertions ---
var _ StateStore = (*SQLiteStore)(nil)
