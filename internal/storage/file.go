package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// FileStore keeps the whole snapshot in memory and persists it to a single
// JSON file through a debounced background worker. A malformed or missing
// file is treated as an absent snapshot, never as a fatal error.
type FileStore struct {
	snapshot  *internal.Snapshot
	mu        sync.RWMutex
	path      string
	saveChan  chan struct{}
	shutdown  chan struct{}
	saveDelay time.Duration
	logger    internal.Logger
}

func NewFileStore(path string, logger internal.Logger) (*FileStore, error) {
	s := &FileStore{
		snapshot:  internal.EmptySnapshot(),
		path:      path,
		saveChan:  make(chan struct{}, 1),
		shutdown:  make(chan struct{}),
		saveDelay: 500 * time.Millisecond,
		logger:    logger,
	}
	s.load()
	go s.saveWorker()
	return s, nil
}

// load never fails hard: a snapshot that cannot be read or parsed falls back
// to the empty state.
func (s *FileStore) load() {
	file, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf("storage: cannot open snapshot file, starting empty: %v", err)
		}
		return
	}
	defer file.Close()

	var snap internal.Snapshot
	if err := json.NewDecoder(file).Decode(&snap); err != nil {
		if !errors.Is(err, io.EOF) {
			s.logger.Warnf("storage: malformed snapshot, starting empty: %v", err)
		}
		return
	}
	if snap.Cravings == nil {
		snap.Cravings = []internal.CravingLog{}
	}
	if snap.ChatHistory == nil {
		snap.ChatHistory = []internal.ChatMessage{}
	}
	if snap.Settings == (internal.Settings{}) {
		snap.Settings = internal.DefaultSettings()
	}

	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStore) save() error {
	s.mu.RLock()
	snap := s.copySnapshot()
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.path, snap)
}

func (s *FileStore) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.save(); err != nil {
				s.logger.Errorf("storage: error saving snapshot: %v", err)
			}
		case <-s.shutdown:
			return
		}
	}
}

func (s *FileStore) markDirty() {
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
}

// copySnapshot must be called with at least a read lock held.
func (s *FileStore) copySnapshot() *internal.Snapshot {
	out := &internal.Snapshot{
		Cravings:    make([]internal.CravingLog, len(s.snapshot.Cravings)),
		ChatHistory: make([]internal.ChatMessage, len(s.snapshot.ChatHistory)),
		Settings:    s.snapshot.Settings,
	}
	copy(out.Cravings, s.snapshot.Cravings)
	copy(out.ChatHistory, s.snapshot.ChatHistory)
	if s.snapshot.Profile != nil {
		p := *s.snapshot.Profile
		out.Profile = &p
	}
	return out
}

func (s *FileStore) Close() error {
	close(s.shutdown)
	// Flush pending data synchronously on shutdown
	return s.save()
}

// --- ProfileRepository ---

func (s *FileStore) SaveProfile(ctx context.Context, p *internal.Profile) error {
	s.mu.Lock()
	cp := *p
	s.snapshot.Profile = &cp
	s.mu.Unlock()
	s.markDirty()
	return nil
}

func (s *FileStore) GetProfile(ctx context.Context) (*internal.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot.Profile == nil {
		return nil, nil
	}
	p := *s.snapshot.Profile
	return &p, nil
}

// --- CravingRepository ---

func (s *FileStore) SaveCraving(ctx context.Context, c *internal.CravingLog) error {
	s.mu.Lock()
	s.snapshot.Cravings = append(s.snapshot.Cravings, *c)
	s.mu.Unlock()
	s.markDirty()
	return nil
}

func (s *FileStore) ListCravings(ctx context.Context) ([]internal.CravingLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.CravingLog, len(s.snapshot.Cravings))
	copy(out, s.snapshot.Cravings)
	return out, nil
}

// --- ChatRepository ---

func (s *FileStore) AppendMessage(ctx context.Context, m *internal.ChatMessage) error {
	s.mu.Lock()
	s.snapshot.ChatHistory = append(s.snapshot.ChatHistory, *m)
	s.mu.Unlock()
	s.markDirty()
	return nil
}

func (s *FileStore) ListMessages(ctx context.Context) ([]internal.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.ChatMessage, len(s.snapshot.ChatHistory))
	copy(out, s.snapshot.ChatHistory)
	return out, nil
}

// --- SettingsRepository ---

func (s *FileStore) SaveSettings(ctx context.Context, set internal.Settings) error {
	s.mu.Lock()
	s.snapshot.Settings = set
	s.mu.Unlock()
	s.markDirty()
	return nil
}

func (s *FileStore) GetSettings(ctx context.Context) (internal.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Settings, nil
}

// --- Snapshot / Reset ---

func (s *FileStore) Snapshot(ctx context.Context) (*internal.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySnapshot(), nil
}

func (s *FileStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	settings := s.snapshot.Settings
	s.snapshot = internal.EmptySnapshot()
	s.snapshot.Settings = settings
	s.mu.Unlock()
	s.markDirty()
	return nil
}

// --- Compile-time assertions ---
var _ StateStore = (*FileStore)(nil)
