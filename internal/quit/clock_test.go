package quit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Oussamaberchi/Quickkt/internal"
)

type staticSource struct {
	profile *internal.Profile
	lang    string
}

func (s *staticSource) CurrentProfile() *internal.Profile { return s.profile }
func (s *staticSource) CurrentLanguage() string           { return s.lang }

func testLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func TestEnginePublishesLatestSnapshot(t *testing.T) {
	source := &staticSource{profile: testProfile(time.Now().UTC().Add(-48 * time.Hour)), lang: "ar"}
	ticker := NewTicker(5 * time.Millisecond)
	engine := NewEngine(source, ticker, testLogger())
	go engine.Run()
	defer engine.Stop()

	assert.Eventually(t, func() bool {
		snap := engine.Latest()
		return snap != nil && snap.CigarettesAvoided == 40
	}, time.Second, 5*time.Millisecond)
}

func TestEngineClearsSnapshotWithoutProfile(t *testing.T) {
	source := &staticSource{lang: "ar"}
	ticker := NewTicker(5 * time.Millisecond)
	engine := NewEngine(source, ticker, testLogger())
	go engine.Run()
	defer engine.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, engine.Latest())
}

func TestEngineStopIsIdempotent(t *testing.T) {
	ticker := NewTicker(time.Hour)
	engine := NewEngine(&staticSource{}, ticker, testLogger())
	go engine.Run()
	engine.Stop()
	engine.Stop()
}

func TestTickerStopTwice(t *testing.T) {
	tk := NewTicker(time.Hour)
	tk.Stop()
	tk.Stop()
}
