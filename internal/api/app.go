package api

import (
	"github.com/Oussamaberchi/Quickkt/internal"
	"github.com/Oussamaberchi/Quickkt/internal/coach"
	"github.com/Oussamaberchi/Quickkt/internal/quit"
	"github.com/Oussamaberchi/Quickkt/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Store() storage.StateStore
	Coach() coach.Client
	Engine() *quit.Engine
	Calendar() quit.Calendar
}
