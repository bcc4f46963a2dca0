package game

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/announce"
	"github.com/iamasit07/connect4/pkg/uid"
)

// Renderer is the presentation a session draws on.
type Renderer interface {
	SendMessage(message domain.ServerMessage) error
}

// GameSession couples one engine with the presentation showing it. Events
// from that presentation are handled one at a time.
type GameSession struct {
	GameID        string
	Game          *domain.Game
	Labels        announce.Labels
	CreatedAt     time.Time
	LastActivity  time.Time
	FinishedAt    time.Time
	AnnounceTimer *time.Timer
	mu            sync.Mutex
	renderer      Renderer
	announcer     *announce.Announcer
}

func NewGameSession(game *domain.Game, renderer Renderer, announcer *announce.Announcer) *GameSession {
	now := time.Now()
	return &GameSession{
		GameID:       uid.GenerateGameID(),
		Game:         game,
		Labels:       announcer.Labels,
		CreatedAt:    now,
		LastActivity: now,
		renderer:     renderer,
		announcer:    announcer,
	}
}

// Start sends the empty board to the presentation.
func (gs *GameSession) Start() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return gs.renderer.SendMessage(domain.ServerMessage{
		Type:        "game_start",
		GameID:      gs.GameID,
		Rows:        gs.Game.Rows(),
		Columns:     gs.Game.Columns(),
		Labels:      gs.Labels.Slice(),
		CurrentTurn: int(gs.Game.CurrentPlayer()),
		Board:       gs.Game.Board().Ints(),
		Status:      string(gs.Game.Status()),
	})
}

// HandleColumnSelected drops the current player's piece. Rejected drops
// return the engine's error and change nothing.
func (gs *GameSession) HandleColumnSelected(column int) (domain.MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	res, err := gs.Game.DropPiece(column)
	if err != nil {
		log.Printf("[GAME] Ignored drop in column %d for game %s: %v", column, gs.GameID, err)
		return res, err
	}
	gs.LastActivity = time.Now()

	moveMadeMsg := domain.ServerMessage{
		Type:     "move_made",
		GameID:   gs.GameID,
		Column:   res.Column,
		Row:      res.Row,
		Player:   int(res.Player),
		Board:    gs.Game.Board().Ints(),
		NextTurn: int(gs.Game.CurrentPlayer()),
		Status:   string(res.Status),
	}
	if err := gs.renderer.SendMessage(moveMadeMsg); err != nil {
		log.Printf("[GAME] Error sending move for game %s: %v", gs.GameID, err)
	}

	if res.Status.IsTerminal() {
		gs.FinishedAt = gs.LastActivity
		log.Printf("[GAME] Game %s finished: %s after %d moves", gs.GameID, res.Status, gs.Game.MoveCount())
		gs.AnnounceTimer = gs.announcer.Schedule(res, gs.sendGameOver(res))
	}

	return res, nil
}

func (gs *GameSession) sendGameOver(res domain.MoveResult) func(string) {
	winner := "draw"
	if res.Status == domain.StatusWon {
		winner = gs.Labels.Label(res.Winner)
	}
	board := gs.Game.Board().Ints()

	return func(message string) {
		err := gs.renderer.SendMessage(domain.ServerMessage{
			Type:    "game_over",
			GameID:  gs.GameID,
			Message: message,
			Winner:  winner,
			Board:   board,
			Status:  string(res.Status),
		})
		if err != nil {
			log.Printf("[GAME] Error announcing result for game %s: %v", gs.GameID, err)
		}
	}
}

// Close cancels a pending announcement.
func (gs *GameSession) Close() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.AnnounceTimer != nil {
		gs.AnnounceTimer.Stop()
		gs.AnnounceTimer = nil
	}
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsFinished()
}

// LiveGame is the listing view of a session.
type LiveGame struct {
	GameID      string
	Status      domain.GameStatus
	CurrentTurn string
	Winner      string
	MoveCount   int
	StartedAt   time.Time
}

func (gs *GameSession) Summary() LiveGame {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return LiveGame{
		GameID:      gs.GameID,
		Status:      gs.Game.Status(),
		CurrentTurn: gs.Labels.Label(gs.Game.CurrentPlayer()),
		Winner:      gs.Labels.Label(gs.Game.Winner()),
		MoveCount:   gs.Game.MoveCount(),
		StartedAt:   gs.CreatedAt,
	}
}

// SessionManager keeps track of the sessions open in this process.
type SessionManager struct {
	Session     map[string]*GameSession // gameID → GameSession
	mu          sync.RWMutex
	rows        int
	columns     int
	announcer   *announce.Announcer
	IdleTTL     time.Duration
	FinishedTTL time.Duration
}

func NewSessionManager(rows, columns int, announcer *announce.Announcer) *SessionManager {
	return &SessionManager{
		Session:     make(map[string]*GameSession),
		rows:        rows,
		columns:     columns,
		announcer:   announcer,
		IdleTTL:     24 * time.Hour,
		FinishedTTL: 1 * time.Hour,
	}
}

// CreateSession starts a fresh game drawn on renderer.
func (sm *SessionManager) CreateSession(renderer Renderer) (*GameSession, error) {
	game, err := domain.NewGame(sm.rows, sm.columns)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	session := NewGameSession(game, renderer, sm.announcer)

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s (%dx%d)", session.GameID, sm.rows, sm.columns)
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	session, exists := sm.Session[gameID]
	if !exists {
		sm.mu.Unlock()
		return fmt.Errorf("session not found")
	}
	delete(sm.Session, gameID)
	sm.mu.Unlock()

	log.Printf("[SESSION] Removing session %s", gameID)
	session.Close()
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// ActiveGames lists every session, oldest first.
func (sm *SessionManager) ActiveGames() []LiveGame {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, session := range sm.Session {
		sessions = append(sessions, session)
	}
	sm.mu.RUnlock()

	games := make([]LiveGame, 0, len(sessions))
	for _, session := range sessions {
		games = append(games, session.Summary())
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].StartedAt.Before(games[j].StartedAt)
	})
	return games
}

// CleanupOldSessions drops finished sessions after FinishedTTL and idle
// unfinished ones after IdleTTL. It returns how many were removed.
func (sm *SessionManager) CleanupOldSessions(now time.Time) int {
	sm.mu.Lock()
	stale := []*GameSession{}
	for gameID, session := range sm.Session {
		session.mu.Lock()
		var expired bool
		if session.Game.IsFinished() {
			expired = now.Sub(session.FinishedAt) > sm.FinishedTTL
		} else {
			expired = now.Sub(session.LastActivity) > sm.IdleTTL
		}
		session.mu.Unlock()

		if expired {
			delete(sm.Session, gameID)
			stale = append(stale, session)
		}
	}
	sm.mu.Unlock()

	for _, session := range stale {
		session.Close()
	}
	if len(stale) > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", len(stale))
	}
	return len(stale)
}
