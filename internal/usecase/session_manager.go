package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// Result is the outcome of one session operation: the new state and the notifications it produced.
type Result struct {
	Session *entity.Session      `json:"session"`
	Status  tictactoe.MoveStatus `json:"status,omitempty"`
	Events  []tictactoe.Event    `json:"events"`
}

// SessionManager runs engine operations against stored sessions.
type SessionManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	starter     tictactoe.Starter

	newID func() string
	now   func() time.Time
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, starter tictactoe.Starter) *SessionManager {
	return &SessionManager{
		logger: logger.With("component", "session_manager"),

		sessionRepo: sessionRepo,
		starter:     starter,

		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (that *SessionManager) StartSession(ctx context.Context, player1, player2 string) (*Result, error) {
	sessionID := that.newID()

	recorder := tictactoe.NewEventRecorder()
	controller := tictactoe.NewGameController(that.presenter(sessionID, recorder), that.starter)
	controller.StartNewSession(player1, player2)

	session := controller.Snapshot(sessionID)
	session.CreatedAt = that.now().UTC()

	if err := that.updateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", sessionID)

	return &Result{
		Session: session,
		Events:  recorder.Events(),
	}, nil
}

func (that *SessionManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*Result, error) {
	session, err := that.getSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	controller, recorder, err := that.restore(session)
	if err != nil {
		return nil, err
	}

	status, err := controller.AttemptMove(cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	updated := that.snapshot(controller, session)

	if status != tictactoe.MoveRejectedGameEnded && status != tictactoe.MoveRejectedCellOccupied {
		if err = that.updateSession(ctx, updated); err != nil {
			return nil, err
		}
	}

	return &Result{
		Session: updated,
		Status:  status,
		Events:  recorder.Events(),
	}, nil
}

func (that *SessionManager) NewRound(ctx context.Context, sessionID string) (*Result, error) {
	session, err := that.getSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	controller, recorder, err := that.restore(session)
	if err != nil {
		return nil, err
	}

	controller.StartNewRound()

	updated := that.snapshot(controller, session)
	if err = that.updateSession(ctx, updated); err != nil {
		return nil, err
	}

	return &Result{
		Session: updated,
		Events:  recorder.Events(),
	}, nil
}

func (that *SessionManager) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	return that.getSessionByID(ctx, sessionID)
}

// EndSession drops the session together with its scores.
func (that *SessionManager) EndSession(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", sessionID)

	return nil
}

func (that *SessionManager) restore(session *entity.Session) (*tictactoe.GameController, *tictactoe.EventRecorder, error) {
	recorder := tictactoe.NewEventRecorder()

	controller, err := tictactoe.Restore(that.presenter(session.ID, recorder), that.starter, session)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore session %s: %w", session.ID, err)
	}

	return controller, recorder, nil
}

func (that *SessionManager) presenter(sessionID string, recorder *tictactoe.EventRecorder) tictactoe.Presenter {
	return tictactoe.NewLoggingPresenter(that.logger.With("sessionID", sessionID), recorder)
}

func (that *SessionManager) snapshot(controller *tictactoe.GameController, session *entity.Session) *entity.Session {
	updated := controller.Snapshot(session.ID)
	updated.CreatedAt = session.CreatedAt

	return updated
}

func (that *SessionManager) getSessionByID(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *SessionManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
