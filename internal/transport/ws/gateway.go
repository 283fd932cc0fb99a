package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lukemay/blankparty/internal/broadcast"
	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/monitor"
	"github.com/lukemay/blankparty/internal/services/room"
)

var (
	errUnknownAction = errors.New("unknown action")
	errNotJoined     = errors.New("join a room first")
	errAlreadyJoined = errors.New("connection is already in a room")
	errBadPayload    = errors.New("malformed action payload")
)

// Gateway upgrades websocket connections and routes their actions to
// the room controller. Each connection maps to at most one player
// seat in one room.
type Gateway struct {
	controller room.ControllerInterface
	hubs       *broadcast.HubManager
	metrics    *monitor.Metrics
	logger     *slog.Logger
	upgrader   websocket.Upgrader
}

// NewGateway creates a new websocket Gateway
func NewGateway(controller room.ControllerInterface, hubs *broadcast.HubManager, metrics *monitor.Metrics, logger *slog.Logger) *Gateway {
	return &Gateway{
		controller: controller,
		hubs:       hubs,
		metrics:    metrics,
		logger:     logger.With(slog.String("component", "ws")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Room codes gate access, not origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades the request and serves the connection until it drops
func (g *Gateway) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	g.metrics.ConnOpened()
	defer g.metrics.ConnClosed()

	sess := newSession(conn, g.logger)
	go sess.writePump()

	g.readLoop(sess)
	g.teardown(sess)
}

func (g *Gateway) readLoop(sess *session) {
	sess.conn.SetReadLimit(maxMessageSize)
	_ = sess.conn.SetReadDeadline(g.readDeadline())
	sess.conn.SetPongHandler(func(string) error {
		return sess.conn.SetReadDeadline(g.readDeadline())
	})

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Debug("websocket read error", slog.String("error", err.Error()))
			}
			return
		}

		var env actionEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			sess.sendError(errBadPayload)
			continue
		}

		if err := g.dispatch(sess, env); err != nil {
			sess.sendError(err)
		}
	}
}

func (g *Gateway) readDeadline() time.Time {
	return time.Now().Add(pongWait)
}

// teardown runs when the connection drops for any reason. The player
// keeps their seat for the grace period; a reconnect reclaims it.
func (g *Gateway) teardown(sess *session) {
	sess.close()

	code, playerID := sess.identity()
	if code == "" {
		return
	}

	if client := sess.boundClient(); client != nil {
		if hub := g.hubs.GetHub(code); hub != nil {
			hub.Unregister(client)
		}
	}

	if err := g.controller.Disconnect(context.Background(), code, playerID); err != nil {
		g.logger.Error("failed to record disconnect",
			slog.String("room", string(code)),
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()))
	}
}

func (g *Gateway) dispatch(sess *session, env actionEnvelope) error {
	ctx := context.Background()
	g.metrics.ActionReceived(env.Action)

	switch env.Action {
	case ActionCreateRoom:
		var p createRoomPayload
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return err
		}
		return g.handleCreateRoom(ctx, sess, p)

	case ActionJoinRoom:
		var p joinRoomPayload
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return err
		}
		return g.handleJoinRoom(ctx, sess, p)

	case ActionReconnect:
		var p reconnectPayload
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return err
		}
		return g.handleReconnect(ctx, sess, p)

	case ActionLeaveRoom:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		if err := g.controller.LeaveRoom(ctx, code, playerID); err != nil {
			return err
		}
		g.unbind(sess)
		return nil

	case ActionStartGame:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		if err := g.controller.StartGame(ctx, code, playerID); err != nil {
			return err
		}
		g.metrics.GameStarted()
		return nil

	case ActionSubmitAnswer:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		var p submitAnswerPayload
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return err
		}
		return g.controller.SubmitAnswer(ctx, code, playerID, p.Answer)

	case ActionNextRound:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		return g.controller.NextRound(ctx, code, playerID)

	case ActionPlayAgain:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		return g.controller.PlayAgain(ctx, code, playerID)

	case ActionUpdateSettings:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		var patch model.SettingsPatch
		if err := unmarshalPayload(env.Payload, &patch); err != nil {
			return err
		}
		return g.controller.UpdateSettings(ctx, code, playerID, patch)

	case ActionToggleSpectator:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		// Payload is optional; no target means self-toggle
		var p targetPayload
		if len(env.Payload) > 0 {
			if err := unmarshalPayload(env.Payload, &p); err != nil {
				return err
			}
		}
		target := model.PlayerID(p.TargetID)
		if target == "" {
			target = playerID
		}
		return g.controller.ToggleSpectator(ctx, code, playerID, target)

	case ActionAddBot:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		return g.controller.AddBot(ctx, code, playerID)

	case ActionRemoveBot:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		var p targetPayload
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return err
		}
		return g.controller.RemoveBot(ctx, code, playerID, model.PlayerID(p.TargetID))

	case ActionKickPlayer:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		var p kickPayload
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return err
		}
		return g.controller.KickPlayer(ctx, code, playerID, model.PlayerID(p.TargetID), p.Block)

	case ActionUnblockPlayer:
		code, playerID, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		var p unblockPayload
		if err := unmarshalPayload(env.Payload, &p); err != nil {
			return err
		}
		return g.controller.UnblockPlayer(ctx, code, playerID, p.Name)

	case ActionGetRoomState:
		code, _, err := g.requireJoined(sess)
		if err != nil {
			return err
		}
		state, err := g.controller.GetRoom(ctx, code)
		if err != nil {
			return err
		}
		sess.sendEvent(model.Event{Type: model.EventRoomState, Payload: state})
		return nil

	default:
		return errUnknownAction
	}
}

func (g *Gateway) handleCreateRoom(ctx context.Context, sess *session, p createRoomPayload) error {
	if code, _ := sess.identity(); code != "" {
		return errAlreadyJoined
	}

	created, playerID, err := g.controller.CreateRoom(ctx, p.Name)
	if err != nil {
		return err
	}

	g.subscribe(sess, created.Code, playerID)
	sess.sendEvent(model.Event{
		Type: model.EventJoined,
		Payload: model.JoinedPayload{
			RoomCode: created.Code,
			PlayerID: playerID,
			Room:     created,
		},
	})
	return nil
}

func (g *Gateway) handleJoinRoom(ctx context.Context, sess *session, p joinRoomPayload) error {
	if code, _ := sess.identity(); code != "" {
		return errAlreadyJoined
	}

	joined, playerID, err := g.controller.JoinRoom(ctx, model.RoomCode(p.RoomCode), p.Name)
	if err != nil {
		return err
	}

	g.subscribe(sess, joined.Code, playerID)
	sess.sendEvent(model.Event{
		Type: model.EventJoined,
		Payload: model.JoinedPayload{
			RoomCode: joined.Code,
			PlayerID: playerID,
			Room:     joined,
		},
	})
	return nil
}

func (g *Gateway) handleReconnect(ctx context.Context, sess *session, p reconnectPayload) error {
	if code, _ := sess.identity(); code != "" {
		return errAlreadyJoined
	}

	state, err := g.controller.Reconnect(ctx, model.RoomCode(p.RoomCode), model.PlayerID(p.PlayerID))
	if err != nil {
		return err
	}

	g.subscribe(sess, state.Code, model.PlayerID(p.PlayerID))
	sess.sendEvent(model.Event{
		Type: model.EventJoined,
		Payload: model.JoinedPayload{
			RoomCode: state.Code,
			PlayerID: model.PlayerID(p.PlayerID),
			Room:     state,
		},
	})
	return nil
}

// subscribe registers the session on the room's hub so broadcasts
// reach this connection
func (g *Gateway) subscribe(sess *session, code model.RoomCode, playerID model.PlayerID) {
	hub := g.hubs.GetOrCreateHub(code)
	client := broadcast.NewClient(playerID)
	hub.Register(client)
	sess.bind(code, playerID, client)
}

// unbind detaches a session after a deliberate leave
func (g *Gateway) unbind(sess *session) {
	code, _ := sess.identity()
	if client := sess.boundClient(); client != nil {
		if hub := g.hubs.GetHub(code); hub != nil {
			hub.Unregister(client)
		}
	}
	sess.unbind(nil)
}

func (g *Gateway) requireJoined(sess *session) (model.RoomCode, model.PlayerID, error) {
	code, playerID := sess.identity()
	if code == "" {
		return "", "", errNotJoined
	}
	return code, playerID, nil
}

func unmarshalPayload(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return errBadPayload
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errBadPayload
	}
	return nil
}
