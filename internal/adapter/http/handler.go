package httpadapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"lootgrid/internal/app/auth"
	"lootgrid/internal/app/explore"
	"lootgrid/internal/app/journal"
	"lootgrid/internal/app/ports"
	"lootgrid/internal/app/status"
	"lootgrid/internal/domain/expedition"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"
const playerKeyHeader = "X-Player-Key"

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	RegisterUC auth.RegisterUseCase
	AuthUC     auth.VerifyUseCase
	ExploreUC  explore.UseCase
	StatusUC   status.UseCase
	JournalUC  journal.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	player := s.Group("/api/player")
	player.POST("/register", h.register)
	player.POST("/explore", h.explore)
	player.POST("/status", h.status)
	player.GET("/journal", h.journal)

	s.GET("/ops/kpi", h.kpi)
}

type exploreRequest struct {
	// MoveBuffer is the base64 encoding of exactly 32 packed bytes.
	MoveBuffer string `json:"move_buffer"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	resp, err := h.RegisterUC.Execute(c, auth.RegisterRequest{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) explore(c context.Context, ctx *app.RequestContext) {
	playerID, err := h.requireAuthenticatedPlayer(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body exploreRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	buf, err := decodeMoveBuffer(body.MoveBuffer)
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_move_buffer", err.Error())
		return
	}

	resp, err := h.ExploreUC.Execute(c, explore.Request{PlayerID: playerID, MoveBuffer: buf})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	playerID, err := h.requireAuthenticatedPlayer(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	playerID, err := h.requireAuthenticatedPlayer(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)

	resp, err := h.JournalUC.Execute(c, journal.Request{
		PlayerID:     playerID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "kpi_unavailable", "kpi recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeMoveBuffer(encoded string) (expedition.MoveBuffer, error) {
	var buf expedition.MoveBuffer
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return buf, errors.New("move_buffer is not valid base64")
	}
	if len(raw) != expedition.MoveBufferSize {
		return buf, errors.New("move_buffer must decode to exactly 32 bytes")
	}
	copy(buf[:], raw)
	return buf, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingPlayerIDHeader = errors.New("missing x-player-id header")
var ErrMissingPlayerKeyHeader = errors.New("missing x-player-key header")
var ErrMissingPlayerCredentials = errors.New("missing player credentials")

func (h Handler) requireAuthenticatedPlayer(c context.Context, ctx *app.RequestContext) (string, error) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	playerKey := strings.TrimSpace(string(ctx.GetHeader(playerKeyHeader)))
	if playerID == "" && playerKey == "" {
		return "", ErrMissingPlayerCredentials
	}
	if playerID == "" {
		return "", ErrMissingPlayerIDHeader
	}
	if playerKey == "" {
		return "", ErrMissingPlayerKeyHeader
	}
	if err := h.AuthUC.Execute(c, auth.VerifyRequest{
		PlayerID:  playerID,
		PlayerKey: playerKey,
	}); err != nil {
		return "", err
	}
	return playerID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingPlayerCredentials):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_credentials", err.Error())
	case errors.Is(err, ErrMissingPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error())
	case errors.Is(err, ErrMissingPlayerKeyHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_key", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_player_credentials", err.Error())
	case errors.Is(err, expedition.ErrExhausted):
		writeErrorBody(ctx, consts.StatusConflict, "explore_exhausted", err.Error())
	case errors.Is(err, expedition.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusConflict, "explore_out_of_bounds", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, explore.ErrInvalidRequest),
		errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, journal.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
