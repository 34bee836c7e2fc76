package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	impl_transfer "github.com/fieldops/stock-transfers-service/internal/impl/usecase/transfer"
	port_transfer "github.com/fieldops/stock-transfers-service/internal/ports/usecase/transfer"
)

const (
	headerPartyID = "X-Party-Id"
	headerRole    = "X-Party-Role"
)

// Handler is the REST boundary of the transfer protocol. Identity arrives
// pre-authenticated from the session layer as headers; this handler only
// translates between JSON and the usecase ports and never touches stock or
// state itself.
type Handler struct {
	create  port_transfer.CreateTransferUseCase
	confirm port_transfer.ConfirmTransferUseCase
	cancel  port_transfer.CancelTransferUseCase
	list    port_transfer.ListPendingUseCase
}

func NewHandler(
	create port_transfer.CreateTransferUseCase,
	confirm port_transfer.ConfirmTransferUseCase,
	cancel port_transfer.CancelTransferUseCase,
	list port_transfer.ListPendingUseCase,
) *Handler {
	return &Handler{create: create, confirm: confirm, cancel: cancel, list: list}
}

// Router mounts the API. confirmRate limits confirmation attempts per
// client IP; code guessing gets slow before it gets lucky.
func (h *Handler) Router(confirmRate float64) http.Handler {
	lmt := tollbooth.NewLimiter(confirmRate, nil)
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage(`{"error":"too many attempts"}`)
	lmt.SetMessageContentType("application/json")

	r := chi.NewRouter()

	r.Route("/v1", func(r chi.Router) {
		r.Post("/transfers", h.handleCreate)
		r.Method(http.MethodPost, "/transfers/{id}/confirm", h.limitConfirm(lmt))
		r.Post("/transfers/{id}/cancel", h.handleCancel)
		r.Get("/parties/{partyID}/transfers/pending", h.handleListPending)
	})

	return r
}

func (h *Handler) limitConfirm(lmt *limiter.Limiter) http.Handler {
	return tollbooth.LimitHandler(lmt, http.HandlerFunc(h.handleConfirm))
}

type transferLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
}

type createTransferRequest struct {
	Kind                  string                `json:"kind"`
	InitiatorPartyID      string                `json:"initiator_party_id"`
	CounterpartyPartyID   string                `json:"counterparty_party_id"`
	SourceLocationID      string                `json:"source_location_id"`
	DestinationLocationID string                `json:"destination_location_id"`
	Payload               []transferLineRequest `json:"payload"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity headers")
		return
	}

	var req createTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	payload := make([]port_transfer.TransferLineInput, 0, len(req.Payload))
	for _, line := range req.Payload {
		quantity, err := decimal.NewFromString(line.Quantity)
		if err != nil {
			writeError(w, http.StatusBadRequest, "malformed quantity")
			return
		}
		payload = append(payload, port_transfer.TransferLineInput{
			ProductID: line.ProductID,
			Quantity:  quantity,
			Unit:      line.Unit,
		})
	}

	out, err := h.create.Execute(r.Context(), port_transfer.CreateTransferInput{
		Kind:                  req.Kind,
		InitiatorPartyID:      req.InitiatorPartyID,
		CounterpartyPartyID:   req.CounterpartyPartyID,
		SourceLocationID:      req.SourceLocationID,
		DestinationLocationID: req.DestinationLocationID,
		Payload:               payload,
		RequestedBy:           actor,
	})
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, viewToJSON(out.Transfer))
}

type confirmTransferRequest struct {
	Role string `json:"role"`
	Code string `json:"code"`
}

type confirmTransferResponse struct {
	Outcome string `json:"outcome"`
	State   string `json:"state,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity headers")
		return
	}

	var req confirmTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	out, err := h.confirm.Execute(r.Context(), port_transfer.ConfirmTransferInput{
		RequestID:   chi.URLParam(r, "id"),
		Role:        req.Role,
		Code:        req.Code,
		SubmittedBy: actor,
	})
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}

	status, body := confirmResponse(out)

	// The precise outcome stays in the log even when the response body is
	// deliberately generic.
	log.Printf("transfer %s: confirm by %s -> %s", chi.URLParam(r, "id"), actor.PartyID, out.Outcome)

	writeJSON(w, status, body)
}

// confirmResponse maps the precise outcome onto the wire. Wrong code,
// unknown id and cancelled all collapse into one generic INVALID_CODE so
// the response never aids guessing which of them happened.
func confirmResponse(out port_transfer.ConfirmTransferOutput) (int, confirmTransferResponse) {
	switch out.Outcome {
	case "CONFIRMED", "ALREADY_CONFIRMED", "ALREADY_SETTLED",
		port_transfer.OutcomeSettled:
		return http.StatusOK, confirmTransferResponse{Outcome: out.Outcome, State: out.State}
	case "EXPIRED":
		return http.StatusGone, confirmTransferResponse{
			Outcome: out.Outcome,
			State:   out.State,
			Message: "request expired, create a fresh transfer",
		}
	case port_transfer.OutcomeSettlementConflict:
		return http.StatusConflict, confirmTransferResponse{
			Outcome: out.Outcome,
			State:   out.State,
			Message: "stock no longer covers this transfer, contact an operator",
		}
	case port_transfer.OutcomeUnauthorized:
		return http.StatusForbidden, confirmTransferResponse{Outcome: out.Outcome}
	default:
		// CODE_MISMATCH, NOT_FOUND, CANCELLED.
		return http.StatusUnprocessableEntity, confirmTransferResponse{
			Outcome: "INVALID_CODE",
			Message: "invalid confirmation code",
		}
	}
}

type cancelTransferResponse struct {
	Outcome string `json:"outcome"`
	State   string `json:"state,omitempty"`
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity headers")
		return
	}

	out, err := h.cancel.Execute(r.Context(), port_transfer.CancelTransferInput{
		RequestID:   chi.URLParam(r, "id"),
		RequestedBy: actor,
	})
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}

	if out.Outcome == port_transfer.OutcomeNotFound {
		writeError(w, http.StatusNotFound, "transfer not found")
		return
	}

	writeJSON(w, http.StatusOK, cancelTransferResponse{Outcome: out.Outcome, State: out.State})
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity headers")
		return
	}

	out, err := h.list.Execute(r.Context(), port_transfer.ListPendingInput{
		PartyID:     chi.URLParam(r, "partyID"),
		RequestedBy: actor,
	})
	if err != nil {
		h.writeUsecaseError(w, r, err)
		return
	}

	views := make([]transferViewJSON, 0, len(out.Transfers))
	for _, view := range out.Transfers {
		views = append(views, viewToJSON(view))
	}

	writeJSON(w, http.StatusOK, map[string]any{"transfers": views})
}

func (h *Handler) writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, impl_transfer.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "not allowed")
	case errors.Is(err, impl_transfer.ErrInvalidPayload), errors.Is(err, impl_transfer.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("http %s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func actorFromRequest(r *http.Request) (port_transfer.Actor, bool) {
	partyID := r.Header.Get(headerPartyID)
	role := r.Header.Get(headerRole)
	if partyID == "" || role == "" {
		return port_transfer.Actor{}, false
	}
	return port_transfer.Actor{PartyID: partyID, Role: role}, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
