package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"txtracker/internal/core"
	"txtracker/internal/http/handler/middleware"
	"txtracker/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /tracker/authenticate"
	AddTransaction    = "POST /tracker/transactions/{account}"
	GetTransactions   = "GET /tracker/transactions/{account}"
	GetTransaction    = "GET /tracker/transactions/{account}/{hash}"
	ClearTransactions = "DELETE /tracker/transactions/{account}"
)

type TrackerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tracker          TrackerService
}

func NewTrackerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, tracker TrackerService) *TrackerHandler {
	return &TrackerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tracker:          tracker,
	}
}

func (h *TrackerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.tracker.Authenticate(r.Context(), authPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Login successful",
		Data:    map[string]string{"token": token},
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleAddTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	account := r.PathValue("account")

	var txPayload payload.AddTransactionRequest
	err := h.requestValidator.DecodeJSONPayload(r, &txPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not add transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddTransaction,
			"request_id", requestId)
		return
	}

	record, err := h.tracker.AddTransaction(r.Context(), account, txPayload.ToCandidate())
	if err != nil {
		resp := Response{
			Message: "Could not add transaction",
		}
		httpCode := http.StatusInternalServerError

		var verr *core.ValidationError
		if errors.As(err, &verr) || errors.Is(err, core.ErrUnsupportedDetail) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to add transaction",
			"error", err,
			"account", account,
			"handler", AddTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Transaction added",
		Data:    record,
	}, http.StatusCreated, requestId)
}

func (h *TrackerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	account := r.PathValue("account")

	records, err := h.tracker.GetTransactions(r.Context(), account)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not fetch transactions",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to fetch transactions",
			"error", err,
			"account", account,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Transactions fetched successfully",
		Data:    records,
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	account := r.PathValue("account")
	txHash := r.PathValue("hash")

	record, found, err := h.tracker.GetTransaction(r.Context(), account, txHash)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not fetch transaction",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to fetch transaction",
			"error", err,
			"account", account,
			"hash", txHash,
			"handler", GetTransaction,
			"request_id", requestId)
		return
	}

	if !found {
		h.respond(w, Response{
			Message: "Transaction not found",
		}, http.StatusNotFound, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Transaction fetched successfully",
		Data:    record,
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleClearTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	account := r.PathValue("account")

	if err := h.tracker.ClearTransactions(r.Context(), account); err != nil {
		h.respond(w, Response{
			Message: "Could not clear transactions",
			Error:   oopsErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to clear transactions",
			"error", err,
			"account", account,
			"handler", ClearTransactions,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Transactions cleared",
	}, http.StatusOK, requestId)
}

func (h *TrackerHandler) respond(w http.ResponseWriter, resp Response, httpCode int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	requestId, _ := reqIdCtx.(string)
	return requestId
}
