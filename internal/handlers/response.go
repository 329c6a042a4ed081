package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-admin-console/internal/logger"
	"github.com/sbilibin2017/gw-admin-console/internal/models"
	"github.com/sbilibin2017/gw-admin-console/internal/validation"
)

//go:generate mockgen -source=response.go -destination=response_mock.go -package=handlers

// Error messages returned to the console
const (
	MsgBadRequest        = "잘못된 요청입니다"
	MsgValidationFailed  = "입력값이 올바르지 않습니다"
	MsgUserNotFound      = "사용자를 찾을 수 없습니다"
	MsgUserAlreadyExists = "이미 사용 중인 사용자명 또는 이메일입니다"
	MsgPostNotFound      = "게시글을 찾을 수 없습니다"
	MsgPostConflict      = "이미 존재하는 게시글입니다"
	MsgTransitionDenied  = "허용되지 않는 상태 전환입니다"
	MsgInternal          = "서버 오류가 발생했습니다"
)

// RejectionRecorder counts payloads rejected by validation.
type RejectionRecorder interface {
	RecordRejection(entity string)
}

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Message: message})
}

func writeValidationError(w http.ResponseWriter, errs validation.Errors) {
	writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
		Message: MsgValidationFailed,
		Fields:  errs,
	})
}

// parseID reads the {id} URL parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// decodePayload decodes a JSON object body into an untyped payload.
func decodePayload(r *http.Request) (validation.Payload, error) {
	var p validation.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return p, nil
}

func recordRejection(rec RejectionRecorder, entity string) {
	if rec != nil {
		rec.RecordRejection(entity)
	}
}
