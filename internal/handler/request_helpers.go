package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/SpinWheel_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// An empty body decodes to the zero value when allowEmpty is set.
// If this function returns an error, the response has already been written.
//
// Example usage:
//
//	var req SpinRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Spin", true); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			log.Warn(LogMsgRequestDecodeFailed, "action", actionName, "error", err)
			respondErrorBody(w, http.StatusBadRequest, ErrorBody{Kind: KindInvalidArgument, Message: ErrMsgInvalidRequest})
			return err
		}
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgRequestInvalid, "action", actionName, "error", err)
		respondErrorBody(w, http.StatusBadRequest, ErrorBody{
			Kind:    KindInvalidArgument,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetIntQueryParam reads an optional integer query parameter.
// If ok is false, the response has already been written.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, name string, defaultValue int, invalidMsg string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgRequestInvalid, "param", name, "value", raw)
		respondErrorBody(w, http.StatusBadRequest, ErrorBody{Kind: KindInvalidArgument, Message: invalidMsg})
		return 0, false
	}
	return value, true
}
