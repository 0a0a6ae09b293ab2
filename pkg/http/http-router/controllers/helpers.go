package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dlevanto/contextspell/pkg"

	"go.uber.org/zap"
)

type envelope map[string]interface{}

// writeJSON marshals data structure to encoded JSON response.
func (api *spellAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *spellAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int,
	code string, message interface{}) {
	env := envelope{"error": envelope{"code": code, "message": message}}

	if err := api.writeJSON(w, status, env, nil); err != nil {
		api.log.Error("failed to write error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *spellAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *spellAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", err.Error())
}

func (api *spellAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.String("method", r.Method),
		zap.String("uri", r.URL.RequestURI()), zap.Error(err))

	var appErr *pkg.Error
	if errors.As(err, &appErr) {
		switch appErr.Code() {
		case pkg.ErrBadParamInput:
			api.BadRequestResponse(w, r, err)
			return
		case pkg.ErrNotFound:
			api.NotFoundResponse(w, r, err)
			return
		}
	}
	if errors.Is(err, pkg.ErrNoLanguageModel) {
		api.errorResponse(w, r, http.StatusServiceUnavailable, "model_unavailable", err.Error())
		return
	}

	message := "the server encountered a problem and could not process your request"
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_error", message)
}
