package webutil

import (
	"encoding/json"
	"net/http"

	"violin_study_plan/internal/model"
)

// DecodeJSONBody decodes the request body into dst, rejecting unknown fields.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_BODY", "O corpo da requisição não é um JSON válido.", "", model.ErrInvalidInput)
	}
	return nil
}
