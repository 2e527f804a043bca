package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpgo/calckit/internal/bodycomp"
	"github.com/rpgo/calckit/internal/calculation"
	"github.com/rpgo/calckit/internal/qrscan"
	"github.com/rpgo/calckit/internal/textcodec"
)

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps calculator errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, calculation.ErrInputTooLarge),
		errors.Is(err, qrscan.ErrDecodeFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, calculation.ErrInvalidInput),
		errors.Is(err, calculation.ErrUnknownCountry),
		errors.Is(err, textcodec.ErrOddLength),
		errors.Is(err, textcodec.ErrBinaryLength),
		errors.Is(err, textcodec.ErrInvalidUTF8),
		errors.Is(err, textcodec.ErrInvalidDecimal),
		errors.Is(err, textcodec.ErrUnknownOption),
		errors.Is(err, bodycomp.ErrInvalidMeasurement),
		errors.Is(err, bodycomp.ErrUnknownSex),
		errors.Is(err, bodycomp.ErrUnknownActivity),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
