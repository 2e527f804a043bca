package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rpgo/calckit/internal/bodycomp"
	"github.com/rpgo/calckit/internal/calculation"
	"github.com/rpgo/calckit/internal/domain"
	"github.com/rpgo/calckit/internal/qrscan"
	"github.com/rpgo/calckit/internal/textcodec"
	"go.uber.org/zap"
)

// Handler serves the calculator endpoints.
type Handler struct {
	engine  *calculation.CalculationEngine
	scanner qrscan.Scanner
	cache   CacheRepository
	logger  *zap.Logger
}

// NewHandler wires the calculators. cache may be nil to disable response
// caching.
func NewHandler(engine *calculation.CalculationEngine, scanner qrscan.Scanner, cache CacheRepository, logger *zap.Logger) *Handler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if scanner == nil {
		scanner = qrscan.NewImageScanner()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, scanner: scanner, cache: cache, logger: logger}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Health)
	mux.Handle("/v1/projection", handleJSON(h, "projection", h.engine.Project))
	mux.Handle("/v1/target-price", handleJSON(h, "target-price", h.solveTargetPrice))
	mux.Handle("/v1/trade", handleJSON(h, "trade", h.engine.AnalyzeTrade))
	mux.Handle("/v1/goal", handleJSON(h, "goal", h.engine.AnalyzeGoal))
	mux.Handle("/v1/taxes", handleJSON(h, "taxes", lookupTax))
	mux.Handle("/v1/codec/encode", handleJSON(h, "codec-encode", encode))
	mux.Handle("/v1/codec/decode", handleJSON(h, "codec-decode", decode))
	mux.Handle("/v1/body", handleJSON(h, "body", body))
	mux.Handle("/v1/qr/extract", handleJSON(h, "qr-extract", extract))
	mux.HandleFunc("/v1/qr/scan", h.ScanQR)
	return mux
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type targetPriceRequest struct {
	domain.TargetPriceQuery
	Method string `json:"method,omitempty"`
}

func (h *Handler) solveTargetPrice(req targetPriceRequest) (*domain.TargetPriceResult, error) {
	switch req.Method {
	case "", "bisection":
		return h.engine.SolveSellPrice(req.TargetPriceQuery)
	case "linear":
		return h.engine.SolveSellPriceLinear(req.TargetPriceQuery)
	}
	return nil, fmt.Errorf("%w: method %q", errBadRequest, req.Method)
}

type taxRequest struct {
	Country string `json:"country"`
}

func lookupTax(req taxRequest) (domain.CountryTax, error) {
	return calculation.LookupCountryTax(req.Country)
}

type encodeRequest struct {
	Text string `json:"text"`
	// Format is hex, binary, decimal, or empty for all three.
	Format  string            `json:"format,omitempty"`
	Options textcodec.Options `json:"options"`
}

func encode(req encodeRequest) (textcodec.Conversion, error) {
	if err := req.Options.Validate(); err != nil {
		return textcodec.Conversion{}, err
	}
	c := textcodec.Convert(req.Text, req.Options)
	switch req.Format {
	case "":
	case "hex":
		c.Binary, c.Decimal = "", ""
	case "binary":
		c.Hex, c.Decimal = "", ""
	case "decimal":
		c.Hex, c.Binary = "", ""
	default:
		return textcodec.Conversion{}, fmt.Errorf("%w: format %q", errBadRequest, req.Format)
	}
	return c, nil
}

type decodeRequest struct {
	Input     string              `json:"input"`
	Format    string              `json:"format"`
	Layout    textcodec.Layout    `json:"layout,omitempty"`
	Separator textcodec.Separator `json:"separator,omitempty"`
	Encoding  textcodec.Encoding  `json:"encoding,omitempty"`
}

type decodeResponse struct {
	Text string `json:"text"`
}

func decode(req decodeRequest) (decodeResponse, error) {
	opts := textcodec.Options{Encoding: req.Encoding, Layout: req.Layout, Separator: req.Separator}
	if err := opts.Validate(); err != nil {
		return decodeResponse{}, err
	}
	var (
		text string
		err  error
	)
	switch req.Format {
	case "hex":
		text, _, err = textcodec.DecodeHex(req.Input, req.Layout, req.Encoding)
	case "binary":
		text, err = textcodec.DecodeBinary(req.Input, req.Encoding)
	case "decimal":
		text, err = textcodec.DecodeDecimal(req.Input, req.Separator, req.Encoding)
	default:
		err = fmt.Errorf("%w: format %q", errBadRequest, req.Format)
	}
	if err != nil {
		return decodeResponse{}, err
	}
	return decodeResponse{Text: text}, nil
}

type bodyRequest struct {
	bodycomp.Measurements
	BodyFatPercent float64 `json:"body_fat_percent,omitempty"`
	Activity       string  `json:"activity,omitempty"`
}

type bodyResponse struct {
	LeanMass bodycomp.LeanMass `json:"lean_mass"`
	Energy   *bodycomp.Energy  `json:"energy,omitempty"`
}

func body(req bodyRequest) (bodyResponse, error) {
	sex, err := bodycomp.ParseSex(string(req.Sex))
	if err != nil {
		return bodyResponse{}, err
	}
	req.Sex = sex
	lm, err := bodycomp.LeanBodyMass(req.Measurements, req.BodyFatPercent)
	if err != nil {
		return bodyResponse{}, err
	}
	resp := bodyResponse{LeanMass: lm}
	if req.Activity != "" {
		e, err := bodycomp.DailyEnergy(req.Measurements, req.Activity)
		if err != nil {
			return bodyResponse{}, err
		}
		resp.Energy = &e
	}
	return resp, nil
}

type extractRequest struct {
	Text    string                 `json:"text"`
	Options *qrscan.ExtractOptions `json:"options,omitempty"`
}

type extractResponse struct {
	Items []string `json:"items"`
}

func extract(req extractRequest) (extractResponse, error) {
	opts := qrscan.DefaultExtractOptions()
	if req.Options != nil {
		opts = *req.Options
	}
	items := qrscan.Extract(req.Text, opts)
	if items == nil {
		items = []string{}
	}
	return extractResponse{Items: items}, nil
}

type scanResponse struct {
	Text  string   `json:"text"`
	Items []string `json:"items"`
}

// ScanQR decodes a raw image body and extracts its links and contacts.
func (h *Handler) ScanQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	data, ok := readBody(w, r, MaxImageBytes)
	if !ok {
		return
	}
	text, err := h.scanner.Scan(r.Context(), bytes.NewReader(data))
	if err != nil {
		h.logger.Debug("qr scan failed", zap.Error(err))
		writeError(w, statusFor(err), err.Error())
		return
	}
	items := qrscan.Extract(text, qrscan.DefaultExtractOptions())
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, scanResponse{Text: text, Items: items})
}

// handleJSON decodes a POSTed In, runs fn and writes its result. Successful
// responses are cached by endpoint and request body.
func handleJSON[In, Out any](h *Handler, endpoint string, fn func(In) (Out, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		data, ok := readBody(w, r, MaxRequestBytes)
		if !ok {
			return
		}

		key := cacheKey(endpoint, data)
		if h.cache != nil {
			if cached, hit := h.cache.Get(key); hit {
				w.Header().Set("X-Cache", "hit")
				writeRaw(w, http.StatusOK, []byte(cached))
				return
			}
		}

		var req In
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := fn(req)
		if err != nil {
			status := statusFor(err)
			if status >= http.StatusInternalServerError {
				h.logger.Error("request failed", zap.String("endpoint", endpoint), zap.Error(err))
			}
			writeError(w, status, err.Error())
			return
		}

		out, err := json.Marshal(result)
		if err != nil {
			h.logger.Error("encoding response", zap.String("endpoint", endpoint), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if h.cache != nil {
			if err := h.cache.Set(key, string(out)); err != nil {
				h.logger.Warn("cache write failed", zap.String("endpoint", endpoint), zap.Error(err))
			}
			w.Header().Set("X-Cache", "miss")
		}
		writeRaw(w, http.StatusOK, out)
	})
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit))
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return data, true
}
