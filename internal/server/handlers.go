package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/carquery/pkg/errors"
	"github.com/matzehuels/carquery/pkg/integrations"
	"github.com/matzehuels/carquery/pkg/integrations/carquery"
)

// knownErrors maps library sentinels to response codes.
var knownErrors = map[error]errors.Code{
	integrations.ErrNotFound:      errors.ErrCodeNotFound,
	integrations.ErrRateLimited:   errors.ErrCodeRateLimited,
	integrations.ErrNetwork:       errors.ErrCodeNetwork,
	integrations.ErrDecode:        errors.ErrCodeMalformedResponse,
	carquery.ErrMalformedResponse: errors.ErrCodeMalformedResponse,
}

var errNoRoute = errors.New(errors.ErrCodeNotFound, "no such route")

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	yr, err := s.client.GetYearRange(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, yr)
}

func (s *Server) handleMakes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := errors.ParseYear(q.Get("year"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	makes, err := s.client.GetMakes(r.Context(), year, errors.ParseFlag(q.Get("sold_in_us")))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, makes)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := errors.ParseYear(q.Get("year"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	makeID := chi.URLParam(r, "make")
	if err := errors.ValidateMake(makeID); err != nil {
		s.fail(w, r, err)
		return
	}
	body, err := parseBody(q.Get("body"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	models, err := s.client.GetModels(r.Context(), carquery.GetModelsParams{
		Year:      year,
		Make:      makeID,
		SoldInUSA: errors.ParseFlag(q.Get("sold_in_us")),
		Body:      body,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

func (s *Server) handleTrims(w http.ResponseWriter, r *http.Request) {
	p, err := trimsParamsFromQuery(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	trims, err := s.client.GetTrims(r.Context(), p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trims)
}

func (s *Server) handleModel(w http.ResponseWriter, r *http.Request) {
	id, err := errors.ParseModelID(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	detail, err := s.client.GetModelDetail(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// trimsParamsFromQuery reads trim filters under the same keys the remote
// API uses.
func trimsParamsFromQuery(q url.Values) (carquery.GetTrimsParams, error) {
	var p carquery.GetTrimsParams
	var err error

	ints := []struct {
		key string
		dst *int
	}{
		{"year", &p.Year},
		{"doors", &p.Doors},
		{"seats", &p.Seats},
		{"min_cylinders", &p.MinCylinders},
		{"min_power", &p.MinHorsepower},
		{"min_top_speed", &p.MinTopSpeed},
		{"min_torque", &p.MinTorque},
		{"min_weight", &p.MinWeight},
		{"min_year", &p.MinYear},
		{"max_cylinders", &p.MaxCylinders},
		{"max_power", &p.MaxHorsepower},
		{"max_top_speed", &p.MaxTopSpeed},
		{"max_torque", &p.MaxTorque},
		{"max_weight", &p.MaxWeight},
		{"max_year", &p.MaxYear},
	}
	for _, f := range ints {
		if *f.dst, err = errors.ParseOptionalInt(f.key, q.Get(f.key)); err != nil {
			return p, err
		}
	}
	if p.MinLKMHwy, err = errors.ParseOptionalFloat("min_lkm_hwy", q.Get("min_lkm_hwy")); err != nil {
		return p, err
	}
	if p.MaxLKMHwy, err = errors.ParseOptionalFloat("max_lkm_hwy", q.Get("max_lkm_hwy")); err != nil {
		return p, err
	}
	if p.BodyStyle, err = parseBody(q.Get("body")); err != nil {
		return p, err
	}

	p.Make = q.Get("make")
	p.Model = q.Get("model")
	p.Drive = q.Get("drive")
	p.EnginePosition = q.Get("engine_position")
	p.EngineType = q.Get("engine_type")
	p.FuelType = q.Get("fuel_type")
	p.Keyword = q.Get("keyword")
	p.FullResults = errors.ParseFlag(q.Get("full_results"))
	p.SoldInUSA = errors.ParseFlag(q.Get("sold_in_us"))
	return p, nil
}

func parseBody(s string) (carquery.BodyStyle, error) {
	if s == "" {
		return "", nil
	}
	b, ok := carquery.ParseBodyStyle(s)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidBody, "unknown body style %q", s)
	}
	return b, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	e := errors.Classify(err, knownErrors)
	status := errors.HTTPStatus(e.Code)
	if status >= http.StatusInternalServerError && r.Context().Err() == nil {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", requestIDFrom(r.Context()), "err", err)
	}
	writeError(w, e)
}

func writeError(w http.ResponseWriter, err error) {
	e := errors.Classify(err, knownErrors)
	writeJSON(w, errors.HTTPStatus(e.Code), errorResponse{Code: e.Code, Message: e.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
