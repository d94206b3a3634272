package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmmlab/whatif/internal/obs"
	"github.com/mmmlab/whatif/internal/scenario"
	"github.com/mmmlab/whatif/internal/sim"
	"github.com/mmmlab/whatif/internal/store"
	"github.com/mmmlab/whatif/internal/utils"
)

const maxBodyBytes = 1 << 16

// RunResponse wraps a simulation result with its cache identity.
type RunResponse struct {
	Fingerprint string      `json:"fingerprint"`
	Cached      bool        `json:"cached"`
	Result      *sim.Result `json:"result"`
}

// RunSummary is the list view of a cached run.
type RunSummary struct {
	Fingerprint string    `json:"fingerprint"`
	Model       sim.Model `json:"model"`
	TotalSpend  float64   `json:"total_spend"`
	BlendedROAS float64   `json:"blended_roas"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRouter(log *slog.Logger, st *store.MemoryStore) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Method(http.MethodGet, "/metrics", promhttp.Handler())

	mux.Post("/simulate", func(w http.ResponseWriter, r *http.Request) {
		var in sim.Input
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			http.Error(w, "bad request body: "+err.Error(), 400)
			return
		}
		resp, err := runSimulation(st, in)
		if err != nil {
			if errors.Is(err, sim.ErrInvalidInput) {
				obs.InvalidInputTotal.Inc()
				http.Error(w, err.Error(), 400)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, resp)
	})

	mux.Get("/simulate/runs", func(w http.ResponseWriter, r *http.Request) {
		limit := atoiDef(r.URL.Query().Get("limit"), 20)
		if limit > 100 {
			limit = 100
		}
		runs := st.Recent(limit)
		out := make([]RunSummary, 0, len(runs))
		for _, run := range runs {
			out = append(out, RunSummary{
				Fingerprint: run.Fingerprint,
				Model:       run.Input.Model,
				TotalSpend:  run.Result.TotalSpend,
				BlendedROAS: run.Result.BlendedROAS,
				CreatedAt:   run.CreatedAt,
			})
		}
		writeJSON(w, out)
	})

	mux.Get("/scenarios", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, scenario.Presets())
	})

	mux.Post("/scenarios/run", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "name required", 400)
			return
		}
		preset, ok := scenario.PresetByName(name)
		if !ok {
			http.Error(w, "unknown scenario "+name, 404)
			return
		}
		in, err := preset.Input()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		resp, err := runSimulation(st, in)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, resp)
	})

	return mux
}

// runSimulation serves from the run cache when the exact input was already
// computed; the pipeline is pure, so a fingerprint hit is always safe.
func runSimulation(st *store.MemoryStore, in sim.Input) (*RunResponse, error) {
	fp := store.Fingerprint(in)
	if run, ok := st.Get(fp); ok {
		obs.RunCacheHitsTotal.Inc()
		return &RunResponse{Fingerprint: fp, Cached: true, Result: run.Result}, nil
	}

	start := time.Now()
	res, err := sim.Run(in)
	if err != nil {
		return nil, err
	}
	obs.SimulationSeconds.Observe(time.Since(start).Seconds())
	obs.SimulationsTotal.WithLabelValues(string(in.Model)).Inc()

	st.Put(in, res)
	return &RunResponse{Fingerprint: fp, Cached: false, Result: res}, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

func atoiDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}
