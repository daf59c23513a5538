package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/midi2array/config"
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/encode"
	"github.com/jsphweid/midi2array/loader"
	"github.com/jsphweid/midi2array/midi"
	"github.com/jsphweid/midi2array/model"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions over HTTP",
	Long: `Serves conversions over HTTP on $MIDI2ARRAY_ADDR (default :8080).
POST raw midi bytes to /convert, options go in the query string.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := constants.GetServeAddr()
		logger.Info("serving", zap.String("addr", addr))
		return http.ListenAndServe(addr, cors.Default().Handler(NewRouter(opts)))
	},
}

func NewRouter(defaults config.Options) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert(defaults)).Methods("POST")
	router.HandleFunc("/symbols", HandleSymbols).Methods("GET")
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func parseBool(q url.Values, key string, v *bool) error {
	if s := q.Get(key); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return errors.Wrapf(err, "bad %v", key)
		}
		*v = b
	}
	return nil
}

func parseInt(q url.Values, key string, v *int) error {
	if s := q.Get(key); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "bad %v", key)
		}
		*v = n
	}
	return nil
}

func optionsFromQuery(defaults config.Options, q url.Values) (config.Options, error) {
	o := defaults
	ticks := int(o.TicksPerSlot)
	for _, err := range []error{
		parseInt(q, "track", &o.Track),
		parseInt(q, "headerOffset", &o.HeaderOffset),
		parseInt(q, "ticksPerSlot", &ticks),
		parseBool(q, "eightToEight", &o.EightToEight),
		parseInt(q, "memorySteps", &o.MemorySteps),
		parseBool(q, "oneHot", &o.OneHot),
		parseBool(q, "beatVector", &o.BeatVector),
		parseBool(q, "beatIndex", &o.BeatIndex),
	} {
		if err != nil {
			return o, err
		}
	}
	if ticks < 0 {
		return o, errors.Wrapf(config.ErrInvalidOptions, "ticksPerSlot %v", ticks)
	}
	o.TicksPerSlot = uint32(ticks)
	return o, o.Validate()
}

func HandleConvert(defaults config.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := optionsFromQuery(defaults, r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not read body"))
			return
		}

		s, err := midi.ReadMidi(bytes.NewReader(body))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		d, err := loader.LoadSMF(s, o)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		logger.Debug("converted upload", zap.String("id", d.ID), zap.Int("measures", d.Measures))
		writeJSON(w, http.StatusOK, d)
	}
}

func HandleSymbols(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.SymbolsResponse{Symbols: encode.Symbols()})
}
