// SPDX-License-Identifier: Unlicense OR MIT

// Package preview serves rendered pickers over HTTP, for tuning
// attributes and replaying touch sequences without a device.
package preview

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gioui.org/f32"
	"gioui.org/unit"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/circled-gio/circled/attr"
	"github.com/circled-gio/circled/dial"
	"github.com/circled-gio/circled/raster"
)

const (
	defaultSize = 256
	maxSize     = 2048
	// touchSlop matches the slop of the Gio widget.
	touchSlop = unit.Dp(3)
)

// Server keeps picker sessions in memory.
type Server struct {
	// Metric converts attribute sizes to pixels.
	Metric unit.Metric
	// Defaults are the attributes of sessions created without a
	// body.
	Defaults attr.Attrs

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	dial  *dial.Dial
	style raster.Style
}

// Snapshot is the JSON representation of a session.
type Snapshot struct {
	ID     string  `json:"id"`
	Value  float32 `json:"value"`
	Sweep  float32 `json:"sweep"`
	Label  string  `json:"label"`
	Mode   string  `json:"mode"`
	Filled bool    `json:"filled"`
	Empty  bool    `json:"empty"`
}

// Touch is a pointer event in pixels of a render.
type Touch struct {
	Kind string  `json:"kind"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
}

// NewServer returns a server creating sessions from defaults.
func NewServer(m unit.Metric, defaults attr.Attrs) *Server {
	return &Server{
		Metric:   m,
		Defaults: defaults,
		sessions: make(map[string]*session),
	}
}

// Router returns the routes of s.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/pickers", s.create).Methods("POST")
	r.HandleFunc("/pickers/{id}", s.get).Methods("GET")
	r.HandleFunc("/pickers/{id}", s.remove).Methods("DELETE")
	r.HandleFunc("/pickers/{id}/value", s.setValue).Methods("PUT")
	r.HandleFunc("/pickers/{id}/touches", s.touches).Methods("POST")
	r.HandleFunc("/pickers/{id}/image.png", s.render).Methods("GET")
	r.Use(logRequests)
	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a := s.Defaults
	if len(body) > 0 {
		if a, err = attr.Parse(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	v, err := a.Resolve()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{dial: dial.New(v.Config), style: v.Raster(s.Metric)}
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// lookup returns the session of the request with s.mu held. The
// caller must unlock s.mu if lookup succeeds.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (string, *session, bool) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		http.Error(w, fmt.Sprintf("no picker %q", id), http.StatusNotFound)
		return "", nil, false
	}
	return id, sess, true
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	snap := snapshot(id, sess.dial)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.lookup(w, r)
	if !ok {
		return
	}
	delete(s.sessions, id)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value   float32 `json:"value"`
		Animate bool    `json:"animate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if req.Animate {
		now := time.Now()
		sess.dial.AnimateTo(req.Value, now)
		sess.dial.Tick(now.Add(dial.TapDuration))
	} else {
		sess.dial.SetValue(req.Value)
	}
	snap := snapshot(id, sess.dial)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) touches(w http.ResponseWriter, r *http.Request) {
	size, err := sizeParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var touches []Touch
	if err := json.NewDecoder(r.Body).Decode(&touches); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	err = replay(sess.dial, touches, dial.Measure(image.Pt(size, size), 0, 0).Center, float32(s.Metric.Dp(touchSlop)))
	snap := snapshot(id, sess.dial)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// replay feeds touches through the gesture handling of d. Tap
// animations run to completion. A batch with an unknown kind is
// rejected before any touch is applied.
func replay(d *dial.Dial, touches []Touch, center f32.Point, slop float32) error {
	for i, t := range touches {
		switch t.Kind {
		case "press", "move", "release", "cancel":
		default:
			return fmt.Errorf("touch %d: unknown kind %q", i, t.Kind)
		}
	}
	now := time.Now()
	for _, t := range touches {
		pos := f32.Pt(t.X, t.Y)
		switch t.Kind {
		case "press":
			d.Press(pos)
		case "move":
			d.Move(pos, center, slop)
		case "release":
			if d.Release(pos, center, slop, now) {
				now = now.Add(dial.TapDuration)
				d.Tick(now)
			}
		case "cancel":
			d.Cancel()
		}
	}
	return nil
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	size, err := sizeParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	img, err := raster.Render(image.Pt(size, size), sess.dial, sess.style)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("preview: encoding png: %v", err)
	}
}

func sizeParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("size")
	if v == "" {
		return defaultSize, nil
	}
	size, err := strconv.Atoi(v)
	if err != nil || size <= 0 || size > maxSize {
		return 0, fmt.Errorf("invalid size %q", v)
	}
	return size, nil
}

func snapshot(id string, d *dial.Dial) Snapshot {
	st := d.State()
	return Snapshot{
		ID:     id,
		Value:  st.Value,
		Sweep:  st.Sweep,
		Label:  d.Label(),
		Mode:   d.Config().Mode.String(),
		Filled: st.Filled,
		Empty:  st.Empty,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("preview: encoding response: %v", err)
	}
}
