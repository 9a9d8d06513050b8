package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/peterkuimelis/tcgsim/internal/catalog"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/table"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Set  string `json:"set,omitempty"`
}

// DeckInfo is the JSON representation of a deck for the /api/decks endpoint.
type DeckInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Size   int      `json:"size"`
	Cards  []string `json:"cards"`
}

// ServerMessage is sent to browsers over the websocket.
type ServerMessage struct {
	Type   string          `json:"type"` // "state" or "result"
	Table  string          `json:"table,omitempty"`
	State  *view.StateView `json:"state"`
	Events []log.GameEvent `json:"events,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ClientMessage is sent by a browser: {"type":"press","input":"hand"}.
type ClientMessage struct {
	Type  string `json:"type"`
	Input string `json:"input"`
}

// Server is the browser frontend for one table. Every connected browser
// sees the same table; an input from any of them is broadcast to all.
type Server struct {
	table     *table.Table
	decksFile string
	logger    *charmlog.Logger
	mux       *http.ServeMux

	// pressMu orders each press with its broadcast so every browser
	// receives results in the order the table applied them.
	pressMu sync.Mutex

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewServer creates a new web server.
func NewServer(t *table.Table, decksFile string, logger *charmlog.Logger) *Server {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	s := &Server{
		table:     t,
		decksFile: decksFile,
		logger:    logger.WithPrefix("web"),
		mux:       http.NewServeMux(),
		conns:     make(map[*websocket.Conn]struct{}),
	}
	s.setupRoutes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/state", s.handleState)
	s.mux.HandleFunc("POST /api/press", s.handlePress)
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ServerMessage{Type: "state", Table: s.table.ID(), State: s.table.View()})
}

// handlePress applies one input from a JSON body and answers like the
// websocket does.
func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	var msg ClientMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "expected {\"input\": ...}", http.StatusBadRequest)
		return
	}
	reply := s.press(r.Context(), msg.Input)
	status := http.StatusOK
	if reply.Error != "" {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, reply)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	infos := s.table.Catalog().Cards()
	cards := make([]CardInfo, len(infos))
	for i, info := range infos {
		cards[i] = CardInfo{ID: i, Name: info.Name, Set: info.Set}
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	if s.decksFile == "" {
		writeJSON(w, http.StatusOK, []DeckInfo{})
		return
	}
	df, err := catalog.ParseDeckFile(s.decksFile)
	if err != nil {
		s.logger.Error("Could not read decks file", "path", s.decksFile, "error", err)
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}

	decks := make([]DeckInfo, 0, len(df.Decks))
	for i, d := range df.Decks {
		di := DeckInfo{
			Number: i + 1,
			Name:   d.Name,
			Size:   d.Size(),
		}
		// Unique card names for display
		seen := make(map[string]bool)
		for _, c := range d.Cards {
			if !seen[c.Name] {
				di.Cards = append(di.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		decks = append(decks, di)
	}
	writeJSON(w, http.StatusOK, decks)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("WebSocket accept error", "error", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	if err := s.join(ctx, wsConn); err != nil {
		return
	}
	defer s.removeConn(wsConn)

	for {
		_, data, err := wsConn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && !errors.Is(err, context.Canceled) {
				s.logger.Debug("WebSocket read ended", "error", err)
			}
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "press" {
			s.reject(ctx, wsConn, "expected a press message")
			continue
		}
		s.press(ctx, msg.Input)
	}
}

// join sends the current state to a new browser and registers it for
// broadcasts. No press can land between the two.
func (s *Server) join(ctx context.Context, c *websocket.Conn) error {
	s.pressMu.Lock()
	defer s.pressMu.Unlock()

	hello := ServerMessage{Type: "state", Table: s.table.ID(), State: s.table.View()}
	if err := writeMessage(ctx, c, hello); err != nil {
		return err
	}
	s.addConn(c)
	return nil
}

// reject answers one browser with an error and the current state.
func (s *Server) reject(ctx context.Context, c *websocket.Conn, reason string) {
	s.pressMu.Lock()
	defer s.pressMu.Unlock()
	writeMessage(ctx, c, ServerMessage{Type: "result", Table: s.table.ID(), State: s.table.View(), Error: reason})
}

// press applies an input and broadcasts the outcome to every browser.
func (s *Server) press(ctx context.Context, input string) ServerMessage {
	s.pressMu.Lock()
	defer s.pressMu.Unlock()

	res, err := s.table.PressNamed(input)
	reply := ServerMessage{Type: "result", Table: s.table.ID(), State: res.State, Events: res.Events}
	if err != nil {
		reply.Error = err.Error()
	}
	s.broadcast(ctx, reply)
	return reply
}

// broadcast outlives the request that triggered it, so one browser
// leaving does not cut the others off.
func (s *Server) broadcast(ctx context.Context, msg ServerMessage) {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := writeMessage(ctx, c, msg); err != nil {
			s.logger.Debug("WebSocket write failed", "error", err)
		}
	}
}

func writeMessage(ctx context.Context, c *websocket.Conn, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.Write(ctx, websocket.MessageText, data)
}

func (s *Server) addConn(c *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[c] = struct{}{}
}

func (s *Server) removeConn(c *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, c)
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
