package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router

	tableOnce sync.Once
	table     *skewb.SolutionTable
	tableErr  error
}

func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// API routes
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/rank", s.handleRank).Methods("POST")
	api.HandleFunc("/unrank", s.handleUnrank).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Main page
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// solutionTable builds the shared solution table on first use. Building
// takes a few seconds; later requests reuse it.
func (s *Server) solutionTable() (*skewb.SolutionTable, error) {
	s.tableOnce.Do(func() {
		log.Printf("Generating solution table...")
		table := skewb.NewSolutionTable()
		opts := &skewb.GenerateOptions{
			OnLayer: func(depth, layerSize, total int) {
				log.Printf("depth %d: %d new states (%d total)", depth, layerSize, total)
			},
		}
		if err := table.Generate(opts); err != nil {
			s.tableErr = err
			return
		}
		s.table = table
		log.Printf("Solution table ready: %d states, max depth %d", table.Size(), table.MaxDepth())
	})
	return s.table, s.tableErr
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
