package handler

import (
	"net/http"
	"path/filepath"

	"paintbooking/pkg/logger"
	"paintbooking/pkg/session"

	"github.com/julienschmidt/httprouter"
)

// PagesHandler serves the three pre-built pages by exact path. A session
// record is established on every page load so the cookie exists before the
// visitor ever logs in.
type PagesHandler struct {
	staticDir string
	sessions  *session.Store
	log       *logger.Logger
}

func NewPagesHandler(staticDir string, sessions *session.Store, log *logger.Logger) *PagesHandler {
	return &PagesHandler{
		staticDir: staticDir,
		sessions:  sessions,
		log:       log,
	}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.servePage(w, r, "home.html")
}

func (h *PagesHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.servePage(w, r, "book.html")
}

func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.servePage(w, r, "login.html")
}

func (h *PagesHandler) servePage(w http.ResponseWriter, r *http.Request, name string) {
	h.sessions.GetOrCreate(w, r)
	http.ServeFile(w, r, filepath.Join(h.staticDir, name))
}

func (h *PagesHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Home)
	router.GET("/book", h.Book)
	router.GET("/login", h.Login)
}
