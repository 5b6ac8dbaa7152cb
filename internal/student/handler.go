package student

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/studentgroups/pkg/response"
)

// Handler handles HTTP requests for student operations
type Handler struct {
	service *Service
}

// NewHandler creates a new student handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for student endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

// List handles GET /students
// @Summary      List all students
// @Description  Get every student across all groups, in group creation order then member order
// @Tags         students
// @Produce      json
// @Success      200 {array} Student
// @Router       /students [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list students")
		return
	}

	response.JSON(w, http.StatusOK, students)
}
