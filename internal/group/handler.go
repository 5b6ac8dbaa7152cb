package group

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/studentgroups/pkg/response"
)

const invalidMembersMessage = "Groups must contain members"

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service
}

// NewHandler creates a new group handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for group endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /groups
// @Summary      Create a new group
// @Description  Create a group and one new student per member name, in the order given
// @Tags         groups
// @Accept       json
// @Produce      json
// @Produce      plain
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      200 {object} GroupSummary
// @Failure      400 {string} string "Groups must contain members"
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	summary, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidMembers) {
			response.BadRequest(w, invalidMembersMessage)
			return
		}
		response.InternalError(w, "Failed to create group")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// List handles GET /groups
// @Summary      List groups
// @Description  Get a summary of every group in creation order, members given as student IDs
// @Tags         groups
// @Produce      json
// @Success      200 {array} GroupSummary
// @Router       /groups [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list groups")
		return
	}

	response.JSON(w, http.StatusOK, summaries)
}

// GetByID handles GET /groups/{id}
// @Summary      Get group by ID
// @Description  Get a group with its full student records
// @Tags         groups
// @Produce      json
// @Produce      plain
// @Param        id path int true "Group ID"
// @Success      200 {object} Group
// @Failure      404 {string} string "Group not found with ID: {id}"
// @Router       /groups/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := parseID(chi.URLParam(r, "id"))
	if !id.valid {
		notFound(w, id)
		return
	}

	group, err := h.service.GetByID(r.Context(), id.value)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			notFound(w, id)
			return
		}
		response.InternalError(w, "Failed to get group")
		return
	}

	response.JSON(w, http.StatusOK, group)
}

// Delete handles DELETE /groups/{id}
// @Summary      Delete group
// @Description  Delete a group and all of its students. IDs are never reused.
// @Tags         groups
// @Produce      plain
// @Param        id path int true "Group ID"
// @Success      204
// @Failure      404 {string} string "Group not found with ID: {id}"
// @Router       /groups/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseID(chi.URLParam(r, "id"))
	if !id.valid {
		notFound(w, id)
		return
	}

	if err := h.service.Delete(r.Context(), id.value); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			notFound(w, id)
			return
		}
		response.InternalError(w, "Failed to delete group")
		return
	}

	response.NoContent(w)
}

func notFound(w http.ResponseWriter, id pathID) {
	response.NotFound(w, fmt.Sprintf("Group not found with ID: %s", id))
}
