package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/planetary/planetary-api/internal/middleware"
	"github.com/planetary/planetary-api/internal/model"
	"github.com/planetary/planetary-api/internal/service"
)

// PlanetHandler handles HTTP requests for planets.
type PlanetHandler struct {
	service *service.PlanetService
}

// NewPlanetHandler creates a new PlanetHandler.
func NewPlanetHandler(svc *service.PlanetService) *PlanetHandler {
	return &PlanetHandler{service: svc}
}

// HandleList handles GET /planets requests. An empty store yields an
// empty JSON array with status 200.
func (h *PlanetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	planets, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, planets)
}

// HandleDetails handles GET /planet_details/{id} requests. The route
// pattern restricts {id} to digits; non-numeric segments 404 at the router.
func (h *PlanetHandler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, messageResponse("The planet does not exist"))
		return
	}

	planet, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanetNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse("The planet does not exist"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, planet)
}

// HandleAdd handles POST /add_planet requests with form fields name,
// category, home_star, mass, radius and distance. Malformed numeric
// fields surface as a server error, not a 400.
func (h *PlanetHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	mass, massErr := strconv.ParseFloat(r.FormValue("mass"), 64)
	radius, radiusErr := strconv.ParseFloat(r.FormValue("radius"), 64)
	distance, distanceErr := strconv.ParseFloat(r.FormValue("distance"), 64)
	if massErr != nil || radiusErr != nil || distanceErr != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	req := model.AddPlanetRequest{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		HomeStar: r.FormValue("home_star"),
		Mass:     mass,
		Radius:   radius,
		Distance: distance,
	}

	if err := h.service.Add(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrPlanetExists) {
			writeJSON(w, http.StatusConflict, messageResponse("There is already a planet by that name"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	// Any valid token authorizes the add; the identity is only logged.
	if email, ok := middleware.EmailFromContext(r.Context()); ok {
		slog.Info("planet added", "name", req.Name, "by", email)
	}

	writeJSON(w, http.StatusCreated, messageResponse("You add a planet"))
}
