package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/collection"
)

var validate = validator.New()

// TeamResponse is the team summary plus its raw ids.
type TeamResponse struct {
	collection.TeamSummary
	IDs  []int `json:"ids"`
	Full bool  `json:"full"`
}

// TeamIDsResponse answers a team mutation without hydrating; clients
// fetch GET /team for the full summary.
type TeamIDsResponse struct {
	IDs  []int `json:"ids"`
	Full bool  `json:"full"`
}

// ConflictResponse is returned with 409 when the team has no free slot.
type ConflictResponse struct {
	Error    respond.ErrorBody   `json:"error"`
	Conflict collection.Conflict `json:"conflict"`
}

// ReplaceRequest names the member to evict and the entity taking its slot.
type ReplaceRequest struct {
	OldID int `json:"oldId" validate:"required,gt=0"`
	NewID int `json:"newId" validate:"required,gt=0"`
}

// GetTeam returns the hydrated team summary.
// @Summary Team summary
// @Description Members in slot order, six slots with empty ones null, rounded average attack and unique categories.
// @Tags team
// @Produce json
// @Success 200 {object} TeamResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /team [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	summary, err := collection.TeamView(r.Context(), h.Team, h.Hydrator)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	h.writeTeam(w, http.StatusOK, summary)
}

// AddToTeam adds an entity to the next free slot.
// @Summary Add to team
// @Description 201 when the entity is on the team afterwards. 409 with the current members when the team is full; resolve through /team/replace.
// @Tags team
// @Produce json
// @Param id path int true "Entity id"
// @Success 201 {object} TeamIDsResponse
// @Failure 409 {object} ConflictResponse
// @Router /team/{id} [post]
func (h *Handler) AddToTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	conflict, err := h.resolver.Add(r.Context(), id)
	if err != nil {
		if isCatalogError(err) {
			h.writeCatalogError(w, r, err)
			return
		}
		h.writeStoreError(w, r, err)
		return
	}
	if conflict != nil {
		respond.WriteJSONObject(w, http.StatusConflict, ConflictResponse{
			Error: respond.ErrorBody{
				Code:    "TEAM_FULL",
				Message: "Team is full, choose a member to replace",
			},
			Conflict: *conflict,
		})
		return
	}
	h.writeTeamIDs(w, http.StatusCreated)
}

// RemoveFromTeam frees the slot held by an entity.
// @Summary Remove from team
// @Tags team
// @Produce json
// @Param id path int true "Entity id"
// @Success 200 {object} TeamIDsResponse
// @Router /team/{id} [delete]
func (h *Handler) RemoveFromTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Team.Remove(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.writeTeamIDs(w, http.StatusOK)
}

// ReplaceInTeam evicts one member in favour of another entity.
// @Summary Replace team member
// @Tags team
// @Accept json
// @Produce json
// @Param body body ReplaceRequest true "Eviction choice"
// @Success 200 {object} TeamIDsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /team/replace [post]
func (h *Handler) ReplaceInTeam(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "Body must be JSON", err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "oldId and newId must be positive", err.Error())
		return
	}
	if err := h.resolver.Resolve(r.Context(), req.OldID, req.NewID); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	h.writeTeamIDs(w, http.StatusOK)
}

// ClearTeam empties every slot.
// @Summary Clear team
// @Tags team
// @Success 204
// @Router /team [delete]
func (h *Handler) ClearTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.Team.Clear(r.Context()); err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	respond.WriteNoContent(w)
}

func (h *Handler) writeTeam(w http.ResponseWriter, status int, summary collection.TeamSummary) {
	respond.WriteJSONObject(w, status, TeamResponse{
		TeamSummary: summary,
		IDs:         h.Team.IDs(),
		Full:        h.Team.IsFull(),
	})
}

func (h *Handler) writeTeamIDs(w http.ResponseWriter, status int) {
	respond.WriteJSONObject(w, status, TeamIDsResponse{IDs: h.Team.IDs(), Full: h.Team.IsFull()})
}
