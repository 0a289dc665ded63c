package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/location/dto"
	"github.com/estately/estately/internal/application/location/usecases"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/utils"
)

type LocationHandler struct {
	queries  *usecases.LocationQueries
	importUC *usecases.ImportLocationsUseCase
}

func NewLocationHandler(queries *usecases.LocationQueries, importUC *usecases.ImportLocationsUseCase) *LocationHandler {
	return &LocationHandler{queries: queries, importUC: importUC}
}

// @Summary		List states
// @Tags			locations
// @Produce		json
// @Success		200	{object}	utils.APIResponse{data=[]dto.StateDTO}
// @Router			/locations/states [get]
func (h *LocationHandler) States(c *gin.Context) {
	states, err := h.queries.States(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToStateDTOs(states))
}

// @Summary		List counties of a state
// @Tags			locations
// @Produce		json
// @Param			id	path		int	true	"State ID"
// @Success		200	{object}	utils.APIResponse{data=[]dto.CountyDTO}
// @Failure		404	{object}	utils.APIResponse
// @Router			/locations/states/{id}/counties [get]
func (h *LocationHandler) Counties(c *gin.Context) {
	id, ok := idParam(c, "state")
	if !ok {
		return
	}
	counties, err := h.queries.Counties(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToCountyDTOs(counties))
}

// @Summary		List cities of a county
// @Tags			locations
// @Produce		json
// @Param			id	path		int	true	"County ID"
// @Success		200	{object}	utils.APIResponse{data=[]dto.CityDTO}
// @Failure		404	{object}	utils.APIResponse
// @Router			/locations/counties/{id}/cities [get]
func (h *LocationHandler) Cities(c *gin.Context) {
	id, ok := idParam(c, "county")
	if !ok {
		return
	}
	cities, err := h.queries.Cities(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToCityDTOs(cities))
}

// @Summary		Get a city
// @Tags			locations
// @Produce		json
// @Param			id	path		int	true	"City ID"
// @Success		200	{object}	utils.APIResponse{data=dto.CityDTO}
// @Failure		404	{object}	utils.APIResponse
// @Router			/locations/cities/{id} [get]
func (h *LocationHandler) City(c *gin.Context) {
	id, ok := idParam(c, "city")
	if !ok {
		return
	}
	city, err := h.queries.City(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToCityDTO(city))
}

// @Summary		Search cities by name prefix
// @Tags			locations
// @Produce		json
// @Param			q		query		string	true	"At least two characters"
// @Param			limit	query		int		false	"Max results, default 20"
// @Success		200		{object}	utils.APIResponse{data=[]dto.CityDTO}
// @Router			/locations/cities/search [get]
func (h *LocationHandler) SearchCities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	cities, err := h.queries.SearchCities(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToCityDTOs(cities))
}

// @Summary		Import geography CSV
// @Description	Loads states, counties and cities; rows already present are kept
// @Tags			admin
// @Accept			multipart/form-data
// @Produce		json
// @Security		Bearer
// @Param			file	formData	file	true	"CSV with city, state_id, state_name, county_name columns"
// @Success		200		{object}	utils.APIResponse{data=usecases.ImportResult}
// @Failure		400		{object}	utils.APIResponse
// @Router			/admin/locations/import [post]
func (h *LocationHandler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("unreadable file"))
		return
	}
	defer f.Close()

	result, err := h.importUC.Execute(c.Request.Context(), f)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "import finished", result)
}
