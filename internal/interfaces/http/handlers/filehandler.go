package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estately/estately/internal/application/media/dto"
	"github.com/estately/estately/internal/application/media/usecases"
	"github.com/estately/estately/internal/shared/errors"
	"github.com/estately/estately/internal/shared/utils"
)

type FileHandler struct {
	mediaUC *usecases.MediaUseCase
}

func NewFileHandler(mediaUC *usecases.MediaUseCase) *FileHandler {
	return &FileHandler{mediaUC: mediaUC}
}

// @Summary		Upload a file
// @Description	Stores an image or document and optionally attaches it to an item
// @Tags			files
// @Accept			multipart/form-data
// @Produce		json
// @Security		Bearer
// @Param			file	formData	file	true	"File"
// @Param			item_id	formData	int		false	"Item to attach to"
// @Success		201		{object}	utils.APIResponse{data=dto.FileDTO}
// @Failure		400		{object}	utils.APIResponse
// @Failure		409		{object}	utils.APIResponse
// @Router			/files [post]
func (h *FileHandler) Upload(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("file is required"))
		return
	}
	var itemID *uint
	if raw := c.PostForm("item_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid item_id"))
			return
		}
		id := uint(n)
		itemID = &id
	}

	f, err := fh.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("unreadable file"))
		return
	}
	defer f.Close()

	file, err := h.mediaUC.Upload(c.Request.Context(), usecases.UploadCommand{
		Store:      s,
		UploaderID: currentUserID(c),
		Filename:   fh.Filename,
		Size:       fh.Size,
		Body:       f,
		ItemID:     itemID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, dto.ToFileDTO(file), "file uploaded")
}

// @Summary		List files of my store
// @Tags			files
// @Produce		json
// @Security		Bearer
// @Param			kind	query		string	false	"image, video or document"
// @Success		200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.FileDTO}}
// @Router			/files [get]
func (h *FileHandler) List(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	p := utils.ParsePagination(c)
	files, total, err := h.mediaUC.List(c.Request.Context(), usecases.ListFilesQuery{
		StoreID:  s.ID(),
		Kind:     c.Query("kind"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	dtos := make([]*dto.FileDTO, 0, len(files))
	for _, f := range files {
		dtos = append(dtos, dto.ToFileDTO(f))
	}
	utils.ListSuccessResponse(c, dtos, total, p.Page, p.PageSize)
}

// @Summary		Delete a file
// @Description	Removes the stored object, then the record
// @Tags			files
// @Security		Bearer
// @Param			id	path	int	true	"File ID"
// @Success		204
// @Failure		409	{object}	utils.APIResponse
// @Router			/files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	s, ok := tenantStore(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "file")
	if !ok {
		return
	}
	if err := h.mediaUC.Delete(c.Request.Context(), s.ID(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
