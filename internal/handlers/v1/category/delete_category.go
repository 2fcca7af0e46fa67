package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
)

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id int64) (bool, error)
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/category/{id}",
		Summary:       "Delete a category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *CategoryIDPath) (*struct{}, error) {
	deleted, err := h.CategoryService.DeleteCategory(ctx, input.ID)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to delete category")
	}
	if !deleted {
		return nil, huma.Error404NotFound("category not found")
	}
	return nil, nil
}
