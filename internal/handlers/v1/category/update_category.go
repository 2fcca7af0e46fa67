package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type UpdateCategoryInput struct {
	CategoryIDPath
	Body CategoryBody
}

type UpdateCategoryOutput struct {
	Body Category
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id int64, category service.Category) (*service.Category, error)
}

// UpdateCategoryHandler handles PATCH /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/category/{id}",
		Summary:     "Overwrite a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	updated, err := h.CategoryService.UpdateCategory(ctx, input.ID, input.Body.toService())
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to update category")
	}
	return &UpdateCategoryOutput{Body: fromService(*updated)}, nil
}
