package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type GetCategoryOutput struct {
	Body Category
}

type categoryGetter interface {
	GetCategory(ctx context.Context, id int64) (*service.Category, error)
}

// GetCategoryHandler handles GET /v1/category/{id}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{id}",
		Summary:     "Get a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *CategoryIDPath) (*GetCategoryOutput, error) {
	category, err := h.CategoryService.GetCategory(ctx, input.ID)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to get category")
	}
	return &GetCategoryOutput{Body: fromService(*category)}, nil
}
