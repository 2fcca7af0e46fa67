package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type CreateCategoryInput struct {
	Body CategoryBody
}

type CreateCategoryOutput struct {
	Status int
	Body   Category
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, category service.Category) (*service.Category, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create a category",
		Description: "Creates a category. Responds 409 when the name is already taken.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	created, err := h.CategoryService.CreateCategory(ctx, input.Body.toService())
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to create category")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryID", created.ID)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}
