package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListCategoriesInput struct {
	Type string `query:"type" enum:"income,expense" doc:"Only return categories of this type"`
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"Categories ordered by id"`
	}
}

type categoryLister interface {
	ListCategories(ctx context.Context, categoryType *service.TransactionType) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	var categoryType *service.TransactionType
	if input.Type != "" {
		t := service.TransactionType(input.Type)
		categoryType = &t
	}

	categories, err := h.CategoryService.ListCategories(ctx, categoryType)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to list categories")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = fromService(c)
	}
	return out, nil
}
