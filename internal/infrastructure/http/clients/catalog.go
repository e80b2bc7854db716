package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/pkg/config"
)

type catalogClient struct {
	rest *restClient
}

func NewCatalogClient(cfg config.ServiceClientConfig, logger zerolog.Logger) interfaces.ResourceCatalog {
	return &catalogClient{rest: newRestClient("resource_catalog", cfg, false, logger)}
}

func (c *catalogClient) GetResource(ctx context.Context, resourceID string) (*domain.Resource, error) {
	endpoint := fmt.Sprintf("/v1/resources/%s", url.PathEscape(resourceID))

	var resource domain.Resource
	if err := c.rest.makeRequest(ctx, http.MethodGet, endpoint, nil, &resource, true); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, domain.NewNotFoundError("resource", resourceID)
		}
		return nil, domain.NewDependencyError("resource catalog", err)
	}
	if resource.ID == "" {
		resource.ID = resourceID
	}
	return &resource, nil
}
